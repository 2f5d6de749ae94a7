// SPDX-License-Identifier: MIT
// Package lift — sum feature lifting.
//
// For each higher-order element, its feature vector is the element-wise sum
// of its constituent nodes' feature vectors, scaled by the incidence weight
// (1 for the binary incidences produced here). Each rank is computed
// independently and row-aligned with that rank's element ordering.

package lift

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/toplift/topology"
)

// SumFeatures fills desc.Features[r] for every rank r ≥ 1 that has an
// incidence matrix, aggregating desc.Features[0] through the incidence.
//
// Behavior highlights:
//   - No base features (Features[0] absent) ⇒ nothing to lift; the
//     descriptor is left untouched and nil is returned. A node whose
//     feature row is all zeros naturally contributes a zero vector.
//   - Ranks with zero elements get no feature matrix (there are no rows
//     to align to).
//
// Errors: topology.ErrBadShape when an incidence row count disagrees with
// the base feature matrix (internal-bug class).
// Complexity: O(Σ nnz(incidence_r) · f).
func SumFeatures(desc *topology.Descriptor) error {
	x0, ok := desc.Features[0]
	if !ok || x0 == nil {
		return nil
	}
	n, f := x0.Dims()

	for rank, inc := range desc.Incidence {
		if inc.Rows() != n {
			return fmt.Errorf("SumFeatures: rank %d incidence has %d rows, features %d: %w",
				rank, inc.Rows(), n, topology.ErrBadShape)
		}
		if inc.Cols() == 0 {
			continue
		}
		out := mat.NewDense(inc.Cols(), f, nil)
		rows, cols, vals := inc.Triplets()
		for t := range vals {
			i, j, w := rows[t], cols[t], vals[t]
			for c := 0; c < f; c++ {
				out.Set(j, c, out.At(j, c)+w*x0.At(i, c))
			}
		}
		desc.Features[rank] = out
	}

	return nil
}
