// SPDX-License-Identifier: MIT
// Package topology — lifting output Descriptor.
//
// A Descriptor is the complete, immutable result of one lifting call:
// per-rank incidence matrices (all node-based: rows are the n base nodes,
// columns are the rank's elements in the rank's deterministic order),
// per-rank element counts, per-rank lifted feature matrices, plus the
// pass-through of the input's 0-dimension features and labels.

package topology

import "gonum.org/v1/gonum/mat"

// Descriptor is the output topology of a lifting. Rank 0 is the node rank;
// ranks ≥ 1 are higher-order (hyperedges at rank 1 for hypergraph liftings,
// k-simplices at rank k for simplicial liftings, 2-cells at rank 2 for the
// cell lifting).
type Descriptor struct {
	// Incidence maps rank r ≥ 1 to its (n × count[r]) node incidence matrix.
	Incidence map[int]*COO

	// Counts maps each rank (0 included) to its element count.
	Counts map[int]int

	// Features maps each rank to its lifted feature matrix, row-aligned with
	// the rank's element order. Rank 0 is the input feature matrix, shared
	// (read-only) with the source graph; absent entirely when the input
	// carries no features.
	Features map[int]*mat.Dense

	// Labels passes through the input's node labels, or nil.
	Labels []int
}

// NewDescriptor allocates an empty descriptor with n base nodes at rank 0.
func NewDescriptor(n int) *Descriptor {
	return &Descriptor{
		Incidence: make(map[int]*COO),
		Counts:    map[int]int{0: n},
		Features:  make(map[int]*mat.Dense),
	}
}

// MaxRank returns the highest rank with a recorded count.
func (d *Descriptor) MaxRank() int {
	maxR := 0
	for r := range d.Counts {
		if r > maxR {
			maxR = r
		}
	}
	return maxR
}
