// SPDX-License-Identifier: MIT
// Package topology — COO (coordinate-list) sparse incidence builder.
//
// Deliverables:
//   1) Fixed-shape, append-only triplet list (row, col, value).
//   2) Strict bounds and finiteness validation on every append.
//   3) Deterministic triplet order (append order is preserved).
//   4) Conversion to gonum dense (*mat.Dense) for numeric consumers.
//
// AI-Hints:
//   - COO is the arena the liftings write into; convert once at the end via
//     ToDense() rather than per-element.
//   - Duplicate (row,col) appends accumulate on ToDense/RowSums/ColSums;
//     liftings never emit duplicates by construction.
//
// Complexity:
//   - Append: amortized O(1). ToDense: O(rows·cols + nnz). Sums: O(nnz).

package topology

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// COO is a fixed-shape sparse matrix under construction, stored as parallel
// triplet slices. The zero value is unusable; use NewCOO.
type COO struct {
	rows, cols int
	ri, ci     []int
	vals       []float64
}

// NewCOO allocates an empty COO of the given shape.
// Zero-sized dimensions are legal (e.g., a graph with no hyperedges).
// Errors: ErrBadShape on negative dimensions.
func NewCOO(rows, cols int) (*COO, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewCOO(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &COO{rows: rows, cols: cols}, nil
}

// Append records the triplet (i, j, v).
// Errors: ErrOutOfRange when (i,j) is outside the fixed shape,
// ErrNaNInf when v is not finite.
func (m *COO) Append(i, j int, v float64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Append(%d,%d): shape %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Append(%d,%d): %w", i, j, ErrNaNInf)
	}
	m.ri = append(m.ri, i)
	m.ci = append(m.ci, j)
	m.vals = append(m.vals, v)

	return nil
}

// Rows returns the fixed row count (number of base elements).
func (m *COO) Rows() int { return m.rows }

// Cols returns the fixed column count (number of higher-order elements).
func (m *COO) Cols() int { return m.cols }

// NNZ returns the number of stored triplets.
func (m *COO) NNZ() int { return len(m.vals) }

// Triplets returns copies of the triplet slices in append order.
func (m *COO) Triplets() (rows, cols []int, vals []float64) {
	return append([]int(nil), m.ri...),
		append([]int(nil), m.ci...),
		append([]float64(nil), m.vals...)
}

// ToDense materializes the matrix as a gonum dense matrix, accumulating
// duplicate coordinates additively.
func (m *COO) ToDense() *mat.Dense {
	out := mat.NewDense(max(m.rows, 1), max(m.cols, 1), nil)
	if m.rows == 0 || m.cols == 0 {
		// gonum rejects zero-sized Dense; callers observe shape via Rows/Cols.
		return out
	}
	for k := range m.vals {
		out.Set(m.ri[k], m.ci[k], out.At(m.ri[k], m.ci[k])+m.vals[k])
	}

	return out
}

// RowSums returns per-row accumulated values (membership counts for a
// binary incidence matrix).
func (m *COO) RowSums() []float64 {
	sums := make([]float64, m.rows)
	for k := range m.vals {
		sums[m.ri[k]] += m.vals[k]
	}
	return sums
}

// ColSums returns per-column accumulated values. For a binary incidence
// matrix, column j sums to the member count of higher-order element j.
func (m *COO) ColSums() []float64 {
	sums := make([]float64, m.cols)
	for k := range m.vals {
		sums[m.ci[k]] += m.vals[k]
	}
	return sums
}

// ValidateHyperedges enforces the hyperedge invariant: every column must be
// incident to at least two base elements.
// Errors: ErrHyperedgeTooSmall naming the offending column.
func (m *COO) ValidateHyperedges() error {
	counts := make([]int, m.cols)
	for k := range m.vals {
		counts[m.ci[k]]++
	}
	for j, c := range counts {
		if c < 2 {
			return fmt.Errorf("ValidateHyperedges: column %d has %d members: %w", j, c, ErrHyperedgeTooSmall)
		}
	}

	return nil
}
