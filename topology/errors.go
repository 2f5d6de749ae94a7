// SPDX-License-Identifier: MIT
// Package topology: sentinel error set.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Structural sentinels (ErrClosureViolated, ErrBoundaryInconsistent,
//     ErrHyperedgeTooSmall) mark internal-bug class violations: a lifting
//     that produced them has no valid partial result to offer.

package topology

import "errors"

var (
	// ErrBadShape is returned when a requested COO shape is invalid
	// (negative rows or columns).
	ErrBadShape = errors.New("topology: invalid shape")

	// ErrOutOfRange indicates a triplet index outside the fixed COO shape.
	ErrOutOfRange = errors.New("topology: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("topology: NaN or Inf encountered")

	// ErrEmptySimplex indicates an attempt to build a simplex from zero vertices.
	ErrEmptySimplex = errors.New("topology: simplex needs at least one vertex")

	// ErrNegativeVertex indicates a negative node index in a simplex or cell.
	ErrNegativeVertex = errors.New("topology: negative vertex index")

	// ErrRankExceeded indicates a simplex whose dimension exceeds the
	// collection's configured maximum rank.
	ErrRankExceeded = errors.New("topology: simplex dimension exceeds max rank")

	// ErrCellTooShort indicates a cycle of fewer than three vertices.
	ErrCellTooShort = errors.New("topology: cell needs at least three vertices")

	// ErrRepeatedVertex indicates a repeated internal vertex in a cell cycle.
	ErrRepeatedVertex = errors.New("topology: repeated vertex in cell")

	// ErrClosureViolated indicates a simplicial collection that fails
	// downward closure. Internal-bug class: liftings enforce closure before
	// returning, so observing this means a construction defect.
	ErrClosureViolated = errors.New("topology: downward closure violated")

	// ErrBoundaryInconsistent indicates a 2-cell whose boundary edge is not
	// present among the complex's 1-cells. Internal-bug class.
	ErrBoundaryInconsistent = errors.New("topology: cell boundary edge missing from 1-cells")

	// ErrHyperedgeTooSmall indicates a hyperedge column incident to fewer
	// than two nodes. Internal-bug class.
	ErrHyperedgeTooSmall = errors.New("topology: hyperedge has fewer than two members")
)
