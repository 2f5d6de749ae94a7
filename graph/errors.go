// SPDX-License-Identifier: MIT
// Package graph: sentinel error set.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via fmt.Errorf("Method: ...: %w", ErrX).
//   • Construction never panics on user input; panics are reserved for
//     programmer errors inside option constructors.

package graph

import "errors"

var (
	// ErrGraphNil indicates a nil *Graph was passed where a value is required.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrBadNodeCount indicates n < 0 at construction.
	ErrBadNodeCount = errors.New("graph: node count must be non-negative")

	// ErrNodeOutOfRange indicates a node index outside [0, n).
	// Raised for edge endpoints at construction and for accessor arguments.
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrLoopNotAllowed indicates a self-loop edge (u == u) when loops are
	// disabled (the default).
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrFeatureShape indicates the feature matrix row count differs from n.
	ErrFeatureShape = errors.New("graph: feature matrix rows must equal node count")

	// ErrLabelLength indicates the label vector length differs from n.
	ErrLabelLength = errors.New("graph: label vector length must equal node count")
)
