// SPDX-License-Identifier: MIT
// Package lift: sentinel error set.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Configuration sentinels are aggregated by Config validation (multierr)
//     so one pass reports every violation; all of them fire before any
//     computation, randomized or not.
//   • Graph-dependent violations (k ≥ n, degree ≥ n) surface at Lift time,
//     still before randomized work begins.

package lift

import "errors"

var (
	// ErrUnknownKind indicates a Kind outside the closed lifting set.
	ErrUnknownKind = errors.New("lift: unknown lifting kind")

	// ErrBadK indicates k < 1 (hop radius or neighbor count).
	ErrBadK = errors.New("lift: k must be >= 1")

	// ErrKTooLarge indicates k ≥ n for the kNN lifting: a node cannot have
	// n−1 < k distinct nearest neighbors.
	ErrKTooLarge = errors.New("lift: k must be smaller than node count")

	// ErrBadMaxRank indicates maxRank < 1 for a simplicial lifting.
	ErrBadMaxRank = errors.New("lift: max rank must be >= 1")

	// ErrBadCellLength indicates maxCellLength < 3: no simple cycle is shorter.
	ErrBadCellLength = errors.New("lift: max cell length must be >= 3")

	// ErrBadNodeDegree indicates an odd or sub-2 expander node degree.
	ErrBadNodeDegree = errors.New("lift: node degree must be even and >= 2")

	// ErrNegativeEpsilon indicates a spectral tolerance below zero.
	ErrNegativeEpsilon = errors.New("lift: epsilon must be non-negative")

	// ErrBadMaxTries indicates a retry cap below one.
	ErrBadMaxTries = errors.New("lift: max tries must be >= 1")

	// ErrMissingFeatures indicates the kNN lifting was asked to measure
	// feature-space distances on a graph without node features.
	ErrMissingFeatures = errors.New("lift: graph has no node features")
)
