// SPDX-License-Identifier: MIT
// Package expander: sentinel error set.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Validation sentinels fire BEFORE any randomized work starts.
//   • ErrConstructExhausted is the only runtime failure: both retry loops
//     convert infinite-loop risk into this deterministic error.

package expander

import "errors"

var (
	// ErrInvalidDegree indicates d is odd or below the minimum of 2.
	// The independent-cycle model needs d/2 whole cycles, hence even d.
	ErrInvalidDegree = errors.New("expander: node degree must be even and >= 2")

	// ErrTooFewNodes indicates n < 1, or n−1 < d so there is no room for
	// d/2 independent Hamiltonian cycles on n nodes.
	ErrTooFewNodes = errors.New("expander: not enough nodes for requested degree")

	// ErrNegativeEpsilon indicates a spectral tolerance below zero.
	ErrNegativeEpsilon = errors.New("expander: epsilon must be non-negative")

	// ErrInvalidMaxTries indicates a retry cap below one.
	ErrInvalidMaxTries = errors.New("expander: max tries must be >= 1")

	// ErrNeedRandSource indicates Generate was called without WithSeed or
	// WithRand. Randomness must be explicit for reproducibility.
	ErrNeedRandSource = errors.New("expander: rng is required")

	// ErrConstructExhausted indicates the retry cap was reached, either
	// while searching for an independent cycle or while regenerating
	// candidates that failed spectral verification.
	ErrConstructExhausted = errors.New("expander: could not construct expander within max tries")
)
