// SPDX-License-Identifier: MIT
// Package expander: functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic ONLY on programmer-nonsense (nil RNG);
//     numeric values are validated inside Generate and surface as sentinels
//     (spec-level validation errors, not panics).
//   • Determinism is explicit: seeding via WithSeed or WithRand, no global
//     generator fallback.

package expander

import "math/rand"

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultEpsilon targets Ramanujan-quality expansion (ε = 0).
	DefaultEpsilon = 0.0

	// DefaultMaxTries caps both retry loops, mirroring the classic
	// networkx-style construction budget.
	DefaultMaxTries = 100
)

// Option mutates the internal generation config.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries the resolved generation knobs.
type config struct {
	epsilon  float64
	maxTries int
	rng      *rand.Rand
}

// defaultConfig returns the documented defaults (rng deliberately nil —
// Generate enforces explicit seeding via ErrNeedRandSource).
func defaultConfig() config {
	return config{epsilon: DefaultEpsilon, maxTries: DefaultMaxTries}
}

// WithEpsilon sets the spectral tolerance ε in |λ₂| < 2·√(d−1) + ε.
// Negative values are rejected by Generate (ErrNegativeEpsilon).
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	return func(c *config) { c.epsilon = eps }
}

// WithMaxTries caps both the cycle-independence search and the
// regenerate-on-failed-verification loop. Values < 1 are rejected by
// Generate (ErrInvalidMaxTries).
// Complexity: O(1).
func WithMaxTries(tries int) Option {
	return func(c *config) { c.maxTries = tries }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("expander: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
