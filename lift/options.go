// SPDX-License-Identifier: MIT
// Package lift: functional options and fail-fast configuration validation.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic ONLY on programmer-nonsense (nil metric);
//     all numeric validation happens in config.validate and is aggregated
//     with multierr so the caller sees every violation at once.
//   • Determinism: the seed is part of the configuration; stochastic
//     liftings derive their RNG from it, never from a global source.

package lift

import (
	"fmt"

	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultK is the hop radius / neighbor count.
	DefaultK = 1

	// DefaultMaxRank caps simplicial dimensions (2 ⇒ up to triangles).
	DefaultMaxRank = 2

	// DefaultMaxCellLength caps cycle length for 2-cells.
	DefaultMaxCellLength = 6

	// DefaultNodeDegree is the expander lifting's node degree (even).
	DefaultNodeDegree = 2

	// DefaultEpsilon targets Ramanujan-quality expanders.
	DefaultEpsilon = 0.0

	// DefaultMaxTries caps expander retry loops.
	DefaultMaxTries = 100

	// DefaultSeed drives stochastic liftings when no seed is supplied;
	// results stay reproducible either way.
	DefaultSeed = 0
)

// Metric measures the distance between two node feature vectors.
type Metric func(a, b []float64) float64

// EuclideanMetric is the default kNN metric.
func EuclideanMetric(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Option mutates the internal lifting config.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries every recognized lifting knob. Individual liftings read
// only the fields they document; validation covers all of them so a
// misconfigured option never lingers silently.
type config struct {
	k             int
	maxRank       int
	maxCellLength int
	nodeDegree    int
	epsilon       float64
	maxTries      int
	seed          int64
	metric        Metric
}

func defaultConfig() config {
	return config{
		k:             DefaultK,
		maxRank:       DefaultMaxRank,
		maxCellLength: DefaultMaxCellLength,
		nodeDegree:    DefaultNodeDegree,
		epsilon:       DefaultEpsilon,
		maxTries:      DefaultMaxTries,
		seed:          DefaultSeed,
		metric:        EuclideanMetric,
	}
}

// validate aggregates every configuration violation (multierr) and returns
// nil only for a fully admissible config. Runs before any computation.
func (c config) validate() error {
	var err error
	if c.k < 1 {
		err = multierr.Append(err, fmt.Errorf("k=%d: %w", c.k, ErrBadK))
	}
	if c.maxRank < 1 {
		err = multierr.Append(err, fmt.Errorf("maxRank=%d: %w", c.maxRank, ErrBadMaxRank))
	}
	if c.maxCellLength < 3 {
		err = multierr.Append(err, fmt.Errorf("maxCellLength=%d: %w", c.maxCellLength, ErrBadCellLength))
	}
	if c.nodeDegree < 2 || c.nodeDegree%2 != 0 {
		err = multierr.Append(err, fmt.Errorf("nodeDegree=%d: %w", c.nodeDegree, ErrBadNodeDegree))
	}
	if c.epsilon < 0 {
		err = multierr.Append(err, fmt.Errorf("epsilon=%v: %w", c.epsilon, ErrNegativeEpsilon))
	}
	if c.maxTries < 1 {
		err = multierr.Append(err, fmt.Errorf("maxTries=%d: %w", c.maxTries, ErrBadMaxTries))
	}

	return err
}

// WithK sets the hop radius (k-hop lifting) or neighbor count (kNN lifting).
// Complexity: O(1).
func WithK(k int) Option {
	return func(c *config) { c.k = k }
}

// WithMaxRank caps the simplex dimension for simplicial liftings.
// Complexity: O(1).
func WithMaxRank(r int) Option {
	return func(c *config) { c.maxRank = r }
}

// WithMaxCellLength caps the boundary length of detected 2-cells.
// Complexity: O(1).
func WithMaxCellLength(l int) Option {
	return func(c *config) { c.maxCellLength = l }
}

// WithNodeDegree sets the expander lifting's node degree (must be even).
// Complexity: O(1).
func WithNodeDegree(d int) Option {
	return func(c *config) { c.nodeDegree = d }
}

// WithEpsilon sets the expander spectral tolerance.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	return func(c *config) { c.epsilon = eps }
}

// WithMaxTries caps the expander retry loops.
// Complexity: O(1).
func WithMaxTries(tries int) Option {
	return func(c *config) { c.maxTries = tries }
}

// WithSeed fixes the RNG seed used by stochastic liftings.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithMetric overrides the kNN distance metric. Panics on nil (programmer
// error); the default is EuclideanMetric over node features.
// Complexity: O(1).
func WithMetric(m Metric) Option {
	if m == nil {
		panic("lift: WithMetric(nil)")
	}
	return func(c *config) { c.metric = m }
}
