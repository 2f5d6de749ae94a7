// SPDX-License-Identifier: MIT
// Package graph: functional options for Graph construction.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic ONLY on programmer-nonsense (nil matrix);
//     value validation against n happens inside New and returns sentinels.
//   • No hidden globals; everything flows through the resolved config.

package graph

import "gonum.org/v1/gonum/mat"

// Option customizes Graph construction by mutating the internal config
// before validation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries the resolved construction knobs.
type config struct {
	directed   bool
	allowLoops bool
	features   *mat.Dense
	labels     []int
}

// WithDirected marks the edge list as directed (u→v). The default is
// undirected; most liftings symmetrize directed inputs anyway.
// Complexity: O(1).
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithLoops permits self-loop edges (u == u). Off by default because the
// lifting data model assumes simple graphs.
// Complexity: O(1).
func WithLoops() Option {
	return func(c *config) { c.allowLoops = true }
}

// WithFeatures attaches the node feature matrix (row i = features of node i).
// Panics on nil to surface programmer error early; the row-count check
// against n happens in New (ErrFeatureShape).
// Complexity: O(1) — the matrix is referenced, not copied.
func WithFeatures(x *mat.Dense) Option {
	if x == nil {
		panic("graph: WithFeatures(nil)")
	}
	return func(c *config) { c.features = x }
}

// WithLabels attaches per-node labels. Length is checked in New
// (ErrLabelLength). The slice is copied at construction, not here.
// Complexity: O(1).
func WithLabels(y []int) Option {
	return func(c *config) { c.labels = y }
}
