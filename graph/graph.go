// SPDX-License-Identifier: MIT
// Package graph — Graph type and constructor.
//
// Deliverables:
//   1) Fail-fast construction: every invariant is checked before the Graph
//      value escapes (endpoints in range, loop policy, feature/label shape).
//   2) Deterministic adjacency: neighbor lists deduplicated and sorted
//      ascending at construction time; no map-order reliance anywhere.
//   3) Immutability after construction: no mutating methods are exported.
//
// AI-Hints:
//   - Build once, share freely: a *Graph is safe for concurrent readers.
//   - Pass WithDirected() for directed edge lists; call Symmetrized() to get
//     the undirected view most liftings expect.

package graph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Edge is an ordered pair of node indices. For undirected graphs the order
// carries no meaning beyond reproducing the input edge list.
type Edge [2]int

// Graph is the normalized, immutable in-memory graph consumed by liftings.
type Graph struct {
	n          int
	directed   bool
	allowLoops bool
	edges      []Edge
	adj        [][]int // deduplicated, sorted neighbor lists
	features   *mat.Dense
	labels     []int
}

// New constructs a Graph over n nodes with the given edge list.
//
// Implementation:
//   - Stage 1 (Resolve): apply options onto the zero config.
//   - Stage 2 (Validate): n ≥ 0, endpoints ∈ [0,n), loop policy,
//     feature rows == n, label length == n. Fail fast, zero side-effects.
//   - Stage 3 (Build): copy the edge list, build sorted adjacency.
//
// Errors: ErrBadNodeCount, ErrNodeOutOfRange, ErrLoopNotAllowed,
// ErrFeatureShape, ErrLabelLength.
// Complexity: O(n + E log E) time, O(n + E) space.
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrBadNodeCount)
	}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("New: edge (%d,%d) with n=%d: %w", e[0], e[1], n, ErrNodeOutOfRange)
		}
		if e[0] == e[1] && !cfg.allowLoops {
			return nil, fmt.Errorf("New: edge (%d,%d): %w", e[0], e[1], ErrLoopNotAllowed)
		}
	}
	if cfg.features != nil {
		if r, _ := cfg.features.Dims(); r != n {
			return nil, fmt.Errorf("New: features have %d rows, n=%d: %w", mustRows(cfg.features), n, ErrFeatureShape)
		}
	}
	if cfg.labels != nil && len(cfg.labels) != n {
		return nil, fmt.Errorf("New: %d labels, n=%d: %w", len(cfg.labels), n, ErrLabelLength)
	}

	g := &Graph{
		n:          n,
		directed:   cfg.directed,
		allowLoops: cfg.allowLoops,
		edges:      append([]Edge(nil), edges...),
		features:   cfg.features,
	}
	if cfg.labels != nil {
		g.labels = append([]int(nil), cfg.labels...)
	}
	g.adj = buildAdjacency(n, g.edges, cfg.directed)

	return g, nil
}

// buildAdjacency materializes deduplicated, ascending neighbor lists.
// For undirected graphs every edge contributes both directions; self-loops
// (when permitted) contribute a single entry.
// Complexity: O(n + E log E).
func buildAdjacency(n int, edges []Edge, directed bool) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		adj[u] = append(adj[u], v)
		if !directed && u != v {
			adj[v] = append(adj[v], u)
		}
	}
	// Sort and deduplicate each list for deterministic iteration.
	var w int
	for i := range adj {
		sort.Ints(adj[i])
		w = 0
		for j, nb := range adj[i] {
			if j == 0 || nb != adj[i][j-1] {
				adj[i][w] = nb
				w++
			}
		}
		adj[i] = adj[i][:w]
	}

	return adj
}

// mustRows returns the row count of a non-nil matrix (error-message helper).
func mustRows(m *mat.Dense) int {
	r, _ := m.Dims()
	return r
}
