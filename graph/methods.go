// SPDX-License-Identifier: MIT
// Package graph — read-only accessors and derived views.
//
// All methods below treat the receiver as immutable. Methods returning
// slices return fresh copies; Features returns the underlying matrix and
// documents the read-only contract (cloning an n×f matrix on every access
// would dominate lifting cost).

package graph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// NumNodes returns n. Complexity: O(1).
func (g *Graph) NumNodes() int { return g.n }

// NumEdges returns the number of edges as given at construction.
// Complexity: O(1).
func (g *Graph) NumEdges() int { return len(g.edges) }

// Directed reports whether the edge list is interpreted as directed.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loop edges are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool { return g.allowLoops }

// Edges returns a copy of the edge list in construction order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Neighbors returns the sorted, deduplicated neighbor list of v
// (out-neighbors for directed graphs) as a fresh slice.
// Errors: ErrNodeOutOfRange.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): n=%d: %w", v, g.n, ErrNodeOutOfRange)
	}
	return append([]int(nil), g.adj[v]...), nil
}

// Degree returns the number of distinct neighbors of v (out-degree for
// directed graphs).
// Errors: ErrNodeOutOfRange.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("Degree(%d): n=%d: %w", v, g.n, ErrNodeOutOfRange)
	}
	return len(g.adj[v]), nil
}

// AdjacencyList exposes the full neighbor structure as a deep copy,
// indexable by node. Useful for algorithms that walk every list once.
// Complexity: O(n + E).
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.n)
	for i := range g.adj {
		out[i] = append([]int(nil), g.adj[i]...)
	}
	return out
}

// Features returns the node feature matrix, or nil when absent.
// The returned matrix is shared with the Graph and MUST be treated as
// read-only; mutate a clone (mat.DenseCopyOf) instead.
// Complexity: O(1).
func (g *Graph) Features() *mat.Dense { return g.features }

// FeatureDim returns the feature width f, or 0 when no features are set.
// Complexity: O(1).
func (g *Graph) FeatureDim() int {
	if g.features == nil {
		return 0
	}
	_, f := g.features.Dims()
	return f
}

// Labels returns a copy of the label vector, or nil when absent.
// Complexity: O(n).
func (g *Graph) Labels() []int {
	if g.labels == nil {
		return nil
	}
	return append([]int(nil), g.labels...)
}

// Symmetrized returns the undirected view of g: unordered edge pairs
// deduplicated, each emitted once as (min,max) in ascending order.
// Features and labels are shared (both views are read-only).
// For an already-undirected graph this still canonicalizes the edge list.
// Complexity: O(n + E log E).
func (g *Graph) Symmetrized() *Graph {
	// Collect unique unordered pairs straight from the adjacency lists:
	// adj is already deduplicated, so emitting only u < v pairs (plus loops)
	// yields each undirected edge exactly once, in ascending order.
	edges := make([]Edge, 0, len(g.edges))
	var u, v int
	for u = 0; u < g.n; u++ {
		for _, v = range g.adj[u] {
			if u < v || (u == v && g.allowLoops) {
				edges = append(edges, Edge{u, v})
			}
		}
	}
	// Directed graphs may hold v→u only; merge by scanning reverse arcs.
	if g.directed {
		seen := make(map[Edge]struct{}, len(edges))
		for _, e := range edges {
			seen[e] = struct{}{}
		}
		for u = 0; u < g.n; u++ {
			for _, v = range g.adj[u] {
				if u > v {
					key := Edge{v, u}
					if _, dup := seen[key]; !dup {
						seen[key] = struct{}{}
						edges = append(edges, key)
					}
				}
			}
		}
		sortEdges(edges)
	}

	out := &Graph{
		n:          g.n,
		directed:   false,
		allowLoops: g.allowLoops,
		edges:      edges,
		features:   g.features,
		labels:     g.labels,
	}
	out.adj = buildAdjacency(g.n, edges, false)

	return out
}

// Clone returns a deep copy of g (features cloned, labels copied).
// Complexity: O(n + E + n·f).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		n:          g.n,
		directed:   g.directed,
		allowLoops: g.allowLoops,
		edges:      append([]Edge(nil), g.edges...),
	}
	out.adj = make([][]int, g.n)
	for i := range g.adj {
		out.adj[i] = append([]int(nil), g.adj[i]...)
	}
	if g.features != nil {
		out.features = mat.DenseCopyOf(g.features)
	}
	if g.labels != nil {
		out.labels = append([]int(nil), g.labels...)
	}

	return out
}

// sortEdges orders edges lexicographically (u asc, then v asc) in place.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
}
