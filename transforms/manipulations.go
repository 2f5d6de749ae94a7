// SPDX-License-Identifier: MIT
// Package transforms — the manipulation steps.
//
// Every constructor returns a Transform closure. Constructors validate
// their parameters immediately and surface sentinels from the returned
// step (not panics), so a misconfigured pipeline fails on first Apply.

package transforms

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/toplift/graph"
)

// Transform is one pure manipulation step: graph in, graph out.
type Transform func(*graph.Graph) (*graph.Graph, error)

// Identity returns the input graph untouched (same pointer, bit-for-bit).
func Identity() Transform {
	return func(g *graph.Graph) (*graph.Graph, error) {
		if g == nil {
			return nil, fmt.Errorf("Identity: %w", graph.ErrGraphNil)
		}
		return g, nil
	}
}

// ToFloat re-materializes the feature matrix as a detached float64 copy,
// guaranteeing downstream steps never alias the input's storage. Graphs
// without features pass through rebuilt but featureless.
func ToFloat() Transform {
	return func(g *graph.Graph) (*graph.Graph, error) {
		if g == nil {
			return nil, fmt.Errorf("ToFloat: %w", graph.ErrGraphNil)
		}
		return g.Clone(), nil
	}
}

// NodeDegrees appends each node's degree as one extra feature column
// (creating an n×1 feature matrix when the graph has none).
func NodeDegrees() Transform {
	return func(g *graph.Graph) (*graph.Graph, error) {
		if g == nil {
			return nil, fmt.Errorf("NodeDegrees: %w", graph.ErrGraphNil)
		}
		n := g.NumNodes()
		col := make([]float64, n)
		for v := 0; v < n; v++ {
			d, err := g.Degree(v)
			if err != nil {
				return nil, fmt.Errorf("NodeDegrees: %w", err)
			}
			col[v] = float64(d)
		}
		return withExtraColumns(g, [][]float64{col})
	}
}

// OneHotDegree appends a one-hot encoding of each node's degree, capped at
// maxDegree (degrees ≥ maxDegree share the last bucket). maxDegree+1
// columns are appended.
func OneHotDegree(maxDegree int) Transform {
	return func(g *graph.Graph) (*graph.Graph, error) {
		if g == nil {
			return nil, fmt.Errorf("OneHotDegree: %w", graph.ErrGraphNil)
		}
		if maxDegree < 1 {
			return nil, fmt.Errorf("OneHotDegree: maxDegree=%d: %w", maxDegree, ErrBadMaxDegree)
		}
		n := g.NumNodes()
		cols := make([][]float64, maxDegree+1)
		for i := range cols {
			cols[i] = make([]float64, n)
		}
		for v := 0; v < n; v++ {
			d, err := g.Degree(v)
			if err != nil {
				return nil, fmt.Errorf("OneHotDegree: %w", err)
			}
			if d > maxDegree {
				d = maxDegree
			}
			cols[d][v] = 1
		}
		return withExtraColumns(g, cols)
	}
}

// EqualGaussianFeatures replaces node features with an n×dim matrix of
// independent N(mean, std²) draws from the given seed.
func EqualGaussianFeatures(mean, std float64, dim int, seed int64) Transform {
	return func(g *graph.Graph) (*graph.Graph, error) {
		if g == nil {
			return nil, fmt.Errorf("EqualGaussianFeatures: %w", graph.ErrGraphNil)
		}
		if dim < 1 {
			return nil, fmt.Errorf("EqualGaussianFeatures: dim=%d: %w", dim, ErrBadDimension)
		}
		if std <= 0 {
			return nil, fmt.Errorf("EqualGaussianFeatures: std=%v: %w", std, ErrBadStd)
		}
		n := g.NumNodes()
		rng := rand.New(rand.NewSource(seed))
		data := make([]float64, n*dim)
		for i := range data {
			data[i] = mean + std*rng.NormFloat64()
		}
		return rebuild(g, g.Edges(), mat.NewDense(max(n, 1), dim, padTo(data, max(n, 1)*dim)), g.Labels())
	}
}

// KeepLargestComponent keeps only the largest connected component of the
// symmetrized graph (ties broken by smallest member index), reindexing the
// surviving nodes to 0..m-1 and slicing features/labels accordingly.
func KeepLargestComponent() Transform {
	return func(g *graph.Graph) (*graph.Graph, error) {
		if g == nil {
			return nil, fmt.Errorf("KeepLargestComponent: %w", graph.ErrGraphNil)
		}
		n := g.NumNodes()
		if n == 0 {
			return g, nil
		}
		comp := components(g.Symmetrized().AdjacencyList())

		// Pick the largest component; earlier component id wins ties
		// because components are discovered in ascending root order.
		sizes := make(map[int]int)
		for _, c := range comp {
			sizes[c]++
		}
		bestID, bestSize := 0, -1
		for id := 0; id < len(sizes); id++ {
			if sizes[id] > bestSize {
				bestID, bestSize = id, sizes[id]
			}
		}

		// Old→new index mapping for the survivors, ascending.
		remap := make(map[int]int, bestSize)
		keep := make([]int, 0, bestSize)
		for v := 0; v < n; v++ {
			if comp[v] == bestID {
				remap[v] = len(keep)
				keep = append(keep, v)
			}
		}

		edges := make([]graph.Edge, 0, g.NumEdges())
		for _, e := range g.Edges() {
			u, okU := remap[e[0]]
			w, okW := remap[e[1]]
			if okU && okW {
				edges = append(edges, graph.Edge{u, w})
			}
		}

		var x *mat.Dense
		if g.Features() != nil {
			_, f := g.Features().Dims()
			x = mat.NewDense(len(keep), f, nil)
			for newIdx, old := range keep {
				x.SetRow(newIdx, g.Features().RawRowView(old))
			}
		}
		var y []int
		if lbl := g.Labels(); lbl != nil {
			y = make([]int, len(keep))
			for newIdx, old := range keep {
				y[newIdx] = lbl[old]
			}
		}

		return rebuildN(g, len(keep), edges, x, y)
	}
}

// KNNGraph infers undirected connectivity from coordinate features: each
// node links to its k nearest neighbors (Euclidean, ties by index), and the
// union of links is symmetrized. Existing edges are replaced.
func KNNGraph(k int) Transform {
	return func(g *graph.Graph) (*graph.Graph, error) {
		if g == nil {
			return nil, fmt.Errorf("KNNGraph: %w", graph.ErrGraphNil)
		}
		if k < 1 {
			return nil, fmt.Errorf("KNNGraph: k=%d: %w", k, ErrBadK)
		}
		x := g.Features()
		if x == nil {
			return nil, fmt.Errorf("KNNGraph: %w", ErrMissingFeatures)
		}
		n := g.NumNodes()
		if k >= n {
			return nil, fmt.Errorf("KNNGraph: k=%d, n=%d: %w", k, n, ErrBadK)
		}

		pairs := make(map[graph.Edge]struct{})
		type candidate struct {
			node int
			dist float64
		}
		cands := make([]candidate, 0, n-1)
		for v := 0; v < n; v++ {
			cands = cands[:0]
			for w := 0; w < n; w++ {
				if w == v {
					continue
				}
				cands = append(cands, candidate{node: w, dist: floats.Distance(x.RawRowView(v), x.RawRowView(w), 2)})
			}
			sort.Slice(cands, func(i, j int) bool {
				if cands[i].dist != cands[j].dist {
					return cands[i].dist < cands[j].dist
				}
				return cands[i].node < cands[j].node
			})
			for i := 0; i < k; i++ {
				u, w := v, cands[i].node
				if u > w {
					u, w = w, u
				}
				pairs[graph.Edge{u, w}] = struct{}{}
			}
		}

		return rebuild(g, sortedEdges(pairs), x, g.Labels())
	}
}

// RadiusGraph infers undirected connectivity from coordinate features:
// nodes within the given Euclidean radius are linked. Existing edges are
// replaced.
func RadiusGraph(radius float64) Transform {
	return func(g *graph.Graph) (*graph.Graph, error) {
		if g == nil {
			return nil, fmt.Errorf("RadiusGraph: %w", graph.ErrGraphNil)
		}
		if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
			return nil, fmt.Errorf("RadiusGraph: radius=%v: %w", radius, ErrBadRadius)
		}
		x := g.Features()
		if x == nil {
			return nil, fmt.Errorf("RadiusGraph: %w", ErrMissingFeatures)
		}
		n := g.NumNodes()

		var edges []graph.Edge
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if floats.Distance(x.RawRowView(u), x.RawRowView(v), 2) <= radius {
					edges = append(edges, graph.Edge{u, v})
				}
			}
		}

		return rebuild(g, edges, x, g.Labels())
	}
}

// SimplicialCurvature appends a combinatorial curvature column per node:
// 1 − deg(v)/2 + t(v)/3, where t(v) counts triangles through v — the
// 0-cell Forman-style curvature of the clique complex up to rank 2.
func SimplicialCurvature() Transform {
	return func(g *graph.Graph) (*graph.Graph, error) {
		if g == nil {
			return nil, fmt.Errorf("SimplicialCurvature: %w", graph.ErrGraphNil)
		}
		adj := g.Symmetrized().AdjacencyList()
		n := len(adj)

		isEdge := make(map[graph.Edge]struct{})
		for u := 0; u < n; u++ {
			for _, v := range adj[u] {
				if u < v {
					isEdge[graph.Edge{u, v}] = struct{}{}
				}
			}
		}

		col := make([]float64, n)
		for v := 0; v < n; v++ {
			tri := 0
			nbs := adj[v]
			for i := 0; i < len(nbs); i++ {
				for j := i + 1; j < len(nbs); j++ {
					if _, ok := isEdge[graph.Edge{nbs[i], nbs[j]}]; ok {
						tri++
					}
				}
			}
			col[v] = 1 - float64(len(nbs))/2 + float64(tri)/3
		}

		return withExtraColumns(g, [][]float64{col})
	}
}

// --- shared rebuild helpers -------------------------------------------------

// withExtraColumns appends the given columns to g's feature matrix
// (creating one when absent) and rebuilds the graph.
func withExtraColumns(g *graph.Graph, cols [][]float64) (*graph.Graph, error) {
	n := g.NumNodes()
	oldW := g.FeatureDim()
	newW := oldW + len(cols)
	x := mat.NewDense(max(n, 1), newW, nil)
	for v := 0; v < n; v++ {
		for c := 0; c < oldW; c++ {
			x.Set(v, c, g.Features().At(v, c))
		}
		for c, col := range cols {
			x.Set(v, oldW+c, col[v])
		}
	}

	return rebuild(g, g.Edges(), x, g.Labels())
}

// rebuild re-creates a graph like g with the given edges/features/labels.
func rebuild(g *graph.Graph, edges []graph.Edge, x *mat.Dense, y []int) (*graph.Graph, error) {
	return rebuildN(g, g.NumNodes(), edges, x, y)
}

// rebuildN is rebuild with an explicit node count (component filtering).
func rebuildN(g *graph.Graph, n int, edges []graph.Edge, x *mat.Dense, y []int) (*graph.Graph, error) {
	opts := make([]graph.Option, 0, 4)
	if g.Directed() {
		opts = append(opts, graph.WithDirected())
	}
	if g.Looped() {
		opts = append(opts, graph.WithLoops())
	}
	if x != nil && n > 0 {
		opts = append(opts, graph.WithFeatures(x))
	}
	if y != nil {
		opts = append(opts, graph.WithLabels(y))
	}

	return graph.New(n, edges, opts...)
}

// sortedEdges flattens an edge set into lexicographic order.
func sortedEdges(set map[graph.Edge]struct{}) []graph.Edge {
	out := make([]graph.Edge, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// components labels each node with a component id, discovered in ascending
// root order (id 0 contains node 0).
func components(adj [][]int) []int {
	comp := make([]int, len(adj))
	for i := range comp {
		comp[i] = -1
	}
	next := 0
	for root := range adj {
		if comp[root] != -1 {
			continue
		}
		comp[root] = next
		queue := []int{root}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range adj[v] {
				if comp[w] == -1 {
					comp[w] = next
					queue = append(queue, w)
				}
			}
		}
		next++
	}

	return comp
}

// padTo grows data to want entries (zero-filled) so gonum accepts the
// backing slice even for empty graphs.
func padTo(data []float64, want int) []float64 {
	for len(data) < want {
		data = append(data, 0)
	}
	return data
}
