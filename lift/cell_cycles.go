// SPDX-License-Identifier: MIT
// Package lift — graph → cell complex lifting via a fundamental cycle basis.
//
// Contract:
//   • A spanning forest (breadth-first, ascending roots and neighbors)
//     induces one fundamental cycle per non-tree edge: the tree path
//     between the endpoints closed by the edge itself. Cycles longer than
//     maxCellLength are discarded; the survivors become 2-cells,
//     deduplicated by boundary-edge identity.
//   • The complex keeps its 0-cells (nodes) and 1-cells (the symmetrized
//     graph's edges) so every 2-cell boundary is backed by existing
//     1-cells — verified before the descriptor is returned.
//   • Directed inputs are symmetrized first.
//
// Complexity: O(n + E) for the forest, O(E·maxCellLength) for the cycles.

package lift

import (
	"github.com/katalvlaran/toplift/graph"
	"github.com/katalvlaran/toplift/topology"
)

// cellLifting lifts fundamental cycles to 2-cells.
type cellLifting struct {
	cfg config
}

// Kind reports CellCycles.
func (l *cellLifting) Kind() Kind { return CellCycles }

// Lift derives the three-rank cell structure of g: nodes, edges, cycles.
//
// Implementation:
//   - Stage 1 (Validate): non-nil graph.
//   - Stage 2 (Detect): BFS spanning forest, then one fundamental cycle
//     per non-tree edge (processed in canonical edge order), length-capped
//     and deduplicated by boundary identity.
//   - Stage 3 (Verify): every 2-cell boundary edge must be a 1-cell.
//   - Stage 4 (Finalize): rank-1 incidence is the node×edge incidence,
//     rank-2 the node×cell incidence; sum feature lifting + pass-through.
//
// Errors: graph.ErrGraphNil, topology.ErrBoundaryInconsistent.
func (l *cellLifting) Lift(g *graph.Graph) (*topology.Descriptor, error) {
	const tag = "CellCycles.Lift"
	if g == nil {
		return nil, wrapLift(tag, graph.ErrGraphNil)
	}
	u := g.Symmetrized()
	n := u.NumNodes()
	edges := u.Edges() // canonical (min,max) pairs, lexicographic
	adj := u.AdjacencyList()

	parent, depth, inTree := spanningForest(adj, edges)

	cells := topology.NewCellSet()
	for i, e := range edges {
		if inTree[i] {
			continue
		}
		cycle := fundamentalCycle(parent, depth, e[0], e[1])
		if len(cycle) < 3 || len(cycle) > l.cfg.maxCellLength {
			continue
		}
		c, err := topology.NewCell(cycle)
		if err != nil {
			return nil, wrapLift(tag, err)
		}
		cells.Add(c) // duplicates collapse by boundary identity
	}

	// Boundary consistency against the retained 1-cells.
	oneCells := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		oneCells[[2]int{e[0], e[1]}] = struct{}{}
	}
	if err := cells.ValidateBoundaries(oneCells); err != nil {
		return nil, wrapLift(tag, err)
	}

	desc := topology.NewDescriptor(n)
	desc.Counts[1] = len(edges)
	desc.Counts[2] = cells.Len()

	incEdges, err := topology.NewCOO(n, len(edges))
	if err != nil {
		return nil, wrapLift(tag, err)
	}
	for j, e := range edges {
		if aerr := incEdges.Append(e[0], j, 1); aerr != nil {
			return nil, wrapLift(tag, aerr)
		}
		if aerr := incEdges.Append(e[1], j, 1); aerr != nil {
			return nil, wrapLift(tag, aerr)
		}
	}
	desc.Incidence[1] = incEdges

	incCells, err := topology.NewCOO(n, cells.Len())
	if err != nil {
		return nil, wrapLift(tag, err)
	}
	for j, c := range cells.Cells() {
		for _, v := range c.Nodes() {
			if aerr := incCells.Append(v, j, 1); aerr != nil {
				return nil, wrapLift(tag, aerr)
			}
		}
	}
	desc.Incidence[2] = incCells

	attachPassThrough(desc, g)
	if err = SumFeatures(desc); err != nil {
		return nil, wrapLift(tag, err)
	}

	return desc, nil
}

// spanningForest runs BFS from every unvisited root in ascending order and
// classifies each canonical edge as tree or non-tree.
// Returns parent pointers (-1 at roots), BFS depths and the per-edge flag.
func spanningForest(adj [][]int, edges []graph.Edge) (parent, depth []int, inTree []bool) {
	n := len(adj)
	parent = make([]int, n)
	depth = make([]int, n)
	visited := make([]bool, n)
	for i := range parent {
		parent[i] = -1
	}

	treeEdge := make(map[[2]int]struct{}, n)
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue := []int{root}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range adj[v] {
				if visited[w] {
					continue
				}
				visited[w] = true
				parent[w] = v
				depth[w] = depth[v] + 1
				treeEdge[orientPair(v, w)] = struct{}{}
				queue = append(queue, w)
			}
		}
	}

	inTree = make([]bool, len(edges))
	for i, e := range edges {
		_, inTree[i] = treeEdge[[2]int{e[0], e[1]}]
	}

	return parent, depth, inTree
}

// fundamentalCycle returns the cycle closed by non-tree edge (u,v): the
// tree path u→LCA followed by the reversed path LCA→v. The edge (u,v)
// itself is the implicit closing edge of the returned sequence.
func fundamentalCycle(parent, depth []int, u, v int) []int {
	up := []int{u}
	vp := []int{v}
	// Climb the deeper endpoint until both sit at one depth, then in step.
	for depth[u] > depth[v] {
		u = parent[u]
		up = append(up, u)
	}
	for depth[v] > depth[u] {
		v = parent[v]
		vp = append(vp, v)
	}
	for u != v {
		u = parent[u]
		up = append(up, u)
		v = parent[v]
		vp = append(vp, v)
	}
	// up ends at the LCA; vp's copy of it would duplicate the vertex.
	cycle := up
	for i := len(vp) - 2; i >= 0; i-- {
		cycle = append(cycle, vp[i])
	}

	return cycle
}

// orientPair normalizes an unordered pair to (min,max).
func orientPair(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
