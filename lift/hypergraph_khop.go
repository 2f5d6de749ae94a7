// SPDX-License-Identifier: MIT
// Package lift — graph → hypergraph lifting via k-hop neighborhoods.
//
// Contract:
//   • One hyperedge per node v: every node reachable from v within k hops,
//     v itself included. Exactly n hyperedges; duplicate membership sets
//     across different source nodes are preserved, not collapsed.
//   • Directed inputs are symmetrized first.
//   • Hyperedge arity invariant (≥ 2 members) is verified on the result:
//     a graph with an isolated node cannot be lifted by this algorithm.
//
// Complexity: O(n·(n+E)) time — one bounded BFS per node.

package lift

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/toplift/graph"
	"github.com/katalvlaran/toplift/topology"
)

// khopLifting lifts each node's k-hop ball to a hyperedge.
type khopLifting struct {
	cfg config
}

// Kind reports HypergraphKHop.
func (l *khopLifting) Kind() Kind { return HypergraphKHop }

// Lift derives the n-hyperedge incidence structure of g.
//
// Implementation:
//   - Stage 1 (Validate): non-nil graph; config was validated by New.
//   - Stage 2 (Symmetrize): liftings read undirected connectivity.
//   - Stage 3 (Execute): bounded BFS per node; column v collects the ball
//     of v in ascending node order.
//   - Stage 4 (Verify+Finalize): hyperedge arity check, sum feature lifting,
//     pass-through of features and labels.
//
// Errors: graph.ErrGraphNil, topology.ErrHyperedgeTooSmall.
func (l *khopLifting) Lift(g *graph.Graph) (*topology.Descriptor, error) {
	if g == nil {
		return nil, fmt.Errorf("HypergraphKHop.Lift: %w", graph.ErrGraphNil)
	}
	u := g.Symmetrized()
	n := u.NumNodes()
	adj := u.AdjacencyList()

	inc, err := topology.NewCOO(n, n)
	if err != nil {
		return nil, fmt.Errorf("HypergraphKHop.Lift: %w", err)
	}
	for v := 0; v < n; v++ {
		for _, member := range khopBall(adj, v, l.cfg.k) {
			if aerr := inc.Append(member, v, 1); aerr != nil {
				return nil, fmt.Errorf("HypergraphKHop.Lift: %w", aerr)
			}
		}
	}
	if err = inc.ValidateHyperedges(); err != nil {
		return nil, fmt.Errorf("HypergraphKHop.Lift: %w", err)
	}

	desc := topology.NewDescriptor(n)
	desc.Incidence[1] = inc
	desc.Counts[1] = n
	attachPassThrough(desc, g)
	if err = SumFeatures(desc); err != nil {
		return nil, fmt.Errorf("HypergraphKHop.Lift: %w", err)
	}

	return desc, nil
}

// khopBall returns every node within k hops of start (start included),
// ascending. Bounded breadth-first traversal over adjacency lists.
// Complexity: O(n + E) worst case, O(ball) typical.
func khopBall(adj [][]int, start, k int) []int {
	type item struct{ node, depth int }
	visited := make(map[int]struct{}, len(adj))
	visited[start] = struct{}{}
	queue := []item{{node: start, depth: 0}}
	members := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth == k {
			continue
		}
		for _, nb := range adj[cur.node] {
			if _, seen := visited[nb]; seen {
				continue
			}
			visited[nb] = struct{}{}
			members = append(members, nb)
			queue = append(queue, item{node: nb, depth: cur.depth + 1})
		}
	}
	// Neighbor lists are sorted, but BFS emits by depth layer; restore
	// ascending order for deterministic incidence triplets.
	sort.Ints(members)

	return members
}

// attachPassThrough copies the 0-rank surface of g onto desc: the feature
// matrix is shared (read-only contract), labels are already copies.
func attachPassThrough(desc *topology.Descriptor, g *graph.Graph) {
	if x := g.Features(); x != nil {
		desc.Features[0] = x
	}
	desc.Labels = g.Labels()
}
