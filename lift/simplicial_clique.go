// SPDX-License-Identifier: MIT
// Package lift — graph → simplicial complex lifting via maximal cliques.
//
// Contract:
//   • Every maximal clique of size s contributes an (s−1)-simplex; cliques
//     larger than maxRank+1 vertices contribute all (maxRank+1)-subsets
//     (their largest admissible faces). Downward closure then supplies
//     every sub-clique's simplex, so the complex is closed by construction
//     and verified anyway.
//   • Enumeration is Bron–Kerbosch with pivoting over the symmetrized
//     graph; candidate sets iterate in ascending node order, so the
//     produced collection is deterministic.
//
// Complexity: O(3^(n/3)) worst case (Moon–Moser), output-sensitive in
// practice.

package lift

import (
	"sort"

	"github.com/katalvlaran/toplift/graph"
	"github.com/katalvlaran/toplift/topology"
)

// cliqueLifting lifts maximal cliques to simplices.
type cliqueLifting struct {
	cfg config
}

// Kind reports SimplicialClique.
func (l *cliqueLifting) Kind() Kind { return SimplicialClique }

// Lift derives the ranked simplicial structure of g.
//
// Implementation:
//   - Stage 1 (Validate): non-nil graph.
//   - Stage 2 (Enumerate): Bron–Kerbosch maximal cliques, each truncated
//     into the SimplexSet via addTruncated.
//   - Stage 3 (Finalize): simplicialDescriptor closes, validates and
//     materializes incidences + lifted features.
//
// Errors: graph.ErrGraphNil, topology.ErrClosureViolated.
func (l *cliqueLifting) Lift(g *graph.Graph) (*topology.Descriptor, error) {
	const tag = "SimplicialClique.Lift"
	if g == nil {
		return nil, wrapLift(tag, graph.ErrGraphNil)
	}
	u := g.Symmetrized()
	adj := u.AdjacencyList()

	ss, err := topology.NewSimplexSet(l.cfg.maxRank)
	if err != nil {
		return nil, wrapLift(tag, err)
	}
	if err = maximalCliques(adj, func(clique []int) error {
		return addTruncated(ss, clique)
	}); err != nil {
		return nil, wrapLift(tag, err)
	}

	desc, err := simplicialDescriptor(g, ss)
	if err != nil {
		return nil, wrapLift(tag, err)
	}

	return desc, nil
}

// maximalCliques runs Bron–Kerbosch with pivoting and invokes fn once per
// maximal clique, vertices sorted ascending. fn receives a fresh slice.
// Isolated nodes surface as singleton cliques (their 0-simplex).
func maximalCliques(adj [][]int, fn func([]int) error) error {
	n := len(adj)
	if n == 0 {
		return nil
	}
	neighbor := make([]map[int]struct{}, n)
	for v := range adj {
		neighbor[v] = make(map[int]struct{}, len(adj[v]))
		for _, w := range adj[v] {
			neighbor[v][w] = struct{}{}
		}
	}

	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	var recurse func(r, p, x []int) error
	recurse = func(r, p, x []int) error {
		if len(p) == 0 && len(x) == 0 {
			clique := append([]int(nil), r...)
			sort.Ints(clique)
			return fn(clique)
		}
		// Pivot: element of P ∪ X with the most neighbors in P trims the
		// branching the classic way.
		pivot, best := -1, -1
		for _, cand := range [][]int{p, x} {
			for _, u := range cand {
				cnt := 0
				for _, w := range p {
					if _, ok := neighbor[u][w]; ok {
						cnt++
					}
				}
				if cnt > best {
					best, pivot = cnt, u
				}
			}
		}

		// Iterate a stable snapshot of P \ N(pivot) in ascending order.
		snapshot := make([]int, 0, len(p))
		for _, v := range p {
			if _, ok := neighbor[pivot][v]; !ok {
				snapshot = append(snapshot, v)
			}
		}
		for _, v := range snapshot {
			nextP := intersect(p, neighbor[v])
			nextX := intersect(x, neighbor[v])
			if err := recurse(append(r, v), nextP, nextX); err != nil {
				return err
			}
			p = remove(p, v)
			x = append(x, v)
		}

		return nil
	}

	return recurse(nil, p, nil)
}

// intersect filters s (ascending) to members of set, preserving order.
func intersect(s []int, set map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for _, v := range s {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// remove drops the first occurrence of v from s, preserving order.
func remove(s []int, v int) []int {
	for i, w := range s {
		if w == v {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}
