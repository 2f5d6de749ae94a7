// SPDX-License-Identifier: MIT
// Package lift — shared machinery for the simplicial liftings.
//
// Both simplicial liftings funnel through the same finalization: seed a
// SimplexSet, enforce downward closure, verify it, then materialize one
// node-based incidence matrix per rank in the rank's lexicographic element
// order, and lift features by sum.

package lift

import (
	"fmt"

	"github.com/katalvlaran/toplift/graph"
	"github.com/katalvlaran/toplift/topology"
)

// simplicialDescriptor closes ss, validates the closure invariant and
// builds the per-rank descriptor over g.
//
// Rank r ≥ 1 incidence: rows = nodes, columns = r-simplices in
// lexicographic order, entry 1 per simplex vertex.
// Errors: topology.ErrClosureViolated (internal-bug class) and COO errors.
// Complexity: O(Σ_r count_r · (r+1)) plus closure cost.
func simplicialDescriptor(g *graph.Graph, ss *topology.SimplexSet) (*topology.Descriptor, error) {
	ss.Close()
	if err := ss.ValidateClosed(); err != nil {
		return nil, err
	}

	n := g.NumNodes()
	desc := topology.NewDescriptor(n)
	desc.Counts[0] = n // 0-simplices are the nodes themselves

	var r, j int
	for r = 1; r <= ss.MaxRank(); r++ {
		elems := ss.Rank(r)
		desc.Counts[r] = len(elems)
		inc, err := topology.NewCOO(n, len(elems))
		if err != nil {
			return nil, err
		}
		for j = 0; j < len(elems); j++ {
			for _, v := range elems[j] {
				if aerr := inc.Append(v, j, 1); aerr != nil {
					return nil, aerr
				}
			}
		}
		desc.Incidence[r] = inc
	}

	attachPassThrough(desc, g)
	if err := SumFeatures(desc); err != nil {
		return nil, err
	}

	return desc, nil
}

// addTruncated inserts the vertex set as a simplex when it fits under the
// set's max rank, or every (maxRank+1)-subset otherwise, so the largest
// admissible faces of an oversized neighborhood/clique are all present.
// vertices must be sorted ascending (canonical subsets fall out for free).
func addTruncated(ss *topology.SimplexSet, vertices []int) error {
	limit := ss.MaxRank() + 1
	if len(vertices) <= limit {
		s, err := topology.NewSimplex(vertices...)
		if err != nil {
			return err
		}
		return ss.Add(s)
	}

	return combinations(vertices, limit, func(subset []int) error {
		s, err := topology.NewSimplex(subset...)
		if err != nil {
			return err
		}
		return ss.Add(s)
	})
}

// combinations invokes fn for every size-k subset of the sorted slice set,
// in lexicographic order. fn receives a reused buffer; it must not retain it.
func combinations(set []int, k int, fn func([]int) error) error {
	idx := make([]int, k)
	buf := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		for i, p := range idx {
			buf[i] = set[p]
		}
		if err := fn(buf); err != nil {
			return err
		}
		// Advance to the next combination (odometer from the right).
		i := k - 1
		for i >= 0 && idx[i] == len(set)-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// closedNeighborhood returns {v} ∪ N(v) sorted ascending.
func closedNeighborhood(adj [][]int, v int) []int {
	out := make([]int, 0, len(adj[v])+1)
	placed := false
	for _, nb := range adj[v] {
		if !placed && v < nb {
			out = append(out, v)
			placed = true
		}
		if nb != v {
			out = append(out, nb)
		}
	}
	if !placed {
		out = append(out, v)
	}
	return out
}

// wrapLift prefixes a lifting method tag onto err, preserving sentinels.
func wrapLift(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
