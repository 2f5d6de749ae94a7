// SPDX-License-Identifier: MIT
// Package lift — graph → simplicial complex lifting via closed neighborhoods.
//
// Contract:
//   • For every node v, the closed neighborhood {v} ∪ N(v) contributes a
//     simplex. Neighborhoods larger than maxRank+1 vertices contribute all
//     of their (maxRank+1)-subsets instead — the largest admissible faces.
//   • Downward closure is enforced and verified before the descriptor is
//     built; deduplication is by vertex-set identity.
//   • Directed inputs are symmetrized first.
//
// Complexity: O(Σ_v C(|N[v]|, maxRank+1)) simplex insertions, bounded in
// practice by the configured max rank.

package lift

import (
	"github.com/katalvlaran/toplift/graph"
	"github.com/katalvlaran/toplift/topology"
)

// neighborhoodLifting lifts closed neighborhoods to simplices.
type neighborhoodLifting struct {
	cfg config
}

// Kind reports SimplicialNeighborhood.
func (l *neighborhoodLifting) Kind() Kind { return SimplicialNeighborhood }

// Lift derives the ranked simplicial structure of g.
//
// Implementation:
//   - Stage 1 (Validate): non-nil graph.
//   - Stage 2 (Seed): closed neighborhood of every node, truncated to the
//     max rank via addTruncated.
//   - Stage 3 (Finalize): simplicialDescriptor closes, validates and
//     materializes incidences + lifted features.
//
// Errors: graph.ErrGraphNil, topology.ErrClosureViolated.
func (l *neighborhoodLifting) Lift(g *graph.Graph) (*topology.Descriptor, error) {
	const tag = "SimplicialNeighborhood.Lift"
	if g == nil {
		return nil, wrapLift(tag, graph.ErrGraphNil)
	}
	u := g.Symmetrized()
	adj := u.AdjacencyList()

	ss, err := topology.NewSimplexSet(l.cfg.maxRank)
	if err != nil {
		return nil, wrapLift(tag, err)
	}
	for v := range adj {
		if err = addTruncated(ss, closedNeighborhood(adj, v)); err != nil {
			return nil, wrapLift(tag, err)
		}
	}

	desc, err := simplicialDescriptor(g, ss)
	if err != nil {
		return nil, wrapLift(tag, err)
	}

	return desc, nil
}
