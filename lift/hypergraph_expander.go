// SPDX-License-Identifier: MIT
// Package lift — graph → hypergraph lifting via expander structure.
//
// Contract:
//   • The input's connectivity is ignored by design: a fresh expander graph
//     is generated on the same n nodes (configured even node degree) and
//     each expander edge becomes a size-2 hyperedge. The expander acts as a
//     synthetic structural prior over the node set.
//   • Parameter validation (even degree ≥ 2, ε ≥ 0, maxTries ≥ 1) happened
//     in New; generation failures surface as expander sentinels.
//   • Randomness comes from the configured seed only.
//
// Complexity: dominated by expander.Generate.

package lift

import (
	"fmt"

	"github.com/katalvlaran/toplift/expander"
	"github.com/katalvlaran/toplift/graph"
	"github.com/katalvlaran/toplift/topology"
)

// expanderLifting lifts expander-graph edges to size-2 hyperedges.
type expanderLifting struct {
	cfg config
}

// Kind reports HypergraphExpander.
func (l *expanderLifting) Kind() Kind { return HypergraphExpander }

// Lift generates an expander on g's node set and returns its node × edge
// incidence as the hypergraph structure.
//
// Implementation:
//   - Stage 1 (Validate): non-nil graph.
//   - Stage 2 (Generate): expander.Generate(n, nodeDegree) with the
//     configured ε, maxTries and seed.
//   - Stage 3 (Finalize): one column per expander edge, rows = endpoints;
//     arity is 2 by construction but verified anyway; sum feature lifting
//     and pass-through complete the descriptor.
//
// Errors: graph.ErrGraphNil and every expander.Generate sentinel
// (ErrInvalidDegree, ErrTooFewNodes, ErrConstructExhausted, ...).
func (l *expanderLifting) Lift(g *graph.Graph) (*topology.Descriptor, error) {
	if g == nil {
		return nil, fmt.Errorf("HypergraphExpander.Lift: %w", graph.ErrGraphNil)
	}
	n := g.NumNodes()

	ex, err := expander.Generate(n, l.cfg.nodeDegree,
		expander.WithEpsilon(l.cfg.epsilon),
		expander.WithMaxTries(l.cfg.maxTries),
		expander.WithSeed(l.cfg.seed),
	)
	if err != nil {
		return nil, fmt.Errorf("HypergraphExpander.Lift: %w", err)
	}

	edges := ex.Edges()
	inc, err := topology.NewCOO(n, len(edges))
	if err != nil {
		return nil, fmt.Errorf("HypergraphExpander.Lift: %w", err)
	}
	for j, e := range edges {
		if aerr := inc.Append(e[0], j, 1); aerr != nil {
			return nil, fmt.Errorf("HypergraphExpander.Lift: %w", aerr)
		}
		if aerr := inc.Append(e[1], j, 1); aerr != nil {
			return nil, fmt.Errorf("HypergraphExpander.Lift: %w", aerr)
		}
	}
	if err = inc.ValidateHyperedges(); err != nil {
		return nil, fmt.Errorf("HypergraphExpander.Lift: %w", err)
	}

	desc := topology.NewDescriptor(n)
	desc.Incidence[1] = inc
	desc.Counts[1] = len(edges)
	attachPassThrough(desc, g)
	if err = SumFeatures(desc); err != nil {
		return nil, fmt.Errorf("HypergraphExpander.Lift: %w", err)
	}

	return desc, nil
}
