// SPDX-License-Identifier: MIT
// Package lift — Lifting interface and the Kind-based factory.
//
// Dispatch is an explicit factory over a closed enum: O(1), compile-time
// exhaustive (the switch below is the single registry), no reflection and
// no string lookup at lifting time.

package lift

import (
	"fmt"

	"github.com/katalvlaran/toplift/graph"
	"github.com/katalvlaran/toplift/topology"
)

// Lifting maps a graph to a complete higher-order topology descriptor.
// Implementations are pure: same graph and config ⇒ same descriptor.
type Lifting interface {
	// Lift derives the higher-order incidence structure of g.
	// It either returns a complete descriptor or an error — never both,
	// never a partial result.
	Lift(g *graph.Graph) (*topology.Descriptor, error)

	// Kind identifies the algorithm.
	Kind() Kind
}

// Kind enumerates the closed set of lifting algorithms.
type Kind int

const (
	// HypergraphKHop lifts each node's k-hop ball to a hyperedge.
	HypergraphKHop Kind = iota
	// HypergraphKNN lifts each node plus its k nearest neighbors.
	HypergraphKNN
	// HypergraphExpander lifts expander-graph edges to size-2 hyperedges.
	HypergraphExpander
	// SimplicialNeighborhood lifts closed neighborhoods to simplices.
	SimplicialNeighborhood
	// SimplicialClique lifts maximal cliques to simplices.
	SimplicialClique
	// CellCycles lifts a fundamental cycle basis to 2-cells.
	CellCycles
)

// kindNames is row-aligned with the Kind constants.
var kindNames = [...]string{
	"HypergraphKHop",
	"HypergraphKNN",
	"HypergraphExpander",
	"SimplicialNeighborhood",
	"SimplicialClique",
	"CellCycles",
}

// String returns the canonical kind name, or "Kind(i)" when out of range.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// New resolves options, validates the configuration (every violation
// reported, before any computation) and returns the requested lifting.
// Errors: ErrUnknownKind plus any aggregated configuration sentinel.
func New(kind Kind, opts ...Option) (Lifting, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("New(%s): %w", kind, err)
	}

	switch kind {
	case HypergraphKHop:
		return &khopLifting{cfg: cfg}, nil
	case HypergraphKNN:
		return &knnLifting{cfg: cfg}, nil
	case HypergraphExpander:
		return &expanderLifting{cfg: cfg}, nil
	case SimplicialNeighborhood:
		return &neighborhoodLifting{cfg: cfg}, nil
	case SimplicialClique:
		return &cliqueLifting{cfg: cfg}, nil
	case CellCycles:
		return &cellLifting{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("New: kind %d: %w", int(kind), ErrUnknownKind)
	}
}
