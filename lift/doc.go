// SPDX-License-Identifier: MIT

// Package lift implements the topology lifting algorithms: deterministic or
// seeded-random functions mapping a graph to a higher-order incidence
// structure, plus the sum feature lifting that propagates node features onto
// the new elements.
//
// # Liftings
//
//	HypergraphKHop         — hyperedge per node: its k-hop ball (inclusive)
//	HypergraphKNN          — hyperedge per node: itself + k nearest neighbors
//	HypergraphExpander     — expander-graph edges as size-2 hyperedges
//	SimplicialNeighborhood — simplices from closed neighborhoods, closed down
//	SimplicialClique       — maximal cliques as simplices, closed down
//	CellCycles             — fundamental cycle basis as 2-cells over 0/1-cells
//
// The closed set of kinds is dispatched through New(Kind, ...Option) — an
// explicit factory with O(1) lookup, no dynamic registry.
//
// # Contracts
//
//   - Configuration is validated fully before any computation
//     (ValidationError class, aggregated so every violation is reported).
//   - A lifting call is a pure function of the input graph and its config:
//     no global state, explicit seeds, no partial results — it returns a
//     complete topology.Descriptor or an error.
//   - Directed inputs are symmetrized before lifting.
//   - Structural invariants (downward closure, boundary consistency,
//     hyperedge arity ≥ 2) are verified on every produced descriptor and
//     surface as topology sentinels when violated.
//
// # Output
//
// Every lifting returns a topology.Descriptor: per-rank node-based
// incidence matrices, per-rank element counts, lifted feature matrices
// (sum aggregation), and pass-through of input features and labels.
package lift
