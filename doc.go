// Package toplift prepares graph-structured data for higher-order
// topological learning by "lifting" plain graphs into richer combinatorial
// structures — hypergraphs, simplicial complexes, cell complexes — and by
// generating synthetic expander-graph topologies used as structural priors.
//
// 🚀 What is toplift?
//
//	A deterministic, in-memory lifting toolkit that brings together:
//		• Core primitive: a normalized, index-based Graph adapter (nodes 0..n-1,
//		  edge list, optional feature matrix and labels)
//		• Expander generation: random d-regular graphs from independent cycles,
//		  spectrally verified against the Alon–Boppana / Ramanujan bound
//		• Hypergraph liftings: k-hop balls, k-nearest neighbors, expander edges
//		• Simplicial liftings: closed neighborhoods, maximal cliques — with
//		  downward closure enforced
//		• Cell lifting: fundamental cycle basis → 2-cells over retained 0/1-cells
//		• Feature lifting: per-rank sum aggregation of node features
//		• Transforms: small composable graph→graph manipulation steps
//		• Dataset plumbing: splits and a parallel lifting driver
//
// ✨ Why choose toplift?
//
//   - Deterministic by construction – every stochastic path takes an explicit
//     seed; same inputs, same topology, no global generators
//   - Fail-fast contracts – configuration is validated before any randomized
//     work; structural invariants (closure, boundary consistency) are checked,
//     never silently suppressed
//   - Pure lifting calls – no shared mutable state, trivially parallelizable
//     across a dataset
//
// Under the hood, everything is organized under six subpackages:
//
//	graph/      — normalized Graph adapter consumed by every lifting
//	expander/   — random regular expander generation + spectral verification
//	topology/   — COO incidence builder, simplices, cells, output Descriptor
//	lift/       — the lifting algorithms and their Kind-based factory
//	transforms/ — composable pre/post-lifting data manipulations
//	dataset/    — in-memory datasets, train/val/test splits, parallel lifting
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │        clique lifting: {0,1,2} becomes a 2-simplex,
//	    2───┘        its edges and vertices retained by downward closure.
//
// Dive into the package docs for contracts, complexity notes and examples.
//
//	go get github.com/katalvlaran/toplift
package toplift
