// SPDX-License-Identifier: MIT

// Package topology defines the incidence structures produced by liftings:
// a coordinate-list (COO) sparse incidence builder, simplices organized into
// ranked, downward-closed sets, cycle-backed 2-cells, and the Descriptor
// type every lifting returns.
//
// # Model
//
// An incidence structure is a bipartite relation between base elements
// (nodes, for every lifting in this module) and higher-order elements
// (hyperedges, k-simplices, 2-cells). It is materialized as a sparse matrix
// of shape (num_base_elements × num_higher_order_elements): rows are nodes,
// columns are higher-order elements.
//
// # Invariants
//
//   - Every higher-order element is non-empty; hyperedges carry ≥ 2 members.
//   - Simplicial collections satisfy downward closure: every non-empty
//     proper subset of a simplex's vertex set is itself present.
//   - Every 2-cell's boundary edges exist among the 1-cells of the complex.
//
// Violations of the two structural invariants above are internal-bug class
// errors (ErrClosureViolated, ErrBoundaryInconsistent): they are surfaced
// to the caller and never silently suppressed.
//
// # Determinism
//
// Element ordering is deterministic everywhere: COO triplets keep append
// order, ranked simplex collections iterate in lexicographic vertex order,
// and cell collections keep first-seen order under a canonical boundary key.
package topology
