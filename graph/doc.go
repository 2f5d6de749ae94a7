// SPDX-License-Identifier: MIT

// Package graph defines the normalized, index-based Graph adapter consumed
// by every lifting in toplift.
//
// # Model
//
// A Graph holds n nodes implicitly indexed 0..n-1, an edge list of index
// pairs, an optional node feature matrix (n × f, row i = features of node i)
// and an optional label vector. The graph may be directed on input; most
// liftings operate on the undirected view obtained via Symmetrized().
//
// # Contracts
//
//   - Construction validates everything up front: edge endpoints in range,
//     self-loops rejected unless WithLoops, feature rows == n, labels == n.
//     Violations surface as package sentinels; no partially built Graph is
//     ever returned.
//   - A constructed Graph is immutable. Accessors either return copies
//     (Edges, Neighbors) or read-only references documented as such
//     (Features). This is what makes lifting calls pure and parallel-safe.
//   - Neighbor lists are deduplicated and sorted ascending, so iteration
//     order is deterministic for a fixed input.
//
// # Complexity
//
// Construction is O(n + E log E); Neighbors/Degree are O(deg(v)) / O(1).
package graph
