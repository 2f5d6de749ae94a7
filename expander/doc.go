// SPDX-License-Identifier: MIT

// Package expander constructs random d-regular expander graphs with
// spectral-quality guarantees.
//
// # Model
//
// A candidate graph on n nodes is assembled as the union of d/2 random
// independent Hamiltonian cycles: each cycle is a random cyclic permutation
// of the node set, accepted only when its edge set is disjoint from the
// edges contributed by previously accepted cycles. The union is d-regular
// by construction — every node sits on d/2 cycles, each contributing two
// incident edges.
//
// Joel Friedman proved that in this model the resulting graph is an
// expander with probability 1 − O(n^−τ), τ = ⌈√(d−1)/2⌉ − 1
// (A Proof of Alon's Second Eigenvalue Conjecture, 2004).
//
// # Verification
//
// A candidate is accepted once it passes IsRegularExpander: exact
// d-regularity plus the spectral bound |λ₂| < 2·√(d−1) + ε, where λ₂ is the
// second-largest-magnitude eigenvalue of the adjacency matrix. With ε = 0
// the accepted graph is Ramanujan quality. Only the two extremal
// eigenvalues are estimated (shifted power iteration against the known
// principal eigenvector 𝟙), never the full spectrum.
//
// # Contracts
//
//   - All parameter validation happens before any randomized work: d must
//     be even and ≥ 2, n ≥ 1, d ≤ n−1 (for n > 1), ε ≥ 0, maxTries ≥ 1.
//   - Randomness is explicit: Generate requires a seeded RNG via WithSeed
//     or WithRand; there is no global generator fallback.
//   - Both retry loops (cycle-independence search and regenerate-on-failed-
//     verification) are capped by maxTries and fail with
//     ErrConstructExhausted — never an unbounded loop.
//   - n = 1 yields the trivial empty graph directly, bypassing cycle
//     construction entirely.
//
// Complexity: one candidate costs O(d·n) to build and O(E·iters) to verify.
package expander
