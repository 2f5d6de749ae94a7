// SPDX-License-Identifier: MIT

// Package dataset provides the thin in-memory dataset surface the lifting
// core collaborates with: an ordered graph collection (optionally with one
// label per graph) indexable by split index sets, reproducible
// train/val/test splits, and a parallel driver that fans pure lifting
// calls out across a dataset.
//
// Lifting calls own no shared mutable state, so LiftAll parallelizes them
// with a plain errgroup: one goroutine per graph under a worker limit,
// first error cancels the rest, results stay index-aligned with the input.
package dataset
