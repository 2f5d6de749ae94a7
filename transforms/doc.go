// SPDX-License-Identifier: MIT

// Package transforms provides small, composable graph→graph manipulation
// steps applied before or after lifting: connectivity inference from
// coordinates (KNN/radius), degree features, one-hot degree encoding,
// largest-connected-component filtering, feature normalization, seeded
// synthetic features, simplicial curvature, and the identity pass-through.
//
// # Contracts
//
//   - Every step is a pure function: input graph in, fresh graph out
//     (Identity alone returns its input untouched). No shared mutable
//     state, so steps compose and parallelize freely.
//   - Randomized steps (EqualGaussianFeatures) take an explicit seed.
//   - Pipeline applies steps in fixed order and stops at the first error;
//     an optional zap logger reports per-step progress.
package transforms
