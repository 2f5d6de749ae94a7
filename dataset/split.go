// SPDX-License-Identifier: MIT
// Package dataset — reproducible train/validation/test splits.
//
// Deliverables:
//   - Split: three disjoint, exhaustive index sets over [0, n).
//   - RandomSplit: seeded permutation partition by fractions.
//
// Determinism: the same (n, trainFrac, valFrac, seed) always yields the
// same Split. Indices inside each set are sorted ascending so split
// contents are stable regardless of how the permutation laid them out.

package dataset

import (
	"fmt"
	"math/rand"
	"sort"
)

// Split holds disjoint index sets covering every index in [0, n)
// exactly once. Test receives whatever Train and Val did not.
type Split struct {
	Train []int
	Val   []int
	Test  []int
}

// RandomSplit partitions the indices 0..n-1 into train/val/test sets.
//
// Stage 1 (Validate): trainFrac and valFrac must each lie in [0,1] and
// sum to at most 1; n must be non-negative.
// Stage 2 (Permute): a rand.New(rand.NewSource(seed)) permutation of
// 0..n-1 is cut at ⌊n·trainFrac⌋ and ⌊n·(trainFrac+valFrac)⌋.
// Stage 3 (Order): each set is sorted ascending.
//
// Errors: ErrBadFraction.
func RandomSplit(n int, trainFrac, valFrac float64, seed int64) (Split, error) {
	if n < 0 {
		return Split{}, fmt.Errorf("RandomSplit: n=%d: %w", n, ErrBadFraction)
	}
	if trainFrac < 0 || trainFrac > 1 || valFrac < 0 || valFrac > 1 || trainFrac+valFrac > 1 {
		return Split{}, fmt.Errorf("RandomSplit: trainFrac=%v valFrac=%v: %w",
			trainFrac, valFrac, ErrBadFraction)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	trainEnd := int(float64(n) * trainFrac)
	valEnd := trainEnd + int(float64(n)*valFrac)

	s := Split{
		Train: append([]int{}, perm[:trainEnd]...),
		Val:   append([]int{}, perm[trainEnd:valEnd]...),
		Test:  append([]int{}, perm[valEnd:]...),
	}
	sort.Ints(s.Train)
	sort.Ints(s.Val)
	sort.Ints(s.Test)

	return s, nil
}
