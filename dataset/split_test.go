// SPDX-License-Identifier: MIT

package dataset_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toplift/dataset"
)

func TestRandomSplit_Validation(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		train, va float64
	}{
		{name: "negative n", n: -1, train: 0.5, va: 0.2},
		{name: "train below zero", n: 10, train: -0.1, va: 0.2},
		{name: "train above one", n: 10, train: 1.1, va: 0},
		{name: "val below zero", n: 10, train: 0.5, va: -0.2},
		{name: "val above one", n: 10, train: 0, va: 1.5},
		{name: "sum above one", n: 10, train: 0.7, va: 0.4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.RandomSplit(tc.n, tc.train, tc.va, 1)
			require.ErrorIs(t, err, dataset.ErrBadFraction)
		})
	}
}

func TestRandomSplit_DisjointExhaustive(t *testing.T) {
	const n = 100
	s, err := dataset.RandomSplit(n, 0.6, 0.2, 42)
	require.NoError(t, err)

	require.Len(t, s.Train, 60)
	require.Len(t, s.Val, 20)
	require.Len(t, s.Test, 20)

	seen := make(map[int]int, n)
	for _, set := range [][]int{s.Train, s.Val, s.Test} {
		require.True(t, sort.IntsAreSorted(set))
		for _, i := range set {
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, n)
			seen[i]++
		}
	}
	require.Len(t, seen, n)
	for i, count := range seen {
		require.Equal(t, 1, count, "index %d assigned %d times", i, count)
	}
}

func TestRandomSplit_Deterministic(t *testing.T) {
	a, err := dataset.RandomSplit(50, 0.5, 0.25, 7)
	require.NoError(t, err)
	b, err := dataset.RandomSplit(50, 0.5, 0.25, 7)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := dataset.RandomSplit(50, 0.5, 0.25, 8)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestRandomSplit_Degenerate(t *testing.T) {
	// Everything to test.
	s, err := dataset.RandomSplit(5, 0, 0, 1)
	require.NoError(t, err)
	require.Empty(t, s.Train)
	require.Empty(t, s.Val)
	require.Equal(t, []int{0, 1, 2, 3, 4}, s.Test)

	// Everything to train.
	s, err = dataset.RandomSplit(5, 1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, s.Train)
	require.Empty(t, s.Val)
	require.Empty(t, s.Test)

	// Empty universe.
	s, err = dataset.RandomSplit(0, 0.8, 0.1, 1)
	require.NoError(t, err)
	require.Empty(t, s.Train)
	require.Empty(t, s.Val)
	require.Empty(t, s.Test)
}
