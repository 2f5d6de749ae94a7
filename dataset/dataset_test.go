// SPDX-License-Identifier: MIT

package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toplift/dataset"
	"github.com/katalvlaran/toplift/graph"
)

// pathGraph builds 0-1-2-…-(n-1).
func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	edges := make([]graph.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, graph.Edge{i, i + 1})
	}
	g, err := graph.New(n, edges)
	require.NoError(t, err)

	return g
}

func TestDataset_LenAt(t *testing.T) {
	a, b := pathGraph(t, 3), pathGraph(t, 5)
	ds := dataset.New(a, b)

	require.Equal(t, 2, ds.Len())

	got, err := ds.At(0)
	require.NoError(t, err)
	require.Same(t, a, got)

	got, err = ds.At(1)
	require.NoError(t, err)
	require.Same(t, b, got)
}

func TestDataset_AtOutOfRange(t *testing.T) {
	ds := dataset.New(pathGraph(t, 2))

	_, err := ds.At(-1)
	require.ErrorIs(t, err, dataset.ErrIndexOutOfRange)

	_, err = ds.At(1)
	require.ErrorIs(t, err, dataset.ErrIndexOutOfRange)
}

func TestDataset_Subset(t *testing.T) {
	a, b, c := pathGraph(t, 2), pathGraph(t, 3), pathGraph(t, 4)
	ds := dataset.New(a, b, c)

	sub, err := ds.Subset([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())

	got, err := sub.At(0)
	require.NoError(t, err)
	require.Same(t, c, got)

	got, err = sub.At(1)
	require.NoError(t, err)
	require.Same(t, a, got)
}

func TestDataset_SubsetOutOfRange(t *testing.T) {
	ds := dataset.New(pathGraph(t, 2))

	_, err := ds.Subset([]int{0, 3})
	require.ErrorIs(t, err, dataset.ErrIndexOutOfRange)
}

func TestDataset_Labels(t *testing.T) {
	a, b := pathGraph(t, 2), pathGraph(t, 3)

	_, err := dataset.NewLabeled([]*graph.Graph{a, b}, []int{1})
	require.ErrorIs(t, err, dataset.ErrLabelLength)

	ds, err := dataset.NewLabeled([]*graph.Graph{a, b}, []int{0, 1})
	require.NoError(t, err)
	require.True(t, ds.Labeled())

	got, err := ds.Label(1)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	_, err = ds.Label(2)
	require.ErrorIs(t, err, dataset.ErrIndexOutOfRange)

	// Subsets carry their labels along, reordered with the graphs.
	sub, err := ds.Subset([]int{1, 0})
	require.NoError(t, err)
	got, err = sub.Label(0)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	// Unlabeled datasets refuse label lookups.
	plain := dataset.New(a)
	require.False(t, plain.Labeled())
	_, err = plain.Label(0)
	require.ErrorIs(t, err, dataset.ErrUnlabeled)
}

func TestDataset_Empty(t *testing.T) {
	ds := dataset.New()
	require.Equal(t, 0, ds.Len())

	sub, err := ds.Subset(nil)
	require.NoError(t, err)
	require.Equal(t, 0, sub.Len())
}
