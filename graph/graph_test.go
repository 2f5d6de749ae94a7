// SPDX-License-Identifier: MIT

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/toplift/graph"
)

// TestNew_Validation covers fail-fast construction sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := graph.New(-1, nil)
	require.ErrorIs(t, err, graph.ErrBadNodeCount)

	_, err = graph.New(2, []graph.Edge{{0, 2}})
	require.ErrorIs(t, err, graph.ErrNodeOutOfRange)

	_, err = graph.New(2, []graph.Edge{{-1, 0}})
	require.ErrorIs(t, err, graph.ErrNodeOutOfRange)

	_, err = graph.New(2, []graph.Edge{{1, 1}})
	require.ErrorIs(t, err, graph.ErrLoopNotAllowed)

	// Features with the wrong row count are rejected before anything is built.
	x := mat.NewDense(3, 2, nil)
	_, err = graph.New(2, nil, graph.WithFeatures(x))
	require.ErrorIs(t, err, graph.ErrFeatureShape)

	_, err = graph.New(2, nil, graph.WithLabels([]int{1}))
	require.ErrorIs(t, err, graph.ErrLabelLength)
}

func TestNew_EmptyGraph(t *testing.T) {
	g, err := graph.New(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.NumNodes())
	require.Equal(t, 0, g.NumEdges())
}

// TestNeighbors_SortedDeduplicated asserts the deterministic adjacency
// contract: sorted ascending, parallel edges collapsed.
func TestNeighbors_SortedDeduplicated(t *testing.T) {
	g, err := graph.New(4, []graph.Edge{{2, 0}, {0, 1}, {1, 0}, {0, 3}})
	require.NoError(t, err)

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, nb)

	d, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 3, d)

	_, err = g.Neighbors(4)
	require.ErrorIs(t, err, graph.ErrNodeOutOfRange)
	_, err = g.Degree(-1)
	require.ErrorIs(t, err, graph.ErrNodeOutOfRange)
}

func TestDirected_Neighbors(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{0, 1}, {2, 0}}, graph.WithDirected())
	require.NoError(t, err)

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1}, nb) // out-neighbors only

	nb, err = g.Neighbors(1)
	require.NoError(t, err)
	require.Empty(t, nb)
}

// TestSymmetrized merges directed arcs into canonical unordered pairs.
func TestSymmetrized(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{1, 0}, {0, 1}, {2, 1}}, graph.WithDirected())
	require.NoError(t, err)

	u := g.Symmetrized()
	require.False(t, u.Directed())
	require.Equal(t, []graph.Edge{{0, 1}, {1, 2}}, u.Edges())

	nb, err := u.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, nb)
}

func TestClone_Independence(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	g, err := graph.New(2, []graph.Edge{{0, 1}},
		graph.WithFeatures(x), graph.WithLabels([]int{7, 9}))
	require.NoError(t, err)

	c := g.Clone()
	require.Equal(t, g.NumNodes(), c.NumNodes())
	require.Equal(t, g.Edges(), c.Edges())
	require.Equal(t, g.Labels(), c.Labels())

	// Mutating the clone's feature matrix must not touch the original.
	c.Features().Set(0, 0, 42)
	require.Equal(t, 1.0, g.Features().At(0, 0))
}

func TestFeatureDim(t *testing.T) {
	g, err := graph.New(2, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.FeatureDim())
	require.Nil(t, g.Features())

	x := mat.NewDense(2, 5, nil)
	g, err = graph.New(2, nil, graph.WithFeatures(x))
	require.NoError(t, err)
	require.Equal(t, 5, g.FeatureDim())
}
