// SPDX-License-Identifier: MIT

package lift_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toplift/expander"
	"github.com/katalvlaran/toplift/graph"
	"github.com/katalvlaran/toplift/lift"
	"github.com/katalvlaran/toplift/topology"
)

func TestKHop_PathRadiusOne(t *testing.T) {
	// Path 0-1-2-3-4, k=1: the ball of an endpoint has 2 members, every
	// interior ball has 3.
	g := pathGraph(t, 5)
	l, err := lift.New(lift.HypergraphKHop, lift.WithK(1))
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, 5, desc.Counts[0])
	require.Equal(t, 5, desc.Counts[1])
	require.Equal(t, []float64{2, 3, 3, 3, 2}, desc.Incidence[1].ColSums())
}

func TestKHop_PathRadiusTwo(t *testing.T) {
	g := pathGraph(t, 5)
	l, err := lift.New(lift.HypergraphKHop, lift.WithK(2))
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4, 5, 4, 3}, desc.Incidence[1].ColSums())
}

func TestKHop_IsolatedNodeRejected(t *testing.T) {
	// A singleton ball violates the minimum hyperedge arity.
	g, err := graph.New(3, []graph.Edge{{0, 1}})
	require.NoError(t, err)

	l, err := lift.New(lift.HypergraphKHop)
	require.NoError(t, err)

	_, err = l.Lift(g)
	require.ErrorIs(t, err, topology.ErrHyperedgeTooSmall)
}

func TestKHop_DirectedSymmetrized(t *testing.T) {
	// 0→1→2 lifts exactly like the undirected path.
	g, err := graph.New(3, []graph.Edge{{0, 1}, {1, 2}}, graph.WithDirected())
	require.NoError(t, err)

	l, err := lift.New(lift.HypergraphKHop)
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 2}, desc.Incidence[1].ColSums())
}

func TestKHop_SumFeatures(t *testing.T) {
	// Two nodes, one edge: both hyperedges are {0,1}, so each lifted row is
	// the sum of both feature rows.
	x := featureMatrix(2, 2, []float64{
		1, 0,
		0, 1,
	})
	g, err := graph.New(2, []graph.Edge{{0, 1}}, graph.WithFeatures(x))
	require.NoError(t, err)

	l, err := lift.New(lift.HypergraphKHop)
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.NotNil(t, desc.Features[1])
	rows, cols := desc.Features[1].Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	for j := 0; j < 2; j++ {
		require.Equal(t, []float64{1, 1}, desc.Features[1].RawRowView(j))
	}
	// Rank 0 passes the input matrix through untouched.
	require.Same(t, x, desc.Features[0])
}

func TestKHop_PassThroughLabels(t *testing.T) {
	g := pathGraph(t, 3, graph.WithLabels([]int{7, 8, 9}))
	l, err := lift.New(lift.HypergraphKHop)
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, []int{7, 8, 9}, desc.Labels)
}

func TestKNN_NearestByFeatureDistance(t *testing.T) {
	// 1-D features 0,1,2,10 with k=1. Node 1 is equidistant from 0 and 2;
	// the tie breaks to the lower index.
	x := featureMatrix(4, 1, []float64{0, 1, 2, 10})
	g, err := graph.New(4, nil, graph.WithFeatures(x))
	require.NoError(t, err)

	l, err := lift.New(lift.HypergraphKNN, lift.WithK(1))
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, 4, desc.Counts[1])

	dense := desc.Incidence[1].ToDense()
	want := [][]float64{
		{1, 1, 0, 0}, // node 0 in hyperedges of 0 and 1
		{1, 1, 1, 0}, // node 1 nearest to 0, 1 itself, and 2's nearest
		{0, 0, 1, 1},
		{0, 0, 0, 1},
	}
	for i, row := range want {
		for j, v := range row {
			require.Equal(t, v, dense.At(i, j), "incidence (%d,%d)", i, j)
		}
	}
}

func TestKNN_MissingFeatures(t *testing.T) {
	l, err := lift.New(lift.HypergraphKNN)
	require.NoError(t, err)

	_, err = l.Lift(pathGraph(t, 3))
	require.ErrorIs(t, err, lift.ErrMissingFeatures)
}

func TestKNN_KTooLarge(t *testing.T) {
	x := featureMatrix(3, 1, []float64{0, 1, 2})
	g, err := graph.New(3, nil, graph.WithFeatures(x))
	require.NoError(t, err)

	l, err := lift.New(lift.HypergraphKNN, lift.WithK(3))
	require.NoError(t, err)

	_, err = l.Lift(g)
	require.ErrorIs(t, err, lift.ErrKTooLarge)
}

func TestKNN_CustomMetric(t *testing.T) {
	// Manhattan distance over 2-D features changes nothing here but must
	// flow through without touching the default.
	x := featureMatrix(3, 2, []float64{
		0, 0,
		1, 0,
		5, 5,
	})
	g, err := graph.New(3, nil, graph.WithFeatures(x))
	require.NoError(t, err)

	manhattan := func(a, b []float64) float64 {
		sum := 0.0
		for i := range a {
			d := a[i] - b[i]
			if d < 0 {
				d = -d
			}
			sum += d
		}
		return sum
	}
	l, err := lift.New(lift.HypergraphKNN, lift.WithK(1), lift.WithMetric(manhattan))
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2, 2}, desc.Incidence[1].ColSums())
}

func TestExpanderLifting_EdgeCount(t *testing.T) {
	g := pathGraph(t, 10)
	l, err := lift.New(lift.HypergraphExpander,
		lift.WithNodeDegree(4), lift.WithSeed(3))
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	// A 4-regular expander on 10 nodes has exactly 10·4/2 edges, each a
	// size-2 hyperedge.
	require.Equal(t, 20, desc.Counts[1])
	for j, sum := range desc.Incidence[1].ColSums() {
		require.Equal(t, 2.0, sum, "hyperedge %d arity", j)
	}
}

func TestExpanderLifting_Deterministic(t *testing.T) {
	g := pathGraph(t, 12)
	mk := func() *topology.Descriptor {
		l, err := lift.New(lift.HypergraphExpander,
			lift.WithNodeDegree(2), lift.WithSeed(11))
		require.NoError(t, err)
		desc, err := l.Lift(g)
		require.NoError(t, err)
		return desc
	}

	a, b := mk(), mk()
	ar, ac, av := a.Incidence[1].Triplets()
	br, bc, bv := b.Incidence[1].Triplets()
	require.Equal(t, ar, br)
	require.Equal(t, ac, bc)
	require.Equal(t, av, bv)
}

func TestExpanderLifting_TooFewNodes(t *testing.T) {
	g := pathGraph(t, 2)
	l, err := lift.New(lift.HypergraphExpander, lift.WithNodeDegree(2))
	require.NoError(t, err)

	_, err = l.Lift(g)
	require.ErrorIs(t, err, expander.ErrTooFewNodes)
}
