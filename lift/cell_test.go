// SPDX-License-Identifier: MIT

package lift_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toplift/graph"
	"github.com/katalvlaran/toplift/lift"
)

// cycleGraph builds the n-cycle 0-1-…-(n-1)-0.
func cycleGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	edges := make([]graph.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, graph.Edge{i, (i + 1) % n})
	}
	g, err := graph.New(n, edges)
	require.NoError(t, err)

	return g
}

func TestCell_Square(t *testing.T) {
	l, err := lift.New(lift.CellCycles)
	require.NoError(t, err)

	desc, err := l.Lift(cycleGraph(t, 4))
	require.NoError(t, err)
	require.Equal(t, 4, desc.Counts[0])
	require.Equal(t, 4, desc.Counts[1])
	require.Equal(t, 1, desc.Counts[2])
	require.Equal(t, []float64{4}, desc.Incidence[2].ColSums())
}

func TestCell_TreeHasNoCells(t *testing.T) {
	l, err := lift.New(lift.CellCycles)
	require.NoError(t, err)

	desc, err := l.Lift(pathGraph(t, 5))
	require.NoError(t, err)
	require.Equal(t, 4, desc.Counts[1]) // the path's edges survive as 1-cells
	require.Equal(t, 0, desc.Counts[2])
}

func TestCell_TwoTrianglesSharingAVertexBasis(t *testing.T) {
	// Bowtie: triangles 0-1-2 and 2-3-4 meeting at node 2. Two independent
	// cycles, two 2-cells.
	g, err := graph.New(5, []graph.Edge{
		{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4},
	})
	require.NoError(t, err)

	l, err := lift.New(lift.CellCycles)
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, 6, desc.Counts[1])
	require.Equal(t, 2, desc.Counts[2])
	require.Equal(t, []float64{3, 3}, desc.Incidence[2].ColSums())
}

func TestCell_MaxCellLengthFilters(t *testing.T) {
	// A 6-cycle's single fundamental cycle has length 6: admitted at the
	// default cap, discarded below it.
	g := cycleGraph(t, 6)

	l, err := lift.New(lift.CellCycles)
	require.NoError(t, err)
	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, 1, desc.Counts[2])

	l, err = lift.New(lift.CellCycles, lift.WithMaxCellLength(5))
	require.NoError(t, err)
	desc, err = l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, 0, desc.Counts[2])
}

func TestCell_DisconnectedComponents(t *testing.T) {
	// Two disjoint triangles: the spanning forest roots each component and
	// both fundamental cycles survive.
	g, err := graph.New(6, []graph.Edge{
		{0, 1}, {0, 2}, {1, 2}, {3, 4}, {3, 5}, {4, 5},
	})
	require.NoError(t, err)

	l, err := lift.New(lift.CellCycles)
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, 2, desc.Counts[2])
}

func TestCell_SumFeatures(t *testing.T) {
	x := featureMatrix(3, 1, []float64{1, 2, 4})
	g, err := graph.New(3, []graph.Edge{{0, 1}, {0, 2}, {1, 2}},
		graph.WithFeatures(x))
	require.NoError(t, err)

	l, err := lift.New(lift.CellCycles)
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, 1, desc.Counts[2])
	require.Equal(t, []float64{7}, desc.Features[2].RawRowView(0))
	// Edge features in canonical edge order: {0,1}, {0,2}, {1,2}.
	require.Equal(t, []float64{3}, desc.Features[1].RawRowView(0))
	require.Equal(t, []float64{5}, desc.Features[1].RawRowView(1))
	require.Equal(t, []float64{6}, desc.Features[1].RawRowView(2))
}

func TestCell_DeduplicatedByBoundary(t *testing.T) {
	// K4: three fundamental cycles, each a distinct boundary — no collapse,
	// but no duplicates either.
	g, err := graph.New(4, []graph.Edge{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	})
	require.NoError(t, err)

	l, err := lift.New(lift.CellCycles)
	require.NoError(t, err)

	desc, err := l.Lift(g)
	require.NoError(t, err)
	require.Equal(t, 6, desc.Counts[1])
	require.Equal(t, 3, desc.Counts[2])
}
