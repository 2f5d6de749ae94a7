// SPDX-License-Identifier: MIT

package expander_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toplift/expander"
	"github.com/katalvlaran/toplift/graph"
)

// cycleGraph builds the simple cycle C_n (2-regular).
func cycleGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	edges := make([]graph.Edge, 0, n)
	for i := 0; i < n; i++ {
		u, v := i, (i+1)%n
		if u > v {
			u, v = v, u
		}
		edges = append(edges, graph.Edge{u, v})
	}
	g, err := graph.New(n, edges)
	require.NoError(t, err)
	return g
}

// completeGraph builds K_n ((n-1)-regular).
func completeGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	var edges []graph.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, graph.Edge{u, v})
		}
	}
	g, err := graph.New(n, edges)
	require.NoError(t, err)
	return g
}

func TestSpectralBound(t *testing.T) {
	require.InDelta(t, 2*math.Sqrt(3), expander.SpectralBound(4, 0), 1e-12)
	require.InDelta(t, 2*math.Sqrt(3)+0.5, expander.SpectralBound(4, 0.5), 1e-12)
	require.InDelta(t, 2.0, expander.SpectralBound(2, 0), 1e-12)
}

func TestIsRegularExpander_Validation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := cycleGraph(t, 5)

	_, err := expander.IsRegularExpander(nil, 0, rng)
	require.ErrorIs(t, err, graph.ErrGraphNil)

	_, err = expander.IsRegularExpander(g, -1, rng)
	require.ErrorIs(t, err, expander.ErrNegativeEpsilon)

	_, err = expander.IsRegularExpander(g, 0, nil)
	require.ErrorIs(t, err, expander.ErrNeedRandSource)
}

func TestIsRegularExpander_RejectsIrregular(t *testing.T) {
	// A path is not regular: endpoints have degree 1, interior degree 2.
	g, err := graph.New(3, []graph.Edge{{0, 1}, {1, 2}})
	require.NoError(t, err)

	ok, err := expander.IsRegularExpander(g, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIsRegularExpander_KnownSpectra uses graphs with closed-form spectra.
func TestIsRegularExpander_KnownSpectra(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	// K_n: eigenvalues {n-1, -1,...,-1} ⇒ |λ₂| = 1 < 2·√(n-2). Expander.
	ok, err := expander.IsRegularExpander(completeGraph(t, 6), 0, rng)
	require.NoError(t, err)
	require.True(t, ok)

	// Odd cycle C_9: spectrum 2·cos(2πk/9), so |λ₂| = 2·cos(π/9) ≈ 1.88,
	// strictly under the d=2 bound of 2.
	ok, err = expander.IsRegularExpander(cycleGraph(t, 9), 0, rng)
	require.NoError(t, err)
	require.True(t, ok)

	// Two disjoint K_4: disconnected 3-regular graph, λ₂ = d = 3 (the
	// component-indicator eigenvector), clearly above 2·√2 ≈ 2.83.
	var edges []graph.Edge
	for _, base := range []int{0, 4} {
		for u := base; u < base+4; u++ {
			for v := u + 1; v < base+4; v++ {
				edges = append(edges, graph.Edge{u, v})
			}
		}
	}
	g, err := graph.New(8, edges)
	require.NoError(t, err)
	ok, err = expander.IsRegularExpander(g, 0, rng)
	require.NoError(t, err)
	require.False(t, ok)

	// The same disconnected graph passes once ε absorbs the gap.
	ok, err = expander.IsRegularExpander(g, 0.5, rng)
	require.NoError(t, err)
	require.True(t, ok)

	// K_{3,3} is bipartite: spectrum {3, 0, 0, 0, 0, −3}, so the negative
	// extreme |λmin| = 3 breaks the bound even though λmax (0) is fine.
	g, err = graph.New(6, []graph.Edge{
		{0, 3}, {0, 4}, {0, 5},
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	})
	require.NoError(t, err)
	ok, err = expander.IsRegularExpander(g, 0, rng)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsRegularExpander_TinyGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// Single node, no edges: accepted on regularity alone.
	g, err := graph.New(1, nil)
	require.NoError(t, err)
	ok, err := expander.IsRegularExpander(g, 0, rng)
	require.NoError(t, err)
	require.True(t, ok)

	// Two isolated nodes: 0-regular, accepted.
	g, err = graph.New(2, nil)
	require.NoError(t, err)
	ok, err = expander.IsRegularExpander(g, 0, rng)
	require.NoError(t, err)
	require.True(t, ok)

	// Empty graph: nothing to verify, not an expander.
	g, err = graph.New(0, nil)
	require.NoError(t, err)
	ok, err = expander.IsRegularExpander(g, 0, rng)
	require.NoError(t, err)
	require.False(t, ok)
}
