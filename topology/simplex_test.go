// SPDX-License-Identifier: MIT

package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toplift/topology"
)

func TestNewSimplex_Canonical(t *testing.T) {
	s, err := topology.NewSimplex(3, 1, 2, 1)
	require.NoError(t, err)
	require.Equal(t, topology.Simplex{1, 2, 3}, s)
	require.Equal(t, 2, s.Dim())
	require.Equal(t, "1,2,3", s.Key())

	_, err = topology.NewSimplex()
	require.ErrorIs(t, err, topology.ErrEmptySimplex)
	_, err = topology.NewSimplex(0, -1)
	require.ErrorIs(t, err, topology.ErrNegativeVertex)
}

func TestSimplexSet_AddDedupRank(t *testing.T) {
	ss, err := topology.NewSimplexSet(2)
	require.NoError(t, err)

	a, _ := topology.NewSimplex(0, 1)
	b, _ := topology.NewSimplex(1, 0) // same identity
	require.NoError(t, ss.Add(a))
	require.NoError(t, ss.Add(b))
	require.Equal(t, 1, ss.Count(1))

	big, _ := topology.NewSimplex(0, 1, 2, 3)
	require.ErrorIs(t, ss.Add(big), topology.ErrRankExceeded)

	_, err = topology.NewSimplexSet(-1)
	require.ErrorIs(t, err, topology.ErrRankExceeded)
}

// TestSimplexSet_Close inserts a triangle and expects all edges and vertices
// to appear as faces.
func TestSimplexSet_Close(t *testing.T) {
	ss, err := topology.NewSimplexSet(2)
	require.NoError(t, err)
	tri, _ := topology.NewSimplex(0, 1, 2)
	require.NoError(t, ss.Add(tri))

	// Before closure: the invariant does not hold yet.
	require.ErrorIs(t, ss.ValidateClosed(), topology.ErrClosureViolated)

	ss.Close()
	require.Equal(t, 3, ss.Count(0))
	require.Equal(t, 3, ss.Count(1))
	require.Equal(t, 1, ss.Count(2))
	require.NoError(t, ss.ValidateClosed())

	edges := ss.Rank(1)
	require.Equal(t, "0,1", edges[0].Key())
	require.Equal(t, "0,2", edges[1].Key())
	require.Equal(t, "1,2", edges[2].Key())
}

func TestSimplexSet_RankOrderingDeterministic(t *testing.T) {
	ss, err := topology.NewSimplexSet(1)
	require.NoError(t, err)
	for _, pair := range [][2]int{{2, 3}, {0, 5}, {0, 1}, {1, 4}} {
		s, serr := topology.NewSimplex(pair[0], pair[1])
		require.NoError(t, serr)
		require.NoError(t, ss.Add(s))
	}
	got := ss.Rank(1)
	require.Equal(t, "0,1", got[0].Key())
	require.Equal(t, "0,5", got[1].Key())
	require.Equal(t, "1,4", got[2].Key())
	require.Equal(t, "2,3", got[3].Key())

	require.Nil(t, ss.Rank(2))
	require.Equal(t, 0, ss.Count(7))
}
