// SPDX-License-Identifier: MIT
// Package topology — simplices and ranked, downward-closed collections.
//
// Deliverables:
//   1) Canonical simplex identity: the sorted, deduplicated vertex tuple.
//   2) SimplexSet: per-dimension ranked storage, deduplication by identity,
//      Close() for downward closure, ValidateClosed() for the invariant.
//   3) Deterministic enumeration: Rank(d) yields lexicographic vertex order.
//
// Complexity:
//   - NewSimplex: O(k log k) for k vertices.
//   - SimplexSet.Add: O(k) hash of the canonical key.
//   - Close: O(Σ 2^(k+1)) over stored simplices — bounded in practice by the
//     lifting's max rank, which caps k.

package topology

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Simplex is a k-simplex stored as its canonical identity: the strictly
// ascending tuple of its k+1 vertex indices. Treat as read-only.
type Simplex []int

// NewSimplex builds the canonical simplex over the given vertices.
// Duplicates are collapsed (identity is the vertex set).
// Errors: ErrEmptySimplex, ErrNegativeVertex.
func NewSimplex(vertices ...int) (Simplex, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("NewSimplex: %w", ErrEmptySimplex)
	}
	vs := append([]int(nil), vertices...)
	sort.Ints(vs)
	if vs[0] < 0 {
		return nil, fmt.Errorf("NewSimplex: vertex %d: %w", vs[0], ErrNegativeVertex)
	}
	// Deduplicate in place (already sorted).
	w := 1
	for i := 1; i < len(vs); i++ {
		if vs[i] != vs[i-1] {
			vs[w] = vs[i]
			w++
		}
	}

	return Simplex(vs[:w]), nil
}

// Dim returns the simplex dimension k (= #vertices − 1).
func (s Simplex) Dim() int { return len(s) - 1 }

// Key returns the canonical string identity, e.g. "0,3,7".
func (s Simplex) Key() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// SimplexSet stores simplices deduplicated by identity and ranked by
// dimension, up to a fixed maximum rank.
type SimplexSet struct {
	maxRank int
	byDim   []map[string]Simplex // index d holds the d-simplices
}

// NewSimplexSet allocates an empty collection accepting dimensions 0..maxRank.
// Errors: ErrRankExceeded when maxRank < 0.
func NewSimplexSet(maxRank int) (*SimplexSet, error) {
	if maxRank < 0 {
		return nil, fmt.Errorf("NewSimplexSet(%d): %w", maxRank, ErrRankExceeded)
	}
	byDim := make([]map[string]Simplex, maxRank+1)
	for d := range byDim {
		byDim[d] = make(map[string]Simplex)
	}

	return &SimplexSet{maxRank: maxRank, byDim: byDim}, nil
}

// MaxRank returns the configured maximum accepted dimension.
func (ss *SimplexSet) MaxRank() int { return ss.maxRank }

// Add inserts s, deduplicating by identity.
// Errors: ErrRankExceeded when s.Dim() > MaxRank.
func (ss *SimplexSet) Add(s Simplex) error {
	if s.Dim() > ss.maxRank {
		return fmt.Errorf("Add: dim %d > max rank %d: %w", s.Dim(), ss.maxRank, ErrRankExceeded)
	}
	ss.byDim[s.Dim()][s.Key()] = s

	return nil
}

// Count returns the number of stored d-simplices (0 for out-of-range d).
func (ss *SimplexSet) Count(d int) int {
	if d < 0 || d > ss.maxRank {
		return 0
	}
	return len(ss.byDim[d])
}

// Rank returns the d-simplices in lexicographic vertex order.
// The deterministic ordering defines column indices in incidence matrices
// and row alignment in lifted feature matrices.
func (ss *SimplexSet) Rank(d int) []Simplex {
	if d < 0 || d > ss.maxRank {
		return nil
	}
	out := make([]Simplex, 0, len(ss.byDim[d]))
	for _, s := range ss.byDim[d] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return lexLess(out[i], out[j]) })

	return out
}

// Close inserts every non-empty proper subset of every stored simplex,
// establishing downward closure. Subsets are generated by bitmask; the cost
// is exponential in simplex size, which the lifting's max rank keeps small.
func (ss *SimplexSet) Close() {
	var d, mask, bit int
	for d = ss.maxRank; d >= 1; d-- {
		for _, s := range ss.byDim[d] {
			k := len(s)
			sub := make([]int, 0, k)
			for mask = 1; mask < (1 << k); mask++ {
				if mask == (1<<k)-1 {
					continue // the simplex itself
				}
				sub = sub[:0]
				for bit = 0; bit < k; bit++ {
					if mask&(1<<bit) != 0 {
						sub = append(sub, s[bit])
					}
				}
				// Vertices of a canonical simplex are already sorted/unique,
				// so the subset is canonical too.
				face := Simplex(append([]int(nil), sub...))
				ss.byDim[face.Dim()][face.Key()] = face
			}
		}
	}
}

// ValidateClosed verifies downward closure over the whole collection.
// Errors: ErrClosureViolated naming the first missing face.
func (ss *SimplexSet) ValidateClosed() error {
	var d, i int
	for d = 1; d <= ss.maxRank; d++ {
		for _, s := range ss.byDim[d] {
			// Checking the (d-1)-faces is sufficient: closure is transitive.
			face := make([]int, 0, len(s)-1)
			for i = 0; i < len(s); i++ {
				face = append(face[:0], s[:i]...)
				face = append(face, s[i+1:]...)
				if _, ok := ss.byDim[d-1][Simplex(face).Key()]; !ok {
					return fmt.Errorf("ValidateClosed: face {%s} of {%s}: %w",
						Simplex(face).Key(), s.Key(), ErrClosureViolated)
				}
			}
		}
	}

	return nil
}

// lexLess is the lexicographic order on canonical vertex tuples.
func lexLess(a, b Simplex) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
