// SPDX-License-Identifier: MIT
// Package expander — candidate construction and the Generate entry-point.
//
// Contract:
//   • Generate(n, d, opts...) validates everything, then repeats
//     build-and-verify up to maxTries times.
//   • maybeRegular assembles one candidate from d/2 independent random
//     cycles; its inner search is capped by maxTries as well.
//   • Returned graphs are immutable *graph.Graph values with deterministic
//     (lexicographically sorted) edge lists.
//
// Determinism:
//   • Same (n, d, ε, maxTries, seed) ⇒ identical graph, identical failure.
//
// Complexity:
//   • One candidate: O(d·n) expected. One verification: O(E·iters).
//   • Total: O(maxTries · (d·n + E·iters)) worst case.

package expander

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/toplift/graph"
)

// minDegree is the smallest admissible node degree (one whole cycle).
const minDegree = 2

// Generate produces a random d-regular expander graph on n nodes.
//
// Implementation:
//   - Stage 1 (Validate): d even and ≥ 2, ε ≥ 0, maxTries ≥ 1, n ≥ 1 and
//     (for n > 1) n−1 ≥ d, RNG present. Zero randomized work before this.
//   - Stage 2 (Trivial): n == 1 returns the empty single-node graph
//     directly, bypassing cycle construction.
//   - Stage 3 (Build+Verify loop): up to maxTries candidates from
//     maybeRegular, each checked by IsRegularExpander; first pass wins.
//
// Errors: ErrInvalidDegree, ErrNegativeEpsilon, ErrInvalidMaxTries,
// ErrTooFewNodes, ErrNeedRandSource, ErrConstructExhausted.
func Generate(n, d int, opts ...Option) (*graph.Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Degree validation first: an odd degree must fail for ANY n.
	if d < minDegree || d%2 != 0 {
		return nil, fmt.Errorf("Generate: d=%d: %w", d, ErrInvalidDegree)
	}
	if cfg.epsilon < 0 {
		return nil, fmt.Errorf("Generate: epsilon=%v: %w", cfg.epsilon, ErrNegativeEpsilon)
	}
	if cfg.maxTries < 1 {
		return nil, fmt.Errorf("Generate: maxTries=%d: %w", cfg.maxTries, ErrInvalidMaxTries)
	}
	if n < 1 {
		return nil, fmt.Errorf("Generate: n=%d: %w", n, ErrTooFewNodes)
	}
	if n == 1 {
		// Trivial graph: no room for cycles, nothing to verify.
		return graph.New(1, nil)
	}
	if n-1 < d {
		return nil, fmt.Errorf("Generate: need n-1 >= d for %d independent cycles on %d nodes: %w",
			d/2, n, ErrTooFewNodes)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNeedRandSource)
	}

	// Build-and-verify loop: a candidate failing the spectral bound is
	// discarded and regenerated from fresh randomness, up to maxTries.
	for try := 0; try < cfg.maxTries; try++ {
		g, err := maybeRegular(n, d, cfg.maxTries, cfg.rng)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		ok, err := IsRegularExpander(g, cfg.epsilon, cfg.rng)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		if ok {
			return g, nil
		}
	}

	return nil, fmt.Errorf("Generate: verification failed %d times: %w", cfg.maxTries, ErrConstructExhausted)
}

// maybeRegular assembles one d-regular candidate as the union of d/2
// independent random Hamiltonian cycles.
//
// Implementation:
//   - Each cycle is a random permutation of nodes 0..n-2 with node n-1
//     appended — there are only (n-1)! distinct cyclic orders against n!
//     permutations, so fixing the last node skips redundant draws.
//   - A drawn cycle is accepted only when all n of its edges are absent
//     from the union accumulated so far; otherwise it is redrawn, at most
//     maxTries times per cycle slot.
//
// Errors: ErrConstructExhausted when a cycle slot cannot be filled.
// Complexity: O(d·n) expected, O(d·n·maxTries) worst case.
func maybeRegular(n, d, maxTries int, rng *rand.Rand) (*graph.Graph, error) {
	union := make(map[[2]int]struct{}, n*d/2)
	cycle := make([]int, 0, n)
	fresh := make([][2]int, 0, n)

	for i := 0; i < d/2; i++ {
		accepted := false
		for iter := 0; iter < maxTries; iter++ {
			// Random cyclic order: permutation of 0..n-2, then n-1.
			cycle = append(cycle[:0], rng.Perm(n-1)...)
			cycle = append(cycle, n-1)

			// Collect the cycle's edges, normalized to (min,max) pairs.
			fresh = fresh[:0]
			disjoint := true
			for j := 0; j < n; j++ {
				e := orient(cycle[j], cycle[(j+1)%n])
				if _, dup := union[e]; dup {
					disjoint = false
					break
				}
				fresh = append(fresh, e)
			}
			// A cyclic permutation of ≥3 nodes never repeats an edge within
			// itself, so disjointness from the union is the whole test.
			if disjoint {
				for _, e := range fresh {
					union[e] = struct{}{}
				}
				accepted = true
				break
			}
		}
		if !accepted {
			return nil, fmt.Errorf("maybeRegular: cycle %d/%d: %w", i+1, d/2, ErrConstructExhausted)
		}
	}

	// Deterministic edge order for a given RNG stream: sort the union.
	edges := make([]graph.Edge, 0, len(union))
	for e := range union {
		edges = append(edges, graph.Edge{e[0], e[1]})
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a][0] != edges[b][0] {
			return edges[a][0] < edges[b][0]
		}
		return edges[a][1] < edges[b][1]
	})

	return graph.New(n, edges)
}

// orient normalizes an undirected pair to (min,max).
func orient(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
