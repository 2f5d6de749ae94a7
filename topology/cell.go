// SPDX-License-Identifier: MIT
// Package topology — 2-cells backed by graph cycles.
//
// A Cell is a closed walk with no repeated internal vertices, treated as a
// 2-dimensional attachment bounded by its edges. Identity is the unordered
// set of boundary edges, so the same cycle read from any rotation or
// direction deduplicates to one cell.

package topology

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Cell is a 2-cell: the vertex sequence of a simple cycle. The closing edge
// (last → first) is implicit. Treat as read-only.
type Cell struct {
	nodes []int
}

// NewCell validates and wraps a cycle vertex sequence.
// Errors: ErrCellTooShort (< 3 vertices), ErrNegativeVertex,
// ErrRepeatedVertex (cycle must be simple).
func NewCell(cycle []int) (Cell, error) {
	if len(cycle) < 3 {
		return Cell{}, fmt.Errorf("NewCell: %d vertices: %w", len(cycle), ErrCellTooShort)
	}
	seen := make(map[int]struct{}, len(cycle))
	for _, v := range cycle {
		if v < 0 {
			return Cell{}, fmt.Errorf("NewCell: vertex %d: %w", v, ErrNegativeVertex)
		}
		if _, dup := seen[v]; dup {
			return Cell{}, fmt.Errorf("NewCell: vertex %d: %w", v, ErrRepeatedVertex)
		}
		seen[v] = struct{}{}
	}

	return Cell{nodes: append([]int(nil), cycle...)}, nil
}

// Len returns the number of boundary vertices (= number of boundary edges).
func (c Cell) Len() int { return len(c.nodes) }

// Nodes returns a copy of the cycle vertex sequence.
func (c Cell) Nodes() []int { return append([]int(nil), c.nodes...) }

// BoundaryEdges returns the cycle's edges as normalized (min,max) pairs in
// traversal order, closing edge included.
func (c Cell) BoundaryEdges() [][2]int {
	out := make([][2]int, 0, len(c.nodes))
	for i := range c.nodes {
		u, v := c.nodes[i], c.nodes[(i+1)%len(c.nodes)]
		if u > v {
			u, v = v, u
		}
		out = append(out, [2]int{u, v})
	}
	return out
}

// Key returns the canonical identity: boundary edge pairs sorted and joined,
// e.g. "0-1|1-2|0-2". Rotations and reversals of the same cycle share a key.
func (c Cell) Key() string {
	edges := c.BoundaryEdges()
	keys := make([]string, len(edges))
	for i, e := range edges {
		keys[i] = strconv.Itoa(e[0]) + "-" + strconv.Itoa(e[1])
	}
	sort.Strings(keys)

	return strings.Join(keys, "|")
}

// CellSet stores cells deduplicated by boundary identity in first-seen order.
type CellSet struct {
	cells []Cell
	seen  map[string]struct{}
}

// NewCellSet allocates an empty cell collection.
func NewCellSet() *CellSet {
	return &CellSet{seen: make(map[string]struct{})}
}

// Add inserts c unless a cell with the same boundary identity exists.
// Reports whether the cell was inserted.
func (cs *CellSet) Add(c Cell) bool {
	key := c.Key()
	if _, dup := cs.seen[key]; dup {
		return false
	}
	cs.seen[key] = struct{}{}
	cs.cells = append(cs.cells, c)

	return true
}

// Len returns the number of stored cells.
func (cs *CellSet) Len() int { return len(cs.cells) }

// Cells returns the stored cells in first-seen order (shared backing array;
// treat as read-only).
func (cs *CellSet) Cells() []Cell { return cs.cells }

// ValidateBoundaries checks that every boundary edge of every cell exists in
// oneCells, the complex's set of 1-cells as normalized (min,max) pairs.
// Errors: ErrBoundaryInconsistent naming the first missing edge.
func (cs *CellSet) ValidateBoundaries(oneCells map[[2]int]struct{}) error {
	for _, c := range cs.cells {
		for _, e := range c.BoundaryEdges() {
			if _, ok := oneCells[e]; !ok {
				return fmt.Errorf("ValidateBoundaries: edge (%d,%d) of cell %s: %w",
					e[0], e[1], c.Key(), ErrBoundaryInconsistent)
			}
		}
	}

	return nil
}
