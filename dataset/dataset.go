// SPDX-License-Identifier: MIT
// Package dataset — ordered graph collection.

package dataset

import (
	"fmt"

	"github.com/katalvlaran/toplift/graph"
)

// Dataset is an immutable, ordered collection of graphs, optionally
// carrying one classification label per graph.
type Dataset struct {
	graphs []*graph.Graph
	labels []int // nil when the dataset is unlabeled
}

// New wraps the given graphs (the slice is copied, the graphs shared —
// they are immutable by contract). The dataset is unlabeled.
func New(graphs ...*graph.Graph) *Dataset {
	return &Dataset{graphs: append([]*graph.Graph(nil), graphs...)}
}

// NewLabeled wraps graphs with one label per graph (graph-level targets,
// e.g. for graph classification). Both slices are copied.
// Errors: ErrLabelLength when the lengths disagree.
func NewLabeled(graphs []*graph.Graph, labels []int) (*Dataset, error) {
	if len(labels) != len(graphs) {
		return nil, fmt.Errorf("NewLabeled: %d labels for %d graphs: %w",
			len(labels), len(graphs), ErrLabelLength)
	}
	return &Dataset{
		graphs: append([]*graph.Graph(nil), graphs...),
		labels: append([]int(nil), labels...),
	}, nil
}

// Len returns the number of graphs.
func (d *Dataset) Len() int { return len(d.graphs) }

// At returns the i-th graph.
// Errors: ErrIndexOutOfRange.
func (d *Dataset) At(i int) (*graph.Graph, error) {
	if i < 0 || i >= len(d.graphs) {
		return nil, fmt.Errorf("At(%d): len=%d: %w", i, len(d.graphs), ErrIndexOutOfRange)
	}
	return d.graphs[i], nil
}

// Labeled reports whether the dataset carries graph-level labels.
func (d *Dataset) Labeled() bool { return d.labels != nil }

// Label returns the i-th graph's label.
// Errors: ErrUnlabeled on unlabeled datasets, ErrIndexOutOfRange.
func (d *Dataset) Label(i int) (int, error) {
	if d.labels == nil {
		return 0, fmt.Errorf("Label(%d): %w", i, ErrUnlabeled)
	}
	if i < 0 || i >= len(d.labels) {
		return 0, fmt.Errorf("Label(%d): len=%d: %w", i, len(d.labels), ErrIndexOutOfRange)
	}
	return d.labels[i], nil
}

// Subset returns a new dataset holding the graphs (and labels, when
// present) at the given indices, in the given order. This is exactly how
// split index sets are consumed.
// Errors: ErrIndexOutOfRange.
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	out := make([]*graph.Graph, 0, len(indices))
	for _, i := range indices {
		g, err := d.At(i)
		if err != nil {
			return nil, fmt.Errorf("Subset: %w", err)
		}
		out = append(out, g)
	}

	sub := &Dataset{graphs: out}
	if d.labels != nil {
		sub.labels = make([]int, len(indices))
		for j, i := range indices {
			sub.labels[j] = d.labels[i]
		}
	}

	return sub, nil
}
