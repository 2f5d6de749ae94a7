// SPDX-License-Identifier: MIT
// Package dataset — sentinel error definitions.
//
// Every failure surfaced by this package wraps one of the sentinels
// below, so callers can branch with errors.Is across any depth of
// fmt.Errorf("…: %w", …) wrapping.

package dataset

import "errors"

var (
	// ErrIndexOutOfRange indicates a dataset index outside [0, Len).
	ErrIndexOutOfRange = errors.New("dataset: index out of range")

	// ErrNilDataset indicates a nil *Dataset argument.
	ErrNilDataset = errors.New("dataset: dataset is nil")

	// ErrNilLifting indicates LiftAll was called without a lifting.
	ErrNilLifting = errors.New("dataset: lifting is nil")

	// ErrBadFraction indicates split fractions outside [0,1] or a pair
	// of fractions summing beyond 1.
	ErrBadFraction = errors.New("dataset: invalid split fractions")

	// ErrBadWorkers indicates a worker limit below one.
	ErrBadWorkers = errors.New("dataset: workers must be >= 1")

	// ErrLabelLength indicates a label count that differs from the graph
	// count in NewLabeled.
	ErrLabelLength = errors.New("dataset: label count must equal graph count")

	// ErrUnlabeled indicates a Label request on an unlabeled dataset.
	ErrUnlabeled = errors.New("dataset: dataset has no graph labels")
)
