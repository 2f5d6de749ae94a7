// SPDX-License-Identifier: MIT
// Package transforms: sentinel error set.

package transforms

import "errors"

var (
	// ErrBadK indicates a neighbor count below one for KNNGraph.
	ErrBadK = errors.New("transforms: k must be >= 1")

	// ErrBadRadius indicates a non-positive or non-finite radius.
	ErrBadRadius = errors.New("transforms: radius must be positive and finite")

	// ErrBadDimension indicates a feature width below one.
	ErrBadDimension = errors.New("transforms: dimension must be >= 1")

	// ErrBadStd indicates a non-positive standard deviation.
	ErrBadStd = errors.New("transforms: std must be positive")

	// ErrBadMaxDegree indicates a one-hot degree cap below one.
	ErrBadMaxDegree = errors.New("transforms: max degree must be >= 1")

	// ErrMissingFeatures indicates a step that reads coordinates/features
	// from a graph that has none.
	ErrMissingFeatures = errors.New("transforms: graph has no node features")
)
