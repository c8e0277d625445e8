// SPDX-License-Identifier: MIT
// Package geograph: sentinel error set.
//
// Every construction failure wraps ErrInvalidGraph together with a specific
// cause, so callers may match either the category or the exact violation via
// errors.Is. Accessors report ErrInvalidNode for ids outside [0, N).

package geograph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGraph is the category error for any malformed construction input.
	ErrInvalidGraph = errors.New("geograph: invalid graph")

	// ErrInvalidNode indicates a node id outside [0, N) or an unknown name.
	ErrInvalidNode = errors.New("geograph: invalid node")

	// ErrEmptyGraph indicates a weight matrix with zero rows.
	ErrEmptyGraph = errors.New("geograph: weight matrix is empty")

	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = errors.New("geograph: weight matrix is not square")

	// ErrAsymmetry indicates weight[u][v] != weight[v][u] for some pair.
	ErrAsymmetry = errors.New("geograph: weight matrix is not symmetric")

	// ErrNonZeroDiagonal indicates a self-loop weight.
	ErrNonZeroDiagonal = errors.New("geograph: weight matrix diagonal not zero")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("geograph: negative edge weight")

	// ErrCoordinateCount indicates len(coords) != N.
	ErrCoordinateCount = errors.New("geograph: coordinate count does not match node count")

	// ErrBadCoordinate indicates a NaN or ±Inf latitude/longitude.
	ErrBadCoordinate = errors.New("geograph: coordinate is NaN or Inf")

	// ErrBadNames indicates a name list of the wrong length, or with empty or duplicate entries.
	ErrBadNames = errors.New("geograph: invalid node names")
)

// invalidGraphf tags a specific cause with ErrInvalidGraph and positional context.
func invalidGraphf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidGraph, cause, fmt.Sprintf(format, args...))
}

// invalidNode wraps ErrInvalidNode with the offending id.
func invalidNode(op string, u NodeID) error {
	return fmt.Errorf("geograph: %s: node %d: %w", op, u, ErrInvalidNode)
}
