// SPDX-License-Identifier: MIT
// Package geograph: construction validators.
//
// Order of checks (enforced in tests):
// empty -> square -> coordinate count -> coordinate values
// -> diagonal/sign (row by row) -> symmetry -> names.
// The first violation found in a fixed row-major scan is reported, so the
// same bad input always yields the same error.

package geograph

// validateSquare ensures a non-empty n×n matrix.
func validateSquare(w [][]int64) error {
	n := len(w)
	if n == 0 {
		return invalidGraphf(ErrEmptyGraph, "rows=0")
	}
	for i := 0; i < n; i++ {
		if len(w[i]) != n {
			return invalidGraphf(ErrNonSquare, "row %d has %d columns, want %d", i, len(w[i]), n)
		}
	}

	return nil
}

// validateWeights scans the matrix once: zero diagonal, non-negative cells,
// and symmetry over the strict upper triangle.
// Complexity: O(n^2).
func validateWeights(w [][]int64) error {
	n := len(w)
	var i, j int
	for i = 0; i < n; i++ {
		if w[i][i] != 0 {
			return invalidGraphf(ErrNonZeroDiagonal, "weight[%d][%d]=%d", i, i, w[i][i])
		}
		for j = 0; j < n; j++ {
			if w[i][j] < 0 {
				return invalidGraphf(ErrNegativeWeight, "weight[%d][%d]=%d", i, j, w[i][j])
			}
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w[i][j] != w[j][i] {
				return invalidGraphf(ErrAsymmetry, "weight[%d][%d]=%d, weight[%d][%d]=%d",
					i, j, w[i][j], j, i, w[j][i])
			}
		}
	}

	return nil
}

// validateCoords checks count and finiteness.
func validateCoords(coords []Coordinate, n int) error {
	if len(coords) != n {
		return invalidGraphf(ErrCoordinateCount, "got %d, want %d", len(coords), n)
	}
	for i, c := range coords {
		if !c.finite() {
			return invalidGraphf(ErrBadCoordinate, "node %d (%v, %v)", i, c.Lat, c.Lon)
		}
	}

	return nil
}

// validateNames checks an optional name list; nil means "unnamed".
func validateNames(names []string, n int) error {
	if names == nil {
		return nil
	}
	if len(names) != n {
		return invalidGraphf(ErrBadNames, "got %d names, want %d", len(names), n)
	}
	seen := make(map[string]struct{}, n)
	for i, name := range names {
		if name == "" {
			return invalidGraphf(ErrBadNames, "node %d has an empty name", i)
		}
		if _, dup := seen[name]; dup {
			return invalidGraphf(ErrBadNames, "duplicate name %q at node %d", name, i)
		}
		seen[name] = struct{}{}
	}

	return nil
}
