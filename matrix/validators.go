// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for grid/shape/numeric checks.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match them via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRows ensures grid is rectangular and holds only finite values.
//
// Inputs: a row-major grid; nil and empty grids are accepted (empty matrix).
// Errors: ErrDimensionMismatch for a ragged row, ErrNaNInf for NaN/±Inf.
// Complexity: O(r*c).
func ValidateRows(grid [][]float64) error {
	if len(grid) == 0 {
		return nil
	}
	cols := len(grid[0])
	var i, j int
	for i = range grid {
		if len(grid[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrDimensionMismatch)
		}
		for j = range grid[i] {
			if isNonFinite(grid[i][j]) {
				return validatorErrorf(fmt.Sprintf("ValidateRows: (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
