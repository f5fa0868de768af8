// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape checks used by the kernels.
//  - Return sentinel errors tagged with the validator name so call sites can
//    add their own operation tag on top.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing beyond the error value.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/vecmat/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotEmpty ensures m has at least one row.
// Complexity: O(1).
func ValidateNotEmpty[T vector.Number](m Matrix[T]) error {
	if len(m.rows) == 0 {
		return validatorErrorf("ValidateNotEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateRectangular ensures every row of m has length Cols().
// Complexity: O(rows).
func ValidateRectangular[T vector.Number](m Matrix[T]) error {
	c := m.Cols()
	for i, r := range m.rows {
		if r.Len() != c {
			return validatorErrorf("ValidateRectangular", fmt.Errorf("row %d len %d, want %d: %w", i, r.Len(), c, ErrDimensionMismatch))
		}
	}

	return nil
}

// ValidateMulCompatible – Composite: NotEmpty(a) → Rectangular(a, b) → a.Cols == b.Rows.
//
// Errors: ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(a.Rows + b.Rows).
func ValidateMulCompatible[T vector.Number](a, b Matrix[T]) error {
	if err := ValidateNotEmpty(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateRectangular(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateRectangular(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
