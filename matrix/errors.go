// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with an operation tag
// via matrixErrorf; tests check them with errors.Is. No exported method
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping.
//
// ERROR PRIORITY (enforced in tests):
// shape -> emptiness -> dimension mismatch -> index range.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows or cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row, column or flat index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols() != b.Rows(), or ragged rows where a rectangle is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyMatrix signals that an operation needs at least one row
	// (the left operand of Mul).
	ErrEmptyMatrix = errors.New("matrix: matrix has no rows")
)

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opRow      = "Row"
	opCol      = "Col"
	opAt       = "At"
	opAtFlat   = "AtFlat"
	opZeros    = "Zeros"
	opIdentity = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf attaches coordinates to ErrOutOfRange under the given tag.
func indexErrorf(tag string, row, col int) error {
	return matrixErrorf(tag, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
}

// lineErrorf attaches a single row or column index to ErrOutOfRange.
func lineErrorf(tag string, idx int) error {
	return matrixErrorf(tag, fmt.Errorf("%d: %w", idx, ErrOutOfRange))
}
