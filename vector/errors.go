// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with an
// operation tag via vectorErrorf); tests match them with errors.Is.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index outside [0, Len()-1].
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands whose lengths must match but don't,
	// e.g. Cross on vectors of different length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// Operation tags for uniform error wrapping.
const (
	opAt    = "At"
	opCross = "Cross"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf attaches the offending index and length to ErrOutOfRange.
func indexErrorf(tag string, i, n int) error {
	return vectorErrorf(tag, fmt.Errorf("index %d, len %d: %w", i, n, ErrOutOfRange))
}
