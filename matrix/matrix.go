// SPDX-License-Identifier: MIT

// Package matrix - construction, safe accessors, iteration and formatting.
//
// Purpose:
//   - Build matrices from vector rows or nested slices, always copying the input.
//   - Guarantee safety at the public surface: Row/Col/At/AtFlat return errors
//     instead of panicking.
//   - Keep loop orders fixed (row i, then column j) for deterministic results.
//
// Index conventions:
//   - Row indices [0, Rows()-1], column indices [0, Cols()-1].
//   - AtFlat maps k to (k / Cols(), k % Cols()) over [0, Rows()*Cols()-1].

package matrix

import (
	"iter"
	"strings"

	"github.com/katalvlaran/vecmat/vector"
)

const _fmtRowEnd = "\n"

// FromRows returns a Matrix holding the given rows in order.
// The row slice is copied; the vectors themselves are immutable and shared.
// FromRows() with no arguments yields an empty matrix.
func FromRows[T vector.Number](rows ...vector.Vector[T]) Matrix[T] {
	if len(rows) == 0 {
		return Matrix[T]{}
	}
	out := make([]vector.Vector[T], len(rows))
	copy(out, rows)

	return Matrix[T]{rows: out}
}

// New wraps each inner slice of data into a vector row.
// Inner slices are copied, so later writes to data do not reach the matrix.
// Complexity: O(total elements).
func New[T vector.Number](data [][]T) Matrix[T] {
	if len(data) == 0 {
		return Matrix[T]{}
	}
	out := make([]vector.Vector[T], len(data))
	for i, r := range data {
		out[i] = vector.New(r...)
	}

	return Matrix[T]{rows: out}
}

// Zeros returns a rows×cols matrix of zeros.
// Returns ErrBadShape if rows or cols is negative.
func Zeros[T vector.Number](rows, cols int) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, matrixErrorf(opZeros, ErrBadShape)
	}
	out := make([]vector.Vector[T], rows)
	for i := range out {
		out[i] = vector.Zeros[T](cols)
	}

	return Matrix[T]{rows: out}, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape if n is negative; n == 0 yields an empty matrix.
// Complexity: O(n²).
func Identity[T vector.Number](n int) (Matrix[T], error) {
	if n < 0 {
		return Matrix[T]{}, matrixErrorf(opIdentity, ErrBadShape)
	}
	out := make([]vector.Vector[T], n)
	row := make([]T, n) // scratch row, copied by vector.New
	for i := 0; i < n; i++ {
		row[i] = 1
		out[i] = vector.New(row...)
		row[i] = 0
	}

	return Matrix[T]{rows: out}, nil
}

// Shape returns (row count, column count). The column count is the length
// of the first row, or 0 for a matrix without rows. Other rows are not checked.
func (m Matrix[T]) Shape() (rows, cols int) { return len(m.rows), m.Cols() }

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return len(m.rows) }

// Cols returns the length of the first row, or 0 if there are no rows.
func (m Matrix[T]) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}

	return m.rows[0].Len()
}

// SameShape reports whether m and o have equal Shape().
func (m Matrix[T]) SameShape(o Matrix[T]) bool {
	r1, c1 := m.Shape()
	r2, c2 := o.Shape()

	return r1 == r2 && c1 == c2
}

// Row returns row i.
// Returns ErrOutOfRange if i is outside [0, Rows()-1].
func (m Matrix[T]) Row(i int) (vector.Vector[T], error) {
	if i < 0 || i >= len(m.rows) {
		return vector.Vector[T]{}, lineErrorf(opRow, i)
	}

	return m.rows[i], nil
}

// Col builds a new vector from element j of every row, in row order.
//
// Errors:
//   - ErrOutOfRange if j < 0 or any row has Len() <= j.
//
// Complexity: O(rows).
func (m Matrix[T]) Col(j int) (vector.Vector[T], error) {
	if j < 0 {
		return vector.Vector[T]{}, lineErrorf(opCol, j)
	}
	data := make([]T, len(m.rows))
	var err error
	for i, r := range m.rows {
		if data[i], err = r.At(j); err != nil {
			return vector.Vector[T]{}, indexErrorf(opCol, i, j)
		}
	}

	return vector.New(data...), nil
}

// At returns the element at (i, j).
// Returns ErrOutOfRange if i or j is outside the bounds of row i.
func (m Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= len(m.rows) {
		var zero T
		return zero, indexErrorf(opAt, i, j)
	}
	v, err := m.rows[i].At(j)
	if err != nil {
		return v, indexErrorf(opAt, i, j)
	}

	return v, nil
}

// AtFlat returns the element at flat row-major index k, i.e. At(k/Cols(), k%Cols()).
// Valid k are [0, Rows()*Cols()-1]; a matrix with zero columns has none.
func (m Matrix[T]) AtFlat(k int) (T, error) {
	rows, cols := m.Shape()
	if cols == 0 || k < 0 || k >= rows*cols {
		var zero T
		return zero, matrixErrorf(opAtFlat, ErrOutOfRange)
	}
	v, err := m.At(k/cols, k%cols)
	if err != nil {
		return v, matrixErrorf(opAtFlat, err)
	}

	return v, nil
}

// All returns an iterator over (row index, row) pairs in row order.
func (m Matrix[T]) All() iter.Seq2[int, vector.Vector[T]] {
	return func(yield func(int, vector.Vector[T]) bool) {
		for i, r := range m.rows {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Values returns an iterator over the rows in order.
func (m Matrix[T]) Values() iter.Seq[vector.Vector[T]] {
	return func(yield func(vector.Vector[T]) bool) {
		for _, r := range m.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// Equal reports structural equality: same row count and every row Equal, in order.
func (m Matrix[T]) Equal(o Matrix[T]) bool {
	if len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer, one "[a, b, c]" line per row.
func (m Matrix[T]) String() string {
	var sb strings.Builder
	for _, r := range m.rows {
		sb.WriteString(r.String())
		sb.WriteString(_fmtRowEnd)
	}

	return sb.String()
}
