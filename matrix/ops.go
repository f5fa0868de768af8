// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Matrix values:
// row-wise addition and subtraction, and the standard matrix product.
//
// Pairing policy:
//   - Add/Sub pair rows by index and stop at the shorter row count; each row
//     pair is combined with vector Add/Sub, which in turn stops at the shorter
//     row. Mismatched shapes therefore truncate rather than fail.
//   - Mul is strict: see ValidateMulCompatible.
//
// Determinism:
//   - Fixed loop orders (row i, then column j). Operands are never mutated.

package matrix

import "github.com/katalvlaran/vecmat/vector"

// zipRows applies f to every index-paired row of a and b.
func zipRows[T vector.Number](a, b Matrix[T], f func(x, y vector.Vector[T]) vector.Vector[T]) Matrix[T] {
	n := len(a.rows)
	if len(b.rows) < n {
		n = len(b.rows)
	}
	if n == 0 {
		return Matrix[T]{}
	}
	out := make([]vector.Vector[T], n)
	for i := 0; i < n; i++ {
		out[i] = f(a.rows[i], b.rows[i])
	}

	return Matrix[T]{rows: out}
}

// Add computes the row-wise sum C = A + B.
//
// Behavior highlights:
//   - C has min(A.Rows(), B.Rows()) rows; row i is A.Row(i).Add(B.Row(i)).
//   - Never fails; for equal shapes this is the ordinary elementwise sum.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func (m Matrix[T]) Add(o Matrix[T]) Matrix[T] {
	return zipRows(m, o, vector.Vector[T].Add)
}

// Sub computes the row-wise difference C = A - B with the same pairing as Add.
func (m Matrix[T]) Sub(o Matrix[T]) Matrix[T] {
	return zipRows(m, o, vector.Vector[T].Sub)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(A, B).
//   - Stage 2: extract every column of B once.
//   - Stage 3: C[i][j] = A.Row(i) · B.Col(j), fixed i→j order.
//
// Inputs:
//   - A: receiver with shape (r × n), at least one row.
//   - B: operand with shape (n × c).
//
// Returns:
//   - Matrix: new C with shape (r × c).
//
// Errors:
//   - ErrEmptyMatrix (A has no rows), ErrDimensionMismatch (ragged rows or
//     A.Cols() != B.Rows()).
//
// Complexity:
//   - Time O(r*n*c), Space O(n*c + r*c).
func (m Matrix[T]) Mul(o Matrix[T]) (Matrix[T], error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return Matrix[T]{}, matrixErrorf(opMul, err)
	}

	cols := o.Cols()
	colVecs := make([]vector.Vector[T], cols)
	var err error
	for j := 0; j < cols; j++ {
		if colVecs[j], err = o.Col(j); err != nil {
			return Matrix[T]{}, matrixErrorf(opMul, err)
		}
	}

	out := make([]vector.Vector[T], len(m.rows))
	cell := make([]T, cols) // scratch row, copied by vector.New
	for i, r := range m.rows {
		for j, c := range colVecs {
			cell[j] = r.Dot(c)
		}
		out[i] = vector.New(cell...)
	}

	return Matrix[T]{rows: out}, nil
}
