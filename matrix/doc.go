// Package matrix offers a generic, immutable, row-major matrix built from
// vector.Vector rows.
//
// The matrix package provides:
//
//   - Matrix[T] over any vector.Number element type, constructed from rows of
//     vectors (FromRows) or nested slices (New), plus Zeros and Identity.
//   - Row-wise Add/Sub with zip semantics, and the standard product Mul
//     (C[i][j] = Row(i) · Col(j)) with strict shape validation.
//   - Bounds-checked accessors Row, Col, At and AtFlat that return
//     ErrOutOfRange instead of panicking.
//   - Range-over-func iteration over rows (All, Values).
//
// Matrices are values: constructors copy their inputs and every operation
// returns a fresh Matrix, so results can be shared across goroutines freely.
//
// See the examples in this package and vector for usage patterns.
package matrix
