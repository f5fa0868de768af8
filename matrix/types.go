// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/vecmat/vector"

// Matrix is an immutable row-major matrix whose rows are vector.Vector values.
//
// The zero value is an empty matrix (Shape() == (0, 0)).
// Rows are expected to share one length; constructors do not enforce this,
// but Mul rejects ragged operands and Col/At report short rows as ErrOutOfRange.
//
// Complexity notes: Shape/Rows/Cols/Row/At are O(1); Col is O(rows).
type Matrix[T vector.Number] struct {
	rows []vector.Vector[T] // owned; vectors are immutable so row values may be shared
}
