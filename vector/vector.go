// SPDX-License-Identifier: MIT

// Package vector - construction, bounds-checked access and iteration.
//
// Index convention:
//   - Valid indices are [0, Len()-1]. At returns ErrOutOfRange outside it.
//   - All and Values visit every element, index 0 through Len()-1 inclusive.

package vector

import (
	"fmt"
	"iter"
	"strings"
)

// Formatting literals shared by Vector.String.
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// New returns a Vector holding a copy of elems in order.
// New() with no arguments yields an empty vector.
// Complexity: O(n).
func New[T Number](elems ...T) Vector[T] {
	if len(elems) == 0 {
		return Vector[T]{}
	}
	data := make([]T, len(elems))
	copy(data, elems) // callers passing s... must not alias our storage

	return Vector[T]{data: data}
}

// Zeros returns a vector of n zero elements. Negative n yields an empty vector.
func Zeros[T Number](n int) Vector[T] {
	if n <= 0 {
		return Vector[T]{}
	}

	return Vector[T]{data: make([]T, n)}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// At returns the element at index i.
// Returns ErrOutOfRange when i is outside [0, Len()-1].
// Complexity: O(1).
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, indexErrorf(opAt, i, len(v.data))
	}

	return v.data[i], nil
}

// Elements returns a copy of the underlying elements.
func (v Vector[T]) Elements() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// All returns an iterator over (index, element) pairs in storage order.
// The sequence is lazy and may be ranged over any number of times.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in storage order.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// String renders the vector as "[a, b, c]" for debugging.
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
