// SPDX-License-Identifier: MIT
// Package vector — arithmetic kernels.
//
// Pairing policy:
//   - Add, Sub and Dot pair elements by index and stop at the shorter operand
//     (zip semantics). This truncation is part of the contract, not an error.
//   - Cross is strict: operand lengths must match, otherwise ErrDimensionMismatch.
//
// Determinism:
//   - Fixed loop order 0..n-1; one allocation per result.

package vector

// pairLen is the number of index-paired elements between a and b.
func pairLen(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// zipWith applies f to each index-paired element of a and b.
func zipWith[T Number](a, b Vector[T], f func(x, y T) T) Vector[T] {
	n := pairLen(len(a.data), len(b.data))
	if n == 0 {
		return Vector[T]{}
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = f(a.data[i], b.data[i])
	}

	return Vector[T]{data: out}
}

// Add returns the elementwise sum v + w.
// The result has min(v.Len(), w.Len()) elements.
// Complexity: O(n).
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return zipWith(v, w, func(x, y T) T { return x + y })
}

// Sub returns the elementwise difference v - w, truncated like Add.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return zipWith(v, w, func(x, y T) T { return x - y })
}

// Neg returns the elementwise negation of v.
// For unsigned T this is the two's-complement wraparound of 0 - x.
func (v Vector[T]) Neg() Vector[T] {
	if len(v.data) == 0 {
		return Vector[T]{}
	}
	out := make([]T, len(v.data))
	var zero T
	for i, x := range v.data {
		out[i] = zero - x
	}

	return Vector[T]{data: out}
}

// Dot returns the sum of elementwise products over the index-paired prefix
// of v and w. An empty pairing yields the zero value of T.
// Complexity: O(n), no allocation.
func (v Vector[T]) Dot(w Vector[T]) T {
	var sum T
	n := pairLen(len(v.data), len(w.data))
	for i := 0; i < n; i++ {
		sum += v.data[i] * w.data[i]
	}

	return sum
}

// Cross returns the cyclic cross product of v and w.
//
// For every i in [0, n) the result holds
//
//	v[(i+1)%n]*w[(i+2)%n] - w[(i+1)%n]*v[(i+2)%n]
//
// which is the standard cross product when n == 3. Other lengths use the same
// cyclic formula; no special-casing. Empty operands yield an empty vector.
//
// Errors: ErrDimensionMismatch when v.Len() != w.Len().
// Complexity: O(n).
func (v Vector[T]) Cross(w Vector[T]) (Vector[T], error) {
	n := len(v.data)
	if n != len(w.data) {
		return Vector[T]{}, vectorErrorf(opCross, ErrDimensionMismatch)
	}
	if n == 0 {
		return Vector[T]{}, nil
	}

	out := make([]T, n)
	var first, second int
	for i := 0; i < n; i++ {
		first = (i + 1) % n
		second = (i + 2) % n
		out[i] = v.data[first]*w.data[second] - w.data[first]*v.data[second]
	}

	return Vector[T]{data: out}, nil
}

// Equal reports whether v and w have the same length and equal elements at
// every index. For floating-point T, NaN never equals anything.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}
