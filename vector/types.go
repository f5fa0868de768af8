// SPDX-License-Identifier: MIT

package vector

// Number is the set of element types a Vector can hold: every type whose
// underlying type is a built-in integer or floating-point type. All of them
// support +, -, * and have 0 as their zero value.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Vector is an immutable, fixed-length sequence of T.
//
// The zero value is an empty vector ready to use.
// Vector values may be copied freely; copies never alias mutable state
// because no method writes into data after construction.
type Vector[T Number] struct {
	data []T // owned backing storage, never exposed
}
