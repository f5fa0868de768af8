// Package vector provides a generic, immutable, fixed-length numeric vector.
//
// 🚀 What is Vector?
//
//	Vector[T] is an ordered sequence of numbers of any built-in integer or
//	floating-point type. It is a value type: constructors copy their input
//	and every operation returns a fresh Vector, so two vectors never share
//	storage and no method mutates its receiver.
//
// ✨ Operations:
//   - Add / Sub      — elementwise, paired up to the shorter operand
//   - Neg            — elementwise negation
//   - Dot            — sum of elementwise products over the paired prefix
//   - Cross          — cyclic cross product; the standard 3D product when Len()==3
//   - Equal          — structural equality (length + every element)
//   - At / All / Values — bounds-checked access and range-over-func iteration
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vecmat/vector"
//
//	u := vector.New(1, 2, 3)
//	v := vector.New(4, 5, 6)
//	fmt.Println(u.Add(v))  // [5, 7, 9]
//	fmt.Println(u.Dot(v))  // 32
//	w, err := u.Cross(v)   // [-3, 6, -3], nil
//
// Errors:
//
//	Accessors and Cross return sentinel errors (ErrOutOfRange,
//	ErrDimensionMismatch) wrapped with the operation name; match them with
//	errors.Is. Public methods never panic on user input.
//
// Complexity: every operation is O(n) time and O(n) space for its result.
package vector
