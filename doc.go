// Package vecmat is a small, dependency-light linear-algebra toolkit built
// around two generic value types.
//
// 🚀 What is vecmat?
//
//	Generic, immutable building blocks for integer and floating-point math:
//		• vector.Vector[T] — add, sub, dot, cyclic cross product, equality
//		• matrix.Matrix[T] — rows of vectors; add, sub, product, row/column access
//
// ✨ Why vecmat?
//
//   - Value semantics – every operation returns a fresh result, nothing mutates
//   - Safe surface – accessors return ErrOutOfRange instead of panicking
//   - Generic – one implementation for int, float64 and their named variants
//
// Packages:
//
//	vector/             — Number constraint, Vector[T] and its operations
//	matrix/             — Matrix[T] built from vector rows
//	internal/workload/  — YAML job files evaluated against the two packages
//	cmd/vecmat/         — CLI: `vecmat selftest`, `vecmat run FILE`
//
// Quick example:
//
//	u := vector.New(1, 2, 3)
//	v := vector.New(4, 5, 6)
//	w, _ := u.Cross(v) // [-3, 6, -3]
//
//	go get github.com/katalvlaran/vecmat
package vecmat
