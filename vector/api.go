// SPDX-License-Identifier: MIT
// Package vector — function-style facades over the Vector methods.
// Each facade delegates; no logic lives here.

package vector

// Sum returns a.Add(b).
func Sum[T Number](a, b Vector[T]) Vector[T] { return a.Add(b) }

// Diff returns a.Sub(b).
func Diff[T Number](a, b Vector[T]) Vector[T] { return a.Sub(b) }

// DotProduct returns a.Dot(b).
func DotProduct[T Number](a, b Vector[T]) T { return a.Dot(b) }

// CrossProduct returns a.Cross(b).
func CrossProduct[T Number](a, b Vector[T]) (Vector[T], error) { return a.Cross(b) }
