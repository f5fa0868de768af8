// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide function-style entry points mirroring the methods, for callers
//     that prefer Sum(a, b) over a.Add(b).
//   - Avoid logic duplication: each facade delegates to the canonical method.

package matrix

import "github.com/katalvlaran/vecmat/vector"

// Sum returns a.Add(b).
func Sum[T vector.Number](a, b Matrix[T]) Matrix[T] { return a.Add(b) }

// Diff returns a.Sub(b).
func Diff[T vector.Number](a, b Matrix[T]) Matrix[T] { return a.Sub(b) }

// Product returns a.Mul(b).
func Product[T vector.Number](a, b Matrix[T]) (Matrix[T], error) { return a.Mul(b) }

// IdentityLike returns the identity matrix with m.Rows() rows.
func IdentityLike[T vector.Number](m Matrix[T]) (Matrix[T], error) { return Identity[T](m.Rows()) }
