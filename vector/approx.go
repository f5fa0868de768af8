// SPDX-License-Identifier: MIT

package vector

import "gonum.org/v1/gonum/floats"

// EqualApprox reports whether a and b have the same length and every element
// pair is within tol, either absolutely or relative to the larger magnitude.
// It is the float64 counterpart of Equal for results that accumulate rounding.
func EqualApprox(a, b Vector[float64], tol float64) bool {
	if len(a.data) != len(b.data) {
		return false
	}

	return floats.EqualApprox(a.data, b.data, tol)
}
