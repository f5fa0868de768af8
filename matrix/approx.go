// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/vecmat/vector"

// AllClose reports whether a and b have the same row count and every row pair
// is vector.EqualApprox within tol.
// Complexity: O(r*c).
func AllClose(a, b Matrix[float64], tol float64) bool {
	if len(a.rows) != len(b.rows) {
		return false
	}
	for i := range a.rows {
		if !vector.EqualApprox(a.rows[i], b.rows[i], tol) {
			return false
		}
	}

	return true
}
