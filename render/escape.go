package render

import (
	"math"
	"math/cmplx"
)

// Escape iterates z ← z² + c from z and returns the smooth escape count:
// n + 1 - log₂(log|z_n|) for the first n with |z_n| > 2. Points still
// bounded after maxIter steps return (maxIter, false).
func Escape(z, c complex128, maxIter int) (smooth float64, escaped bool) {
	n, zn := escapeCount(z, c, maxIter)
	if n == maxIter {
		return float64(maxIter), false
	}
	return float64(n) + 1 - math.Log(math.Log(cmplx.Abs(zn)))/math.Log(2), true
}

// escapeCount returns the first n with |z_n| > 2 together with z_n, or
// maxIter and the last iterate when the orbit stays bounded.
func escapeCount(z, c complex128, maxIter int) (int, complex128) {
	for i := range maxIter {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, z
		}
		z = z*z + c
	}
	return maxIter, z
}
