// SPDX-License-Identifier: EPL-2.0

package utils

// Smoothstep is the quintic easing curve 6t^5 - 15t^4 + 10t^3.
// It is 0 at t=0 and 1 at t=1 with zero first and second derivatives at both ends.
func Smoothstep(t float64) float64 {
	return t * t * t * (t*(6*t-15) + 10)
}
