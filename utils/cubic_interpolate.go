// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom segment between y1 and y2 at the
// fraction x in [0, 1]. y0 and y3 are the neighbouring samples and only shape
// the tangents, so the curve passes through y1 at x=0 and y2 at x=1.
func CubicInterpolate(y0, y1, y2, y3, x float64) float64 {
	m1 := 0.5 * (y2 - y0)
	m2 := 0.5 * (y3 - y1)
	d := y2 - y1

	c2 := 3*d - 2*m1 - m2
	c3 := m1 + m2 - 2*d

	return y1 + x*(m1+x*(c2+x*c3))
}
