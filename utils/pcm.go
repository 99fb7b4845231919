// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Full scale factors used when converting between float and integer PCM.
//
// PCM24Scale is the 32-bit signed maximum, not the 24-bit one. Files written
// by earlier releases use it, so it is kept for byte compatibility even though
// it leaves most of the 24-bit range unused.
const (
	PCM16Scale = math.MaxInt16
	PCM24Scale = math.MaxInt32
)

// FloatToPCM scales x by scale, rounds half away from zero and saturates to
// [-scale-1, scale], the range of the signed integer type scale belongs to.
func FloatToPCM(x, scale float64) int {
	v := math.Round(x * scale)
	if math.IsNaN(v) {
		return 0
	}

	if v > scale {
		return int(scale)
	}
	if v < -scale-1 {
		return int(-scale - 1)
	}

	return int(v)
}

// PCMToFloat is the inverse of FloatToPCM.
func PCMToFloat(v int, scale float64) float64 {
	return float64(v) / scale
}
