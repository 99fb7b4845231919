// SPDX-License-Identifier: EPL-2.0

package sampler

import "github.com/ik5/grainsynth/utils"

// fadeIn applies the smoothstep curve to the first samples of ch. slope is
// the ramp length in samples; offsets 0..int(slope) inclusive are scaled by
// smoothstep(i/slope) and the rest is left alone.
func fadeIn(ch []float64, slope float64) {
	if slope <= 0 {
		return
	}

	n := min(int(slope), len(ch)-1)
	for i := 0; i <= n; i++ {
		ch[i] *= utils.Smoothstep(float64(i) / slope)
	}
}

// fadeOut mirrors fadeIn at the end of ch.
func fadeOut(ch []float64, slope float64) {
	if slope <= 0 {
		return
	}

	last := len(ch) - 1
	n := min(int(slope), last)
	for i := 0; i <= n; i++ {
		ch[last-i] *= utils.Smoothstep(float64(i) / slope)
	}
}
