// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/viterin/vek"
)

// PanGains maps a pan value in [-1,1] to left/right gains with a linear law.
// Negative pans attenuate the right side, positive pans the left side.
func PanGains(pan float64) (left, right float64) {
	if pan < 0 {
		return 1, 1 + pan
	}
	return 1 - pan, 1
}

// MixInto adds src into the Stereo buffer dst starting at sample offset start.
// Mono sources feed both channels, Stereo sources feed left from channel 0 and
// right from channel 1. Samples past the end of dst are dropped.
func MixInto(dst, src *SampleBuffer, start int, leftGain, rightGain float64) error {
	left, err := dst.Left()
	if err != nil {
		return fmt.Errorf("mix destination: %w", err)
	}
	right, err := dst.Right()
	if err != nil {
		return fmt.Errorf("mix destination: %w", err)
	}

	if start < 0 || start >= len(left) {
		return nil
	}
	n := min(src.Len(), len(left)-start)
	if n == 0 {
		return nil
	}

	var srcLeft, srcRight []float64
	switch src.Layout() {
	case Mono:
		srcLeft, srcRight = src.channels[0], src.channels[0]
	case Stereo:
		srcLeft, srcRight = src.channels[0], src.channels[1]
	default:
		return fmt.Errorf("mix source: %w: %s", ErrInvalidVariant, src.Layout())
	}

	tmp := make([]float64, n)
	vek.Add_Inplace(left[start:start+n], vek.MulNumber_Into(tmp, srcLeft[:n], leftGain))
	vek.Add_Inplace(right[start:start+n], vek.MulNumber_Into(tmp, srcRight[:n], rightGain))

	return nil
}
