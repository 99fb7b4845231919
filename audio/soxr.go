// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	resampler "github.com/tphakala/go-audio-resampler"
)

// soxrBaseRate is the nominal input rate handed to the converter when only a
// ratio is known. Any rate works since the filter depends on the ratio alone.
const soxrBaseRate = 48000.0

// Soxr resamples with go-audio-resampler, a pure Go port of libsoxr, at its
// high quality preset. Output lengths are fitted to round(Len()*ratio) like
// every other Resampler.
type Soxr struct{}

func NewSoxr() *Soxr { return &Soxr{} }

func (s *Soxr) Resample(buf *SampleBuffer, ratio float64) (*SampleBuffer, error) {
	if _, err := outputLength(buf.Len(), ratio); err != nil {
		return nil, err
	}

	return s.Convert(buf, soxrBaseRate, soxrBaseRate*ratio)
}

// Convert resamples buf recorded at inRate to outRate. Pitch shifting passes
// the source rate times the pitch as inRate.
func (s *Soxr) Convert(buf *SampleBuffer, inRate, outRate float64) (*SampleBuffer, error) {
	ratio := outRate / inRate

	outLen, err := outputLength(buf.Len(), ratio)
	if err != nil {
		return nil, err
	}
	if ratio == 1 {
		return buf.Clone(), nil
	}

	out := NewBuffer(buf.Layout(), outLen)
	if buf.Len() == 0 {
		return out, nil
	}

	switch buf.Layout() {
	case Mono:
		mono, err := resampler.ResampleMono(buf.channels[0], inRate, outRate, resampler.QualityHigh)
		if err != nil {
			return nil, fmt.Errorf("soxr %v -> %v Hz: %w", inRate, outRate, err)
		}
		copy(out.channels[0], mono)
	case Stereo:
		left, right, err := resampler.ResampleStereo(buf.channels[0], buf.channels[1], inRate, outRate, resampler.QualityHigh)
		if err != nil {
			return nil, fmt.Errorf("soxr %v -> %v Hz: %w", inRate, outRate, err)
		}
		copy(out.channels[0], left)
		copy(out.channels[1], right)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariant, buf.Layout())
	}

	return out, nil
}
