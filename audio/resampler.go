// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/ik5/grainsynth/utils"
	"github.com/viterin/vek"
)

// Resampler converts a whole buffer by ratio (output rate / input rate).
// The output keeps the input layout and has round(Len()*ratio) samples.
type Resampler interface {
	Resample(buf *SampleBuffer, ratio float64) (*SampleBuffer, error)
}

// RateConverter is a Resampler that also takes the two rates directly.
type RateConverter interface {
	Resampler
	Convert(buf *SampleBuffer, inRate, outRate float64) (*SampleBuffer, error)
}

// ConvertRate resamples buf from inRate to outRate, handing the rates to r
// when it is a RateConverter and their ratio otherwise.
func ConvertRate(r Resampler, buf *SampleBuffer, inRate, outRate float64) (*SampleBuffer, error) {
	if rc, ok := r.(RateConverter); ok {
		return rc.Convert(buf, inRate, outRate)
	}

	return r.Resample(buf, outRate/inRate)
}

// DefaultResampler is the name used when none is configured.
const DefaultResampler = "sinc"

var resamplers = map[string]func() Resampler{
	"sinc":           func() Resampler { return NewSoxr() },
	"sinc-reference": func() Resampler { return NewReferenceSinc() },
	"cubic":          func() Resampler { return Cubic{} },
}

// NewResampler returns the resampler registered under name. An empty name
// selects DefaultResampler.
func NewResampler(name string) (Resampler, error) {
	if name == "" {
		name = DefaultResampler
	}

	factory, ok := resamplers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResampler, name)
	}

	return factory(), nil
}

// ResamplerNames lists the known resampler names in sorted order.
func ResamplerNames() []string {
	names := make([]string, 0, len(resamplers))
	for name := range resamplers {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func outputLength(n int, ratio float64) (int, error) {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	return int(math.Round(float64(n) * ratio)), nil
}

// Blackman-Harris window coefficients.
const (
	bh0 = 0.35875
	bh1 = 0.48829
	bh2 = 0.14128
	bh3 = 0.01168
)

// Sinc is a band limited windowed-sinc interpolator, selectable as
// "sinc-reference" to cross check the soxr backend. The kernel is tabulated
// once with linear interpolation between table points; the cutoff follows the
// lower of the two rates when downsampling.
type Sinc struct {
	halfTaps     int
	oversampling int
	cutoff       float64

	once  sync.Once
	table []float64
}

// NewReferenceSinc returns the Blackman-Harris windowed sinc with 64 taps per
// side, 256 times oversampled and a 0.95 cutoff.
func NewReferenceSinc() *Sinc {
	return &Sinc{halfTaps: 64, oversampling: 256, cutoff: 0.95}
}

func (s *Sinc) buildTable() {
	size := s.halfTaps*s.oversampling + 2
	s.table = make([]float64, size)

	half := float64(s.halfTaps)
	for k := range size {
		t := float64(k) / float64(s.oversampling)
		if t >= half {
			continue
		}

		sinc := 1.0
		if t != 0 {
			sinc = math.Sin(math.Pi*t) / (math.Pi * t)
		}

		u := (t/half + 1) / 2
		w := bh0 - bh1*math.Cos(2*math.Pi*u) + bh2*math.Cos(4*math.Pi*u) - bh3*math.Cos(6*math.Pi*u)

		s.table[k] = sinc * w
	}
}

func (s *Sinc) kernel(t float64) float64 {
	a := math.Abs(t) * float64(s.oversampling)
	k := int(a)
	if k >= len(s.table)-1 {
		return 0
	}
	frac := a - float64(k)

	return s.table[k] + (s.table[k+1]-s.table[k])*frac
}

func (s *Sinc) Resample(buf *SampleBuffer, ratio float64) (*SampleBuffer, error) {
	outLen, err := outputLength(buf.Len(), ratio)
	if err != nil {
		return nil, err
	}
	if ratio == 1 {
		return buf.Clone(), nil
	}

	s.once.Do(s.buildTable)

	c := min(1, ratio) * s.cutoff
	width := float64(s.halfTaps) / c
	weights := make([]float64, int(2*width)+2)

	out := NewBuffer(buf.Layout(), outLen)
	for ch, in := range buf.channels {
		dst := out.channels[ch]
		n := len(in)

		for j := range dst {
			x := float64(j) / ratio
			lo := max(int(math.Ceil(x-width)), 0)
			hi := min(int(math.Floor(x+width)), n-1)
			if hi < lo {
				continue
			}

			m := hi - lo + 1
			w := weights[:m]
			for i := range w {
				w[i] = c * s.kernel(c*(x-float64(lo+i)))
			}

			dst[j] = vek.Dot(w, in[lo:hi+1])
		}
	}

	return out, nil
}

// Cubic resamples with Catmull-Rom interpolation. It is fast but not band
// limited; a one-pole low-pass runs first when downsampling.
type Cubic struct{}

func (Cubic) Resample(buf *SampleBuffer, ratio float64) (*SampleBuffer, error) {
	outLen, err := outputLength(buf.Len(), ratio)
	if err != nil {
		return nil, err
	}
	if ratio == 1 {
		return buf.Clone(), nil
	}

	out := NewBuffer(buf.Layout(), outLen)
	for ch, in := range buf.channels {
		if len(in) == 0 {
			continue
		}
		if ratio < 1 {
			in = lowPass(in, 0.5)
		}

		last := len(in) - 1
		at := func(i int) float64 { return in[min(max(i, 0), last)] }

		dst := out.channels[ch]
		for j := range dst {
			x := float64(j) / ratio
			i := int(x)
			dst[j] = utils.CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), x-float64(i))
		}
	}

	return out, nil
}

// lowPass runs y[n] = alpha*x[n] + (1-alpha)*y[n-1] over a copy of x,
// starting from x[0] to avoid a warm-up transient.
func lowPass(x []float64, alpha float64) []float64 {
	y := make([]float64, len(x))
	state := x[0]
	for i, v := range x {
		state = alpha*v + (1-alpha)*state
		y[i] = state
	}

	return y
}
