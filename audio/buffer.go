// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/viterin/vek"
)

// Layout is the fixed channel arrangement of a SampleBuffer.
type Layout int

const (
	Mono Layout = iota + 1
	Stereo
)

func (l Layout) String() string {
	switch l {
	case Mono:
		return "mono"
	case Stereo:
		return "stereo"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Channels returns the channel count of the layout, or 0 for an unknown one.
func (l Layout) Channels() int {
	switch l {
	case Mono:
		return 1
	case Stereo:
		return 2
	default:
		return 0
	}
}

// LayoutFor maps a channel count to its Layout.
func LayoutFor(channels int) (Layout, error) {
	switch channels {
	case 1:
		return Mono, nil
	case 2:
		return Stereo, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedLayout, channels)
	}
}

// SampleBuffer holds planar float64 samples, nominally in [-1,1].
// The layout is fixed at construction and every channel has the same length.
type SampleBuffer struct {
	layout   Layout
	channels [][]float64
}

// NewBuffer allocates a silent buffer of size samples per channel.
// An unknown layout is treated as Stereo.
func NewBuffer(layout Layout, size int) *SampleBuffer {
	if layout != Mono {
		layout = Stereo
	}

	b := &SampleBuffer{
		layout:   layout,
		channels: make([][]float64, layout.Channels()),
	}
	b.Blank(size)

	return b
}

// NewMono wraps samples (without copying) in a Mono buffer.
func NewMono(samples []float64) *SampleBuffer {
	return &SampleBuffer{
		layout:   Mono,
		channels: [][]float64{samples},
	}
}

// NewStereo wraps left and right (without copying) in a Stereo buffer.
func NewStereo(left, right []float64) (*SampleBuffer, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: left %d, right %d", ErrChannelMismatch, len(left), len(right))
	}

	return &SampleBuffer{
		layout:   Stereo,
		channels: [][]float64{left, right},
	}, nil
}

// Deinterleave splits interleaved frames: even indices go left, odd indices right.
func Deinterleave(data []float32, channels int) (*SampleBuffer, error) {
	layout, err := LayoutFor(channels)
	if err != nil {
		return nil, err
	}
	if len(data)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	frames := len(data) / channels
	b := NewBuffer(layout, frames)

	switch layout {
	case Mono:
		for i, v := range data {
			b.channels[0][i] = float64(v)
		}
	case Stereo:
		left, right := b.channels[0], b.channels[1]
		for f := range frames {
			left[f] = float64(data[f<<1])
			right[f] = float64(data[f<<1+1])
		}
	}

	return b, nil
}

func (b *SampleBuffer) Layout() Layout { return b.layout }
func (b *SampleBuffer) Channels() int  { return len(b.channels) }

// Len is the number of samples per channel.
func (b *SampleBuffer) Len() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Blank reallocates every channel to size zero samples.
func (b *SampleBuffer) Blank(size int) {
	for c := range b.channels {
		b.channels[c] = make([]float64, size)
	}
}

// Channel gives mutable access to channel c.
func (b *SampleBuffer) Channel(c int) ([]float64, error) {
	if c < 0 || c >= len(b.channels) {
		return nil, fmt.Errorf("%w: channel %d of %s buffer", ErrInvalidVariant, c, b.layout)
	}
	return b.channels[c], nil
}

// Left returns the left channel of a Stereo buffer.
func (b *SampleBuffer) Left() ([]float64, error) {
	switch b.layout {
	case Stereo:
		return b.channels[0], nil
	case Mono:
		return nil, fmt.Errorf("%w: left channel of mono buffer", ErrInvalidVariant)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariant, b.layout)
	}
}

// Right returns the right channel of a Stereo buffer.
func (b *SampleBuffer) Right() ([]float64, error) {
	switch b.layout {
	case Stereo:
		return b.channels[1], nil
	case Mono:
		return nil, fmt.Errorf("%w: right channel of mono buffer", ErrInvalidVariant)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariant, b.layout)
	}
}

// Slice copies samples [start, end) of every channel into a new buffer of the same layout.
func (b *SampleBuffer) Slice(start, end int) *SampleBuffer {
	out := &SampleBuffer{
		layout:   b.layout,
		channels: make([][]float64, len(b.channels)),
	}
	for c, ch := range b.channels {
		out.channels[c] = append([]float64(nil), ch[start:end]...)
	}

	return out
}

// Clone returns a deep copy of the buffer.
func (b *SampleBuffer) Clone() *SampleBuffer {
	return b.Slice(0, b.Len())
}

// Peak is the largest absolute sample value across all channels.
func (b *SampleBuffer) Peak() float64 {
	peak := 0.0
	for _, ch := range b.channels {
		if len(ch) == 0 {
			continue
		}
		peak = max(peak, vek.Max(ch), -vek.Min(ch))
	}

	return peak
}

// Normalize scales every sample by level/Peak(). Stereo channels share the
// scale factor so their balance is kept. A silent buffer is left untouched
// and ErrDivisionByZero is returned.
func (b *SampleBuffer) Normalize(level float64) error {
	peak := b.Peak()
	if peak == 0 {
		return ErrDivisionByZero
	}

	gain := level / peak
	for _, ch := range b.channels {
		vek.MulNumber_Inplace(ch, gain)
	}

	return nil
}

// Interleave returns frames as L,R,L,R... (or the single channel for Mono).
func (b *SampleBuffer) Interleave() []float64 {
	switch b.layout {
	case Mono:
		return append([]float64(nil), b.channels[0]...)
	case Stereo:
		left, right := b.channels[0], b.channels[1]
		out := make([]float64, 2*len(left))
		for i := range left {
			out[i<<1] = left[i]
			out[i<<1+1] = right[i]
		}
		return out
	default:
		return nil
	}
}
