// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

// mockSource yields frames from a waveform function. chunk caps the frames per
// read to exercise short reads; a zero chunk means unlimited.
type mockSource struct {
	sampleRate  int
	channels    int
	frames      int
	generated   int
	chunk       int
	bufSize     int
	err         error
	eofWithData bool
	waveform    func(frame, channel int) float32
}

func newMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		bufSize:    4096,
		waveform:   waveform,
	}
}

// newRampSource counts up on the left channel and down on the right.
func newRampSource(sampleRate, channels, frames int) *mockSource {
	return newMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		if channel == 1 {
			return -float32(frame)
		}
		return float32(frame)
	})
}

var errMockRead = errors.New("mock read failure")

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return m.bufSize }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.frames-m.generated)
	if m.chunk > 0 {
		frames = min(frames, m.chunk)
	}

	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += frames

	if m.eofWithData && m.generated >= m.frames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
