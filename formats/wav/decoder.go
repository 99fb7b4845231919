// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/utils"
)

// WAVE format tags.
const (
	formatPCM   = 1
	formatFloat = 3
)

// pcmReader is the part of wav.Decoder the source needs, so tests can fake it.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// wavSource streams samples from a go-audio decoder.
type wavSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	toFloat    func(int) float32
	intBuf     *goaudio.IntBuffer
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }
func (s *wavSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = s.toFloat(s.intBuf.Data[i])
	}

	return n, nil
}

// sampleConverter picks the integer to float mapping for a format/depth pair.
// 16-bit PCM, 24-bit PCM and 32-bit IEEE float are supported.
func sampleConverter(format, bitDepth int) (func(int) float32, error) {
	switch {
	case format == formatPCM && bitDepth == 16:
		return func(v int) float32 { return float32(utils.PCMToFloat(v, utils.PCM16Scale)) }, nil
	case format == formatPCM && bitDepth == 24:
		return func(v int) float32 { return float32(utils.PCMToFloat(v, utils.PCM24Scale)) }, nil
	case format == formatFloat && bitDepth == 32:
		return func(v int) float32 { return math.Float32frombits(uint32(v)) }, nil
	default:
		return nil, fmt.Errorf("%w: format %d, %d bits", ErrUnsupportedEncoding, format, bitDepth)
	}
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek between chunks
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	channels := int(dec.NumChans)
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedWavLayout, channels)
	}

	toFloat, err := sampleConverter(int(dec.WavAudioFormat), int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	return &wavSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   channels,
		toFloat:    toFloat,
	}, nil
}
