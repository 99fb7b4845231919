// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/utils"
)

// pcmReader is the part of aiff.Decoder the source needs.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// fullScale maps a big-endian PCM bit depth to its positive full-scale value.
func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8:
		return 127, nil
	case 16:
		return utils.PCM16Scale, nil
	case 24:
		return 1<<23 - 1, nil
	case 32:
		return 1<<31 - 1, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

type aiffSource struct {
	dec        pcmReader
	sampleRate int
	channels   int
	scale      float64
	intBuf     *goaudio.IntBuffer
	done       bool
}

func (s *aiffSource) SampleRate() int { return s.sampleRate }
func (s *aiffSource) Channels() int   { return s.channels }
func (s *aiffSource) Close() error    { return nil }
func (s *aiffSource) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *aiffSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	for i := range n {
		dst[i] = float32(utils.PCMToFloat(s.intBuf.Data[i], s.scale))
	}

	// a short read means the SSND chunk is exhausted
	if n < len(dst) || err == io.EOF {
		s.done = true
		return n, io.EOF
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	scale, err := fullScale(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil || (format.NumChannels != 1 && format.NumChannels != 2) {
		return nil, ErrUnsupportedAiffLayout
	}

	return &aiffSource{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      scale,
	}, nil
}
