// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/utils"
)

var ErrNotMP3File = errors.New("not an MP3 stream")

// frameReader is the part of gomp3.Decoder the source needs.
type frameReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// mp3Source converts the decoder's 16-bit little-endian stereo stream to floats.
// A trailing odd byte is carried over to the next read.
type mp3Source struct {
	dec        frameReader
	sampleRate int
	raw        []byte
	carry      []byte
}

func (s *mp3Source) SampleRate() int { return s.sampleRate }
func (s *mp3Source) Channels() int   { return 2 }
func (s *mp3Source) Close() error    { return nil }
func (s *mp3Source) BufSize() int    { return cap(s.raw) / 2 }

func (s *mp3Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.raw) < need {
		s.raw = make([]byte, need)
	}
	s.raw = s.raw[:need]

	held := copy(s.raw, s.carry)
	s.carry = s.carry[:0]

	// keep reading until at least one whole sample is available
	var err error
	for held < 2 && err == nil {
		var n int
		n, err = s.dec.Read(s.raw[held:])
		held += n
		if n == 0 && err == nil {
			err = io.EOF
		}
	}
	if err == nil && held < need {
		var n int
		n, err = s.dec.Read(s.raw[held:])
		held += n
	}

	samples := held / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.raw[2*i:]))
		dst[i] = float32(utils.PCMToFloat(int(v), utils.PCM16Scale))
	}
	if held%2 == 1 {
		s.carry = append(s.carry, s.raw[held-1])
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}

	return samples, err
}

// Decoder decodes MPEG-1/2 Layer III streams. go-mp3 always yields two channels.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &mp3Source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		raw:        make([]byte, 8192),
	}, nil
}
