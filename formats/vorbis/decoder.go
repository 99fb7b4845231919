// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/grainsynth/audio"
	"github.com/jfreymuth/oggvorbis"
)

var (
	ErrNotVorbisFile   = errors.New("not an Ogg Vorbis stream")
	ErrTooManyChannels  = errors.New("only mono and stereo Vorbis streams are supported")
)

// valueReader is the part of oggvorbis.Reader the source needs.
type valueReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// vorbisSource passes oggvorbis output through, trimming reads to whole frames.
type vorbisSource struct {
	dec      valueReader
	channels int
	rate     int
}

func (s *vorbisSource) SampleRate() int { return s.rate }
func (s *vorbisSource) Channels() int   { return s.channels }
func (s *vorbisSource) Close() error    { return nil }
func (s *vorbisSource) BufSize() int    { return 4096 }

func (s *vorbisSource) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, nil
	}

	// Read returns a count of interleaved values, always a multiple of Channels
	n, err := s.dec.Read(dst[:frames*s.channels])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newSource(dec)
}

func newSource(dec valueReader) (*vorbisSource, error) {
	ch := dec.Channels()
	if ch != 1 && ch != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrTooManyChannels, ch)
	}

	return &vorbisSource{dec: dec, channels: ch, rate: dec.SampleRate()}, nil
}
