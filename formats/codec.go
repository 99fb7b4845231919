// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/formats/aiff"
	"github.com/ik5/grainsynth/formats/mp3"
	"github.com/ik5/grainsynth/formats/vorbis"
	"github.com/ik5/grainsynth/formats/wav"
)

// Loader reads a sample file into memory.
type Loader interface {
	Load(path string) (*audio.SampleBuffer, int, error)
}

// Saver persists a rendered buffer.
type Saver interface {
	Save(path string, buf *audio.SampleBuffer, sampleRate, bitDepth int) error
}

// Codec loads sample files by extension and saves WAV files.
type Codec struct {
	decoders *audio.Registry
}

// NewCodec returns a Codec with every bundled decoder registered.
func NewCodec() *Codec {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return &Codec{decoders: reg}
}

// Formats lists the file extensions Load understands.
func (c *Codec) Formats() []string {
	return c.decoders.Formats()
}

// unsupported are decoder errors caused by a valid container holding an
// encoding or channel layout that is not handled.
var unsupported = []error{
	audio.ErrUnsupportedLayout,
	wav.ErrUnsupportedEncoding,
	wav.ErrUnsupportedWavLayout,
	aiff.ErrUnsupportedBitDepth,
	aiff.ErrUnsupportedAiffLayout,
	vorbis.ErrTooManyChannels,
}

func classify(path string, err error) error {
	for _, target := range unsupported {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, path, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
}

// Load decodes the file at path and returns its samples with the file's
// sample rate. The decoder is picked from the extension.
func (c *Codec) Load(path string) (*audio.SampleBuffer, int, error) {
	ext := filepath.Ext(path)
	dec, ok := c.decoders.Get(ext)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q extension of %s", ErrUnsupportedFormat, strings.TrimPrefix(ext, "."), path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, classify(path, err)
	}
	defer src.Close()

	buf, rate, err := audio.ReadAll(src)
	if err != nil {
		return nil, 0, classify(path, err)
	}

	return buf, rate, nil
}

// Save writes buf as a WAV file at path. A file that fails to encode is removed.
func (c *Codec) Save(path string, buf *audio.SampleBuffer, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreate, err)
	}

	if err := wav.Write(f, buf, sampleRate, bitDepth); err != nil {
		f.Close()
		os.Remove(path)

		if errors.Is(err, wav.ErrUnsupportedBitDepth) || errors.Is(err, wav.ErrUnsupportedWavLayout) {
			return fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, path, err)
		}
		return fmt.Errorf("%w: %s: %w", ErrCreate, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrCreate, err)
	}

	return nil
}
