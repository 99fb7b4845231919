// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/utils"
)

// Write encodes buf as a WAV stream at sampleRate. bitDepth selects the
// sample encoding: 16 and 24 write signed PCM, 32 writes IEEE float.
// Samples are interleaved L,R for stereo buffers.
func Write(w io.WriteSeeker, buf *audio.SampleBuffer, sampleRate, bitDepth int) error {
	var (
		format int
		encode func(float64) int
	)

	switch bitDepth {
	case 16:
		format = formatPCM
		encode = func(x float64) int { return utils.FloatToPCM(x, utils.PCM16Scale) }
	case 24:
		format = formatPCM
		encode = func(x float64) int { return utils.FloatToPCM(x, utils.PCM24Scale) }
	case 32:
		format = formatFloat
		encode = func(x float64) int { return int(int32(math.Float32bits(float32(x)))) }
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := buf.Channels()
	if channels != 1 && channels != 2 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedWavLayout, channels)
	}

	interleaved := buf.Interleave()
	data := make([]int, len(interleaved))
	for i, x := range interleaved {
		data[i] = encode(x)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, format)
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
