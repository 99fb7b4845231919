// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadAll drains src into a planar SampleBuffer and returns it with the
// source sample rate. Only mono and stereo sources are accepted. src is not
// closed.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	defer src.Close()
//	buf, rate, err := audio.ReadAll(src)
func ReadAll(src Source) (*SampleBuffer, int, error) {
	channels := src.Channels()
	if _, err := LayoutFor(channels); err != nil {
		return nil, 0, err
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	// keep reads frame aligned
	bufSize -= bufSize % channels

	buf := make([]float32, bufSize)
	interleaved := make([]float32, 0, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// decoders that signal the end with (0, nil)
			break
		}
	}

	// a truncated trailing frame is dropped
	interleaved = interleaved[:len(interleaved)-len(interleaved)%channels]

	out, err := Deinterleave(interleaved, channels)
	if err != nil {
		return nil, 0, err
	}

	return out, src.SampleRate(), nil
}
