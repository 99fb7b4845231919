// SPDX-License-Identifier: EPL-2.0

// Package formats connects the decoders under formats/ to whole-file loading
// and saving of audio.SampleBuffer values.
//
// Load picks a decoder by extension (wav, mp3, ogg, aiff, aif) and returns
// the planar samples together with the file's sample rate. Save always writes
// WAV at 16, 24 or 32 bits. Errors wrap one of ErrNotFound, ErrDecode,
// ErrUnsupportedFormat or ErrCreate:
//
//	codec := formats.NewCodec()
//	buf, rate, err := codec.Load("samples/voice.wav")
//	if errors.Is(err, formats.ErrNotFound) {
//	    ...
//	}
package formats
