// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder turns a WAV stream into an audio.Source yielding interleaved float32
// samples. Mono and stereo files are accepted with these encodings:
//   - 16-bit signed PCM, scaled by 1/32767
//   - 24-bit signed PCM, scaled by 1/2147483647
//   - 32-bit IEEE float, passed through
//
// Anything else fails with ErrUnsupportedEncoding or ErrUnsupportedWavLayout.
//
//	f, _ := os.Open("grain.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf, rate, err := audio.ReadAll(src)
//
// # Encoding
//
// Write stores a SampleBuffer at 16, 24 or 32 bits:
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.Write(f, buf, 48000, 16)
//
// The 24-bit scale keeps the 32-bit signed maximum for compatibility with
// files produced by earlier versions of the renderer, so full-scale 24-bit
// output wraps. Prefer 16 or 32 bits for new material.
package wav
