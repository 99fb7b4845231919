// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample model shared by every other package.
//
// # Sample buffers
//
// SampleBuffer stores planar float64 samples with a fixed Layout, Mono or
// Stereo. Every channel has the same length. Stereo-only accessors such as
// Left and Right fail with ErrInvalidVariant on a Mono buffer instead of
// silently reusing the single channel.
//
//	buf := audio.NewBuffer(audio.Stereo, 48000)
//	left, _ := buf.Left()
//	left[0] = 0.5
//	if err := buf.Normalize(1); errors.Is(err, audio.ErrDivisionByZero) {
//	    // silent buffer
//	}
//
// MixInto adds one buffer into a Stereo destination with per-side gains,
// dropping whatever runs past the end. PanGains implements the linear pan law
// used for those gains.
//
// # Streaming sources
//
// Decoders under formats/ produce a Source, a pull based stream of
// interleaved float32 samples. ReadAll drains a Source into a SampleBuffer.
// A Registry maps file extensions to decoders.
//
// # Resampling
//
// Resampler converts a whole buffer by a ratio of output to input rate.
// ConvertRate takes the two rates instead and passes them on to resamplers
// that accept rates directly. Three implementations are registered by name:
//   - "sinc": Soxr, go-audio-resampler (a pure Go libsoxr) at high quality
//   - "sinc-reference": Blackman-Harris windowed sinc, dot products through vek
//   - "cubic": Catmull-Rom interpolation, fast and not band limited
package audio
