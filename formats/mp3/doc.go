// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams with github.com/hajimehoshi/go-mp3.
//
// The decoder always produces interleaved stereo float32 samples scaled by
// 1/32767, the same scale the wav package uses for 16-bit PCM. Mono files
// come out with both channels equal.
//
// Encoding is not supported.
package mp3
