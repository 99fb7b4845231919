// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
// Mono and stereo streams are supported. Samples are already float32 in
// [-1, 1] and are passed through unchanged, interleaved L,R for stereo.
package vorbis
