// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// Mono and stereo PCM at 8, 16, 24 and 32 bits are supported. Each depth is
// scaled by its own positive full-scale value, so 16-bit input matches the
// wav decoder exactly.
package aiff
