// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"log/slog"

	"github.com/ik5/grainsynth/audio"
)

type Option func(*Engine)

// WithLogger sets the logger for progress reports. The default discards
// everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithJobs renders up to n tracks at once. Values below 1 mean one.
func WithJobs(n int) Option {
	return func(e *Engine) { e.jobs = max(n, 1) }
}

// WithSeed makes every track reproducible. Track i uses seed+i unless its
// configuration carries its own seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.seed = &seed }
}

// WithCodec replaces the file codec used to load samples and save tracks.
func WithCodec(c Codec) Option {
	return func(e *Engine) { e.codec = c }
}

// WithResampler overrides the resampler named in the configuration.
func WithResampler(r audio.Resampler) Option {
	return func(e *Engine) { e.resampler = r }
}
