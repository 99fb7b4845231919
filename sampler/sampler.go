// SPDX-License-Identifier: EPL-2.0

package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/config"
	"github.com/ik5/grainsynth/formats"
)

// minSourceRatio is how many times longer than the longest grain a source
// sample must be.
const minSourceRatio = 1.5

// Loader reads a source sample and its sample rate.
type Loader interface {
	Load(path string) (*audio.SampleBuffer, int, error)
}

// Sampler owns the grain bank of one track.
type Sampler struct {
	rng       *rand.Rand
	resampler audio.Resampler
	loader    Loader

	bank []*audio.SampleBuffer
}

type Option func(*Sampler)

// WithRand sets the random source used for grain lengths, positions,
// shuffling and dispensing.
func WithRand(r *rand.Rand) Option {
	return func(s *Sampler) { s.rng = r }
}

// WithSeed makes the sampler deterministic.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

func WithResampler(r audio.Resampler) Option {
	return func(s *Sampler) { s.resampler = r }
}

func WithLoader(l Loader) Option {
	return func(s *Sampler) { s.loader = l }
}

// New returns a sampler with an empty bank. Defaults are a randomly seeded
// source, the soxr resampler and the bundled codec.
func New(opts ...Option) *Sampler {
	s := &Sampler{}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.resampler == nil {
		s.resampler = audio.NewSoxr()
	}
	if s.loader == nil {
		s.loader = formats.NewCodec()
	}

	return s
}

// Len is the number of grains in the bank.
func (s *Sampler) Len() int { return len(s.bank) }

// Grains returns the bank in its current order.
func (s *Sampler) Grains() []*audio.SampleBuffer {
	return append([]*audio.SampleBuffer(nil), s.bank...)
}

// Prepare loads the sample named in grains and fills the bank from it,
// replacing any previous content.
func (s *Sampler) Prepare(synth config.Synth, grains config.GrainsProperties) error {
	src, rate, err := s.loader.Load(grains.SamplePath)
	if err != nil {
		return err
	}

	return s.PrepareBuffer(synth, grains, src, rate)
}

// PrepareBuffer fills the bank from an already loaded sample recorded at rate.
func (s *Sampler) PrepareBuffer(synth config.Synth, grains config.GrainsProperties, src *audio.SampleBuffer, rate int) error {
	lengthMs := float64(src.Len()) / float64(rate) * 1000
	if longest := grains.Length.Longest(); longest*minSourceRatio > lengthMs {
		return fmt.Errorf("%w: %s lasts %.1f ms, needs %.1f ms", ErrTooShort, grains.SamplePath, lengthMs, longest*minSourceRatio)
	}

	bank := make([]*audio.SampleBuffer, 0, grains.Count)

	switch grains.Pitch.Type {
	case config.PitchSteps:
		for i, step := range grains.Pitch.Steps {
			count := int(math.Round(float64(grains.Count) * step.Fraction / 100))
			if count == 0 {
				return fmt.Errorf("%w: step %d (pitch %v, fraction %v%%): %w",
					ErrEmptyStep, i+1, step.Pitch, step.Fraction, config.ErrInvalidConfig)
			}

			var err error
			bank, err = s.extract(bank, synth, grains, src, rate, step.Pitch, count)
			if err != nil {
				return err
			}
		}

		// interleave the pitch variants
		s.rng.Shuffle(len(bank), func(i, j int) { bank[i], bank[j] = bank[j], bank[i] })
	default:
		var err error
		bank, err = s.extract(bank, synth, grains, src, rate, 1, grains.Count)
		if err != nil {
			return err
		}
	}

	s.bank = bank

	return nil
}

// extract resamples src for pitch and appends count windowed grains to bank.
func (s *Sampler) extract(bank []*audio.SampleBuffer, synth config.Synth, grains config.GrainsProperties,
	src *audio.SampleBuffer, rate int, pitch float64, count int,
) ([]*audio.SampleBuffer, error) {
	inRate := float64(rate) * pitch
	outRate := float64(synth.EngineSamplingRate)

	variant := src
	if inRate != outRate {
		var err error
		variant, err = audio.ConvertRate(s.resampler, src, inRate, outRate)
		if err != nil {
			return nil, fmt.Errorf("resampling %s for pitch %v: %w", grains.SamplePath, pitch, err)
		}
	}

	attackMs, releaseMs := grains.Window.Slopes()
	attack := attackMs / 1000 * float64(synth.EngineSamplingRate)
	release := releaseMs / 1000 * float64(synth.EngineSamplingRate)

	for range count {
		length := s.grainLength(synth, grains.Length)
		if length > variant.Len() {
			return nil, fmt.Errorf("%w: %s at pitch %v has %d samples, grain needs %d",
				ErrTooShort, grains.SamplePath, pitch, variant.Len(), length)
		}

		start := s.rng.IntN(variant.Len() - length + 1)
		grain := variant.Slice(start, start+length)

		for c := range grain.Channels() {
			ch, err := grain.Channel(c)
			if err != nil {
				return nil, err
			}
			fadeIn(ch, attack)
			fadeOut(ch, release)
		}

		if grains.LoudnessNormalization {
			// silent grains stay silent
			if err := grain.Normalize(1); err != nil && !errors.Is(err, audio.ErrDivisionByZero) {
				return nil, err
			}
		}

		bank = append(bank, grain)
	}

	return bank, nil
}

// grainLength draws a length in samples; Range lengths are uniform over
// both bounds inclusive.
func (s *Sampler) grainLength(synth config.Synth, l config.GrainsLength) int {
	if l.Type != config.LengthRange {
		return synth.MsToSamples(l.Equal)
	}

	short := synth.MsToSamples(l.From)
	long := synth.MsToSamples(l.To)

	return short + s.rng.IntN(long-short+1)
}

// Dispense picks a grain from the older half of the bank, moves it to the
// back and returns it. The bank length does not change.
func (s *Sampler) Dispense() (*audio.SampleBuffer, error) {
	if len(s.bank) < 2 {
		return nil, fmt.Errorf("%w: have %d", ErrEmptyBank, len(s.bank))
	}

	i := s.rng.IntN(len(s.bank) / 2)
	grain := s.bank[i]
	copy(s.bank[i:], s.bank[i+1:])
	s.bank[len(s.bank)-1] = grain

	return grain, nil
}
