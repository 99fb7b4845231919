// SPDX-License-Identifier: EPL-2.0

package sequencer

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/ik5/grainsynth/config"
)

// Event triggers one grain on the track canvas.
type Event struct {
	Start  int     // sample offset into the canvas
	Pan    float64 // -1 (left) .. 1 (right)
	Volume float64 // gain multiplier
}

// Sequencer turns a beat sequence into trigger events.
type Sequencer struct {
	rng *rand.Rand
}

type Option func(*Sequencer)

func WithRand(r *rand.Rand) Option {
	return func(s *Sequencer) { s.rng = r }
}

// WithSeed makes the generated events reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

func New(opts ...Option) *Sequencer {
	s := &Sequencer{}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return s
}

// Generate places the events of every beat and returns them sorted by start.
// Beat i (zero based) spans [beatLength*(i+1), beatLength*(i+2)), leaving one
// beat of silence before the first. Events sharing a start keep the order in
// which they were generated.
func (s *Sequencer) Generate(beats []config.Beat, synth config.Synth) []Event {
	beatLength := synth.BeatLength()

	var events []Event
	for i, beat := range beats {
		positions := s.positions(beat, beatLength, beatLength*(i+1))

		chosen := int(math.Round(float64(beat.Subdivisions) * beat.CoveragePercentage / 100))
		chosen = min(chosen, len(positions))

		// partial Fisher-Yates: the first chosen entries are a uniform sample
		for k := range chosen {
			j := k + s.rng.IntN(len(positions)-k)
			positions[k], positions[j] = positions[j], positions[k]
		}

		for _, start := range positions[:chosen] {
			events = append(events, Event{
				Start:  start,
				Pan:    s.deviate(0, beat.PanoramaDeviationPercents),
				Volume: s.deviate(1, beat.VolumeDeviationPercents),
			})
		}
	}

	slices.SortStableFunc(events, func(a, b Event) int { return cmp.Compare(a.Start, b.Start) })

	return events
}

// positions returns the evenly spaced subdivision starts of one beat,
// humanized if requested.
func (s *Sequencer) positions(beat config.Beat, beatLength, offset int) []int {
	if beat.Subdivisions <= 0 {
		return nil
	}

	sub := float64(beatLength) / float64(beat.Subdivisions)
	jitter := sub * beat.HumanizationPercents / 100

	out := make([]int, beat.Subdivisions)
	for k := range out {
		pos := sub * float64(k)
		if jitter != 0 {
			pos += s.uniform(-jitter, jitter)
		}
		out[k] = max(int(math.Round(pos)), 0) + offset
	}

	return out
}

// deviate draws uniformly from center ± percents/100, or returns center
// untouched when percents is zero.
func (s *Sequencer) deviate(center, percents float64) float64 {
	if percents == 0 {
		return center
	}

	d := percents / 100

	return s.uniform(center-d, center+d)
}

func (s *Sequencer) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
