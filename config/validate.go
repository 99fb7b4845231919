// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ik5/grainsynth/audio"
)

// Accepted ranges.
const (
	MinBeatLengthMs = 100.0
	MaxBeatLengthMs = 30_000.0
	MinSamplingRate = 48_000
	MaxSamplingRate = 384_000
	MinGrainsCount  = 4
	MaxGrainsCount  = 1_000_000
	MinGrainMs      = 10.0
	MinSlopeMs      = 0.1
	MinPitch        = 0.25
	MaxPitch        = 5.0
	MinSubBeatMs    = 10.0
	MaxHumanization = 50.0

	// grains must stay this much shorter than a beat, and window slopes this
	// much shorter than a grain
	lengthMargin = 0.1
	// tolerance on the sum of pitch step fractions
	fractionTolerance = 0.0001
)

var bitDepths = []int{16, 24, 32}

type collector struct {
	errs ValidationErrors
}

func (c *collector) add(e FieldError, format string, args ...any) {
	e.Reason = fmt.Sprintf(format, args...)
	c.errs = append(c.errs, &e)
}

func outside(v, lo, hi float64) bool { return v < lo || v > hi }

// Validate checks every range at once and returns ValidationErrors listing
// all violations, or nil.
func (c *Config) Validate() error {
	var col collector

	c.Synth.validate(&col)

	if len(c.Tracks) == 0 {
		col.add(FieldError{Section: "Tracks", Field: "Tracks"}, "at least one track is required")
	}

	names := make(map[string]int)
	var order []string
	for i := range c.Tracks {
		t := &c.Tracks[i]
		n := i + 1

		if t.Properties.validate(&col, n) {
			if names[t.Properties.Name] == 0 {
				order = append(order, t.Properties.Name)
			}
			names[t.Properties.Name]++
		}
		t.Grains.validate(&col, &c.Synth, n)

		if len(t.Beats) == 0 {
			col.add(FieldError{Track: n, Section: "beat_sequence", Field: "beat_sequence"}, "at least one beat is required")
		}
		for j := range t.Beats {
			t.Beats[j].validate(&col, &c.Synth, n, j+1)
		}
	}

	for _, name := range order {
		if count := names[name]; count > 1 {
			col.add(FieldError{Section: "track_properties", Field: "track_name"},
				"%q appears %d times, track names must be unique", name, count)
		}
	}

	if len(col.errs) == 0 {
		return nil
	}
	return col.errs
}

func (s *Synth) validate(col *collector) {
	e := FieldError{Section: "SynthConfiguration"}

	if outside(s.BeatLengthMs, MinBeatLengthMs, MaxBeatLengthMs) {
		e.Field = "beat_length_ms"
		col.add(e, "%v not in %v..%v", s.BeatLengthMs, MinBeatLengthMs, MaxBeatLengthMs)
	}
	if s.EngineSamplingRate < MinSamplingRate || s.EngineSamplingRate > MaxSamplingRate {
		e.Field = "engine_sampling_rate"
		col.add(e, "%d not in %d..%d", s.EngineSamplingRate, MinSamplingRate, MaxSamplingRate)
	}
	if s.OutputSamplingRate < MinSamplingRate || s.OutputSamplingRate > MaxSamplingRate {
		e.Field = "output_sampling_rate"
		col.add(e, "%d not in %d..%d", s.OutputSamplingRate, MinSamplingRate, MaxSamplingRate)
	}
	if !slices.Contains(bitDepths, s.OutputBitDepth) {
		e.Field = "output_bit_depth"
		col.add(e, "%d not one of %v", s.OutputBitDepth, bitDepths)
	}
	if _, err := audio.NewResampler(s.Resampler); err != nil {
		e.Field = "resampler"
		col.add(e, "%q not one of %v", s.Resampler, audio.ResamplerNames())
	}
}

// validate reports whether the name is usable for the uniqueness check.
func (p *TrackProperties) validate(col *collector, track int) bool {
	e := FieldError{Track: track, Section: "track_properties"}
	ok := true

	switch {
	case p.Name == "":
		e.Field = "track_name"
		col.add(e, "must not be empty")
		ok = false
	case p.Name == "." || p.Name == ".." || strings.ContainsAny(p.Name, `/\`):
		e.Field = "track_name"
		col.add(e, "%q is not a plain file name", p.Name)
		ok = false
	}
	if outside(p.NormalizationLevel, 0, 1) {
		e.Field = "track_normalization_level"
		col.add(e, "%v not in 0..1", p.NormalizationLevel)
		ok = false
	}
	if outside(p.Panorama, -1, 1) {
		e.Field = "track_panorama"
		col.add(e, "%v not in -1..1", p.Panorama)
		ok = false
	}

	return ok
}

func (g *GrainsProperties) validate(col *collector, s *Synth, track int) {
	e := FieldError{Track: track, Section: "grains_properties"}

	if g.SamplePath == "" {
		e.Field = "sample_file_path"
		col.add(e, "must not be empty")
	}
	if g.Count < MinGrainsCount || g.Count > MaxGrainsCount {
		e.Field = "grains_count"
		col.add(e, "%d not in %d..%d", g.Count, MinGrainsCount, MaxGrainsCount)
	}

	// window slopes are only comparable with a valid length
	if g.Length.validate(col, s, track) {
		g.Window.validate(col, g.Length, track)
	}

	g.Pitch.validate(col, track)
}

func (l GrainsLength) validate(col *collector, s *Synth, track int) bool {
	e := FieldError{Track: track, Section: "grains_properties", Field: "grains_length_ms"}
	longest := s.BeatLengthMs - lengthMargin

	switch l.Type {
	case LengthFixed:
		if outside(l.Equal, MinGrainMs, longest) {
			col.add(e, "equal %v not in %v..%v", l.Equal, MinGrainMs, longest)
			return false
		}
	case LengthRange:
		if l.To <= l.From {
			col.add(e, "from %v must be lower than to %v", l.From, l.To)
			return false
		}
		if l.From < MinGrainMs || l.To > longest {
			col.add(e, "range %v..%v not within %v..%v", l.From, l.To, MinGrainMs, longest)
			return false
		}
	default:
		col.add(e, "type %q not one of %s, %s", l.Type, LengthFixed, LengthRange)
		return false
	}

	return true
}

func (w WindowFunction) validate(col *collector, l GrainsLength, track int) {
	e := FieldError{Track: track, Section: "grains_properties", Field: "window_function"}
	shortest := l.Shortest()

	switch w.Type {
	case WindowRegular:
		if w.Slope < MinSlopeMs {
			col.add(e, "slope %v below %v", w.Slope, MinSlopeMs)
		} else if 2*w.Slope+lengthMargin > shortest {
			col.add(e, "2 x slope %v does not fit in a %v ms grain", w.Slope, shortest)
		}
	case WindowUnregular:
		if w.SlopeAttack < MinSlopeMs || w.SlopeRelease < MinSlopeMs {
			col.add(e, "slope_attack %v and slope_release %v must be at least %v", w.SlopeAttack, w.SlopeRelease, MinSlopeMs)
		} else if w.SlopeAttack+w.SlopeRelease+lengthMargin > shortest {
			col.add(e, "slope_attack + slope_release %v does not fit in a %v ms grain", w.SlopeAttack+w.SlopeRelease, shortest)
		}
	default:
		col.add(e, "type %q not one of %s, %s", w.Type, WindowRegular, WindowUnregular)
	}
}

func (p GrainsPitch) validate(col *collector, track int) {
	e := FieldError{Track: track, Section: "grains_properties", Field: "grains_pitch"}

	switch p.Type {
	case PitchFixed:
	case PitchSteps:
		if len(p.Steps) == 0 {
			col.add(e, "at least one step is required")
			return
		}

		total := 0.0
		fractionsValid := true
		for i, step := range p.Steps {
			se := e
			se.Step = i + 1
			if outside(step.Pitch, MinPitch, MaxPitch) {
				col.add(se, "pitch %v not in %v..%v", step.Pitch, MinPitch, MaxPitch)
			}
			if outside(step.Fraction, 0, 100) {
				col.add(se, "fraction %v not in 0..100", step.Fraction)
				fractionsValid = false
			}
			total += step.Fraction
		}

		if fractionsValid && outside(total, 100-fractionTolerance, 100+fractionTolerance) {
			col.add(e, "fractions add up to %v, want 100", total)
		}
	default:
		col.add(e, "type %q not one of %s, %s", p.Type, PitchFixed, PitchSteps)
	}
}

func (b *Beat) validate(col *collector, s *Synth, track, beat int) {
	e := FieldError{Track: track, Beat: beat, Section: "beat_sequence"}

	if b.Subdivisions < 1 || s.BeatLengthMs/float64(b.Subdivisions) < MinSubBeatMs {
		e.Field = "subdivisions"
		col.add(e, "%d leaves less than %v ms per subdivision", b.Subdivisions, MinSubBeatMs)
	}
	if outside(b.CoveragePercentage, 0, 100) {
		e.Field = "coverage_percentage"
		col.add(e, "%v not in 0..100", b.CoveragePercentage)
	}
	if outside(b.HumanizationPercents, 0, MaxHumanization) {
		e.Field = "humanization_percents"
		col.add(e, "%v not in 0..%v", b.HumanizationPercents, MaxHumanization)
	}
	if outside(b.VolumeDeviationPercents, 0, 100) {
		e.Field = "volume_deviation_percents"
		col.add(e, "%v not in 0..100", b.VolumeDeviationPercents)
	}
	if outside(b.PanoramaDeviationPercents, 0, 100) {
		e.Field = "panorama_deviation_percents"
		col.add(e, "%v not in 0..100", b.PanoramaDeviationPercents)
	}
}
