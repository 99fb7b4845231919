// SPDX-License-Identifier: EPL-2.0

package config

import (
	"log/slog"
	"math"
)

// Grain length, window and pitch modes.
const (
	LengthFixed = "Fixed"
	LengthRange = "Range"

	WindowRegular   = "SmoothstepRegular"
	WindowUnregular = "SmoothstepUnregular"

	PitchFixed = "Fixed"
	PitchSteps = "Steps"
)

// Config is the whole configuration file.
type Config struct {
	Synth  Synth   `json:"SynthConfiguration" yaml:"SynthConfiguration"`
	Tracks []Track `json:"Tracks" yaml:"Tracks"`
}

// Synth holds the engine wide settings.
type Synth struct {
	BeatLengthMs       float64 `json:"beat_length_ms" yaml:"beat_length_ms"`
	EngineSamplingRate int     `json:"engine_sampling_rate" yaml:"engine_sampling_rate"`
	OutputDirectory    string  `json:"output_directory" yaml:"output_directory"`
	OutputSamplingRate int     `json:"output_sampling_rate" yaml:"output_sampling_rate"`
	OutputBitDepth     int     `json:"output_bit_depth" yaml:"output_bit_depth"`
	Resampler          string  `json:"resampler,omitempty" yaml:"resampler,omitempty"`
}

// BeatLength is the beat duration in samples at the engine rate.
func (s Synth) BeatLength() int {
	return int(math.Round(float64(s.EngineSamplingRate) * s.BeatLengthMs / 1000))
}

// MsToSamples converts a duration at the engine rate, rounding to nearest.
func (s Synth) MsToSamples(ms float64) int {
	return int(math.Round(ms / 1000 * float64(s.EngineSamplingRate)))
}

func (s Synth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("beat_length_ms", s.BeatLengthMs),
		slog.Int("engine_rate", s.EngineSamplingRate),
		slog.Int("output_rate", s.OutputSamplingRate),
		slog.Int("bit_depth", s.OutputBitDepth),
		slog.String("output_directory", s.OutputDirectory),
	)
}

// Track is one rendered output file.
type Track struct {
	Properties TrackProperties  `json:"track_properties" yaml:"track_properties"`
	Grains     GrainsProperties `json:"grains_properties" yaml:"grains_properties"`
	Beats      []Beat           `json:"beat_sequence" yaml:"beat_sequence"`
}

type TrackProperties struct {
	Name               string  `json:"track_name" yaml:"track_name"`
	NormalizationLevel float64 `json:"track_normalization_level" yaml:"track_normalization_level"`
	Panorama           float64 `json:"track_panorama" yaml:"track_panorama"`
	// Seed fixes the random sources of the track when set.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

type GrainsProperties struct {
	SamplePath            string         `json:"sample_file_path" yaml:"sample_file_path"`
	Count                 int            `json:"grains_count" yaml:"grains_count"`
	Length                GrainsLength   `json:"grains_length_ms" yaml:"grains_length_ms"`
	Window                WindowFunction `json:"window_function" yaml:"window_function"`
	LoudnessNormalization bool           `json:"grains_laudness_normalization" yaml:"grains_laudness_normalization"`
	Pitch                 GrainsPitch    `json:"grains_pitch" yaml:"grains_pitch"`
}

// GrainsLength is either Fixed{Equal} or Range{From, To}, in milliseconds.
type GrainsLength struct {
	Type  string  `json:"type" yaml:"type"`
	Equal float64 `json:"equal,omitempty" yaml:"equal,omitempty"`
	From  float64 `json:"from,omitempty" yaml:"from,omitempty"`
	To    float64 `json:"to,omitempty" yaml:"to,omitempty"`
}

// Shortest is the smallest grain length the setting can produce.
func (g GrainsLength) Shortest() float64 {
	if g.Type == LengthRange {
		return g.From
	}
	return g.Equal
}

// Longest is the largest grain length the setting can produce.
func (g GrainsLength) Longest() float64 {
	if g.Type == LengthRange {
		return g.To
	}
	return g.Equal
}

// WindowFunction is SmoothstepRegular{Slope} or
// SmoothstepUnregular{SlopeAttack, SlopeRelease}, in milliseconds.
type WindowFunction struct {
	Type         string  `json:"type" yaml:"type"`
	Slope        float64 `json:"slope,omitempty" yaml:"slope,omitempty"`
	SlopeAttack  float64 `json:"slope_attack,omitempty" yaml:"slope_attack,omitempty"`
	SlopeRelease float64 `json:"slope_release,omitempty" yaml:"slope_release,omitempty"`
}

// Slopes returns the attack and release lengths.
func (w WindowFunction) Slopes() (attack, release float64) {
	if w.Type == WindowUnregular {
		return w.SlopeAttack, w.SlopeRelease
	}
	return w.Slope, w.Slope
}

// GrainsPitch is Fixed or Steps{Steps}.
type GrainsPitch struct {
	Type  string      `json:"type" yaml:"type"`
	Steps []PitchStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// PitchStep plays Fraction percent of the grains at Pitch times the
// recorded speed.
type PitchStep struct {
	Pitch    float64 `json:"pitch" yaml:"pitch"`
	Fraction float64 `json:"fraction" yaml:"fraction"`
}

// Beat describes the rhythm of one beat of a track.
type Beat struct {
	Subdivisions              int     `json:"subdivisions" yaml:"subdivisions"`
	CoveragePercentage        float64 `json:"coverage_percentage" yaml:"coverage_percentage"`
	HumanizationPercents      float64 `json:"humanization_percents" yaml:"humanization_percents"`
	VolumeDeviationPercents   float64 `json:"volume_deviation_percents" yaml:"volume_deviation_percents"`
	PanoramaDeviationPercents float64 `json:"panorama_deviation_percents" yaml:"panorama_deviation_percents"`
}
