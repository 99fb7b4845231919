// SPDX-License-Identifier: EPL-2.0

// Package config loads and validates render configurations.
//
// A configuration has a SynthConfiguration block with engine wide settings
// and a list of Tracks, each describing one output file: the sample to cut
// grains from, how those grains are shaped and pitched, and the rhythm they
// are triggered on. JSON and YAML files share the same keys:
//
//	SynthConfiguration:
//	  beat_length_ms: 500
//	  engine_sampling_rate: 48000
//	  output_directory: out
//	  output_sampling_rate: 48000
//	  output_bit_depth: 16
//	Tracks:
//	  - track_properties: {track_name: pad, track_normalization_level: 1, track_panorama: 0}
//	    grains_properties:
//	      sample_file_path: voice.wav
//	      grains_count: 32
//	      grains_length_ms: {type: Fixed, equal: 80}
//	      window_function: {type: SmoothstepRegular, slope: 10}
//	      grains_laudness_normalization: true
//	      grains_pitch: {type: Steps, steps: [[1, 50], [2, 50]]}
//	    beat_sequence:
//	      - {subdivisions: 4, coverage_percentage: 100, humanization_percents: 5,
//	         volume_deviation_percents: 10, panorama_deviation_percents: 20}
//
// Validate never stops at the first problem. It returns ValidationErrors
// holding one *FieldError per violation, each of which matches
// ErrInvalidConfig with errors.Is.
package config
