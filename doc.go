// SPDX-License-Identifier: EPL-2.0

// Package grainsynth renders music by granular synthesis.
//
// Short windowed fragments (grains) are cut from a source recording,
// optionally pitch shifted, and retriggered at randomized rhythmic positions
// to build stereo tracks. A configuration file (JSON, or YAML for .yml and
// .yaml files) describes the engine and every track:
//
//	{
//	  "SynthConfiguration": {
//	    "beat_length_ms": 500,
//	    "engine_sampling_rate": 48000,
//	    "output_directory": "out",
//	    "output_sampling_rate": 48000,
//	    "output_bit_depth": 16
//	  },
//	  "Tracks": [ ... ]
//	}
//
// # Quick Start
//
// Run loads, renders and saves in one call, writing <track_name>.wav for
// every track:
//
//	eng, err := grainsynth.Run(ctx, "tracks.json", synth.WithSeed(42))
//
// # Packages
//
// The work is split across subpackages:
//   - config parses and validates configuration files
//   - sampler builds and dispenses the grain bank of a track
//   - sequencer places grain triggers on the beat grid
//   - synth mixes tracks and saves them
//   - audio holds the sample buffer, mixing and resampling
//   - formats loads wav, mp3, ogg and aiff samples and writes wav files
//
// Validation reports every problem at once as config.ValidationErrors. Any
// later failure stops the run and names the track it happened in.
package grainsynth
