// SPDX-License-Identifier: EPL-2.0

package grainsynth_test

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/ik5/grainsynth"
	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/formats"
	"github.com/ik5/grainsynth/synth"
)

const exampleConfig = `{
  "SynthConfiguration": {
    "beat_length_ms": 500,
    "engine_sampling_rate": 48000,
    "output_directory": %q,
    "output_sampling_rate": 48000,
    "output_bit_depth": 16
  },
  "Tracks": [{
    "track_properties": {"track_name": "hum", "track_normalization_level": 1, "track_panorama": 0},
    "grains_properties": {
      "sample_file_path": %q,
      "grains_count": 4,
      "grains_length_ms": {"type": "Fixed", "equal": 50},
      "window_function": {"type": "SmoothstepRegular", "slope": 10},
      "grains_laudness_normalization": true,
      "grains_pitch": {"type": "Fixed"}
    },
    "beat_sequence": [
      {"subdivisions": 4, "coverage_percentage": 100, "humanization_percents": 0,
       "volume_deviation_percents": 0, "panorama_deviation_percents": 0}
    ]
  }]
}`

func Example_run() {
	dir, err := os.MkdirTemp("", "grainsynth")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	// a 200 ms, 110 Hz tone to cut grains from
	tone := make([]float64, 9600)
	for i := range tone {
		tone[i] = 0.5 * math.Sin(2*math.Pi*110*float64(i)/48000)
	}
	sample := filepath.Join(dir, "hum.wav")
	if err := formats.NewCodec().Save(sample, audio.NewMono(tone), 48000, 16); err != nil {
		fmt.Println(err)
		return
	}

	path := filepath.Join(dir, "synth.json")
	cfg := fmt.Sprintf(exampleConfig, filepath.Join(dir, "out"), sample)
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		fmt.Println(err)
		return
	}

	eng, err := grainsynth.Run(context.Background(), path, synth.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, t := range eng.Tracks() {
		fmt.Printf("%s: %d events, %d samples\n", t.Name, len(t.Events), t.Output.Len())
	}
	// Output: hum: 4 events, 72000 samples
}
