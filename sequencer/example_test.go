// SPDX-License-Identifier: EPL-2.0

package sequencer_test

import (
	"fmt"

	"github.com/ik5/grainsynth/config"
	"github.com/ik5/grainsynth/sequencer"
)

func ExampleSequencer_Generate() {
	synth := config.Synth{BeatLengthMs: 500, EngineSamplingRate: 48000}
	beats := []config.Beat{{Subdivisions: 4, CoveragePercentage: 100}}

	for _, e := range sequencer.New(sequencer.WithSeed(1)).Generate(beats, synth) {
		fmt.Println(e.Start, e.Pan, e.Volume)
	}
	// Output:
	// 24000 0 1
	// 30000 0 1
	// 36000 0 1
	// 42000 0 1
}
