// SPDX-License-Identifier: EPL-2.0

// Package synth is the render engine. It drives a sampler and a sequencer
// per track, mixes the dispensed grains into a stereo canvas, normalizes it,
// converts it to the output rate and saves it.
//
// Rendering and saving are separate phases. Render keeps everything in
// memory and touches no file, so a failing track leaves the disk untouched.
// Save writes tracks one by one and may leave earlier files behind when a
// later one fails.
//
//	eng, err := synth.Configure("tracks.json", synth.WithJobs(4))
//	if err != nil {
//		return err
//	}
//	if err := eng.Render(ctx); err != nil {
//		return err
//	}
//	return eng.Save(ctx)
package synth
