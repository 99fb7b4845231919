// SPDX-License-Identifier: EPL-2.0

// Package sampler builds and serves the grain bank of a track.
//
// Prepare loads a source sample, resamples it once per pitch variant to the
// engine rate, cuts windowed grains at random positions and optionally peak
// normalizes them. Dispense then hands grains out from the older half of the
// bank and recycles each one to the back:
//
//	s := sampler.New(sampler.WithSeed(42))
//	if err := s.Prepare(cfg.Synth, track.Grains); err != nil {
//		return err
//	}
//	grain, err := s.Dispense()
//
// A Sampler is not safe for concurrent use. Give each track its own.
package sampler
