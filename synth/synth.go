// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/config"
	"github.com/ik5/grainsynth/formats"
	"github.com/ik5/grainsynth/sampler"
	"github.com/ik5/grainsynth/sequencer"
	"golang.org/x/sync/errgroup"
)

// Random stream selectors, so the sampler and sequencer of a track never
// share a sequence.
const (
	samplerStream   = 1
	sequencerStream = 2
)

// Codec loads source samples and writes rendered tracks.
type Codec interface {
	Load(path string) (*audio.SampleBuffer, int, error)
	Save(path string, buf *audio.SampleBuffer, sampleRate, bitDepth int) error
}

// Track is the rendered state of one configured track.
type Track struct {
	Name   string
	Events []sequencer.Event

	// Canvas is the mixed and normalized track at the engine rate.
	Canvas *audio.SampleBuffer

	// Output is Canvas at the output rate. Both are the same buffer when the
	// rates match.
	Output *audio.SampleBuffer
}

// Engine renders every track of a configuration and saves them as WAV files.
type Engine struct {
	cfg       *config.Config
	log       *slog.Logger
	jobs      int
	seed      *uint64
	codec     Codec
	resampler audio.Resampler

	tracks []Track
}

// Configure loads and validates the configuration file at path.
func Configure(path string, opts ...Option) (*Engine, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return New(cfg, opts...)
}

// New validates cfg and returns an engine ready to render it.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg, jobs: 1}
	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.codec == nil {
		e.codec = formats.NewCodec()
	}
	if e.resampler == nil {
		r, err := audio.NewResampler(cfg.Synth.Resampler)
		if err != nil {
			return nil, err
		}
		e.resampler = r
	}

	e.log.Info("synth configured", "synth", cfg.Synth, "tracks", len(cfg.Tracks))
	for i, t := range cfg.Tracks {
		e.log.Info("track", "n", i+1, "name", t.Properties.Name, "sample", t.Grains.SamplePath)
	}

	return e, nil
}

// Config returns the configuration the engine renders.
func (e *Engine) Config() *config.Config { return e.cfg }

// Render mixes every track in memory. Nothing is kept if any track fails,
// and a previous render is discarded first.
func (e *Engine) Render(ctx context.Context) error {
	e.tracks = nil

	rendered := make([]Track, len(e.cfg.Tracks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)

	for i := range e.cfg.Tracks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			t, err := e.renderTrack(i)
			if err != nil {
				return fmt.Errorf("track %q: %w", e.cfg.Tracks[i].Properties.Name, err)
			}
			rendered[i] = t

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	e.tracks = rendered

	return nil
}

func (e *Engine) renderTrack(i int) (Track, error) {
	tc := e.cfg.Tracks[i]
	synth := e.cfg.Synth
	seed := e.trackSeed(i)

	smp := sampler.New(
		sampler.WithRand(rand.New(rand.NewPCG(seed, samplerStream))),
		sampler.WithResampler(e.resampler),
		sampler.WithLoader(e.codec),
	)
	if err := smp.Prepare(synth, tc.Grains); err != nil {
		return Track{}, err
	}

	seq := sequencer.New(sequencer.WithRand(rand.New(rand.NewPCG(seed, sequencerStream))))
	events := seq.Generate(tc.Beats, synth)

	canvas := audio.NewBuffer(audio.Stereo, synth.BeatLength()*(len(tc.Beats)+2))
	trackLeft, trackRight := audio.PanGains(tc.Properties.Panorama)

	for _, ev := range events {
		grain, err := smp.Dispense()
		if err != nil {
			return Track{}, err
		}

		left, right := audio.PanGains(ev.Pan)
		if err := audio.MixInto(canvas, grain, ev.Start, ev.Volume*left*trackLeft, ev.Volume*right*trackRight); err != nil {
			return Track{}, err
		}
	}

	if err := canvas.Normalize(tc.Properties.NormalizationLevel); err != nil {
		return Track{}, err
	}

	out := canvas
	if synth.OutputSamplingRate != synth.EngineSamplingRate {
		var err error
		out, err = audio.ConvertRate(e.resampler, canvas, float64(synth.EngineSamplingRate), float64(synth.OutputSamplingRate))
		if err != nil {
			return Track{}, fmt.Errorf("resampling to %d Hz: %w", synth.OutputSamplingRate, err)
		}
	}

	e.log.Debug("track rendered",
		"name", tc.Properties.Name,
		"grains", smp.Len(),
		"events", len(events),
		"samples", out.Len(),
	)

	return Track{Name: tc.Properties.Name, Canvas: canvas, Output: out, Events: events}, nil
}

// trackSeed picks the configured seed of track i, else the engine seed
// offset by i, else a random one.
func (e *Engine) trackSeed(i int) uint64 {
	switch {
	case e.cfg.Tracks[i].Properties.Seed != nil:
		return *e.cfg.Tracks[i].Properties.Seed
	case e.seed != nil:
		return *e.seed + uint64(i)
	default:
		return rand.Uint64()
	}
}

// Tracks returns the rendered tracks in configuration order, or nil before
// a successful Render.
func (e *Engine) Tracks() []Track {
	return append([]Track(nil), e.tracks...)
}

// Save writes every rendered track to <output_directory>/<name>.wav,
// creating the directory if needed. Saving stops at the first failure and
// files written before it are left in place.
func (e *Engine) Save(ctx context.Context) error {
	if e.tracks == nil {
		return ErrNotRendered
	}

	synth := e.cfg.Synth
	if err := os.MkdirAll(synth.OutputDirectory, 0o755); err != nil {
		return fmt.Errorf("%w: %w", formats.ErrCreate, err)
	}

	for _, t := range e.tracks {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(synth.OutputDirectory, t.Name+".wav")
		if err := e.codec.Save(path, t.Output, synth.OutputSamplingRate, synth.OutputBitDepth); err != nil {
			return fmt.Errorf("track %q: %w", t.Name, err)
		}

		e.log.Info("track saved", "name", t.Name, "path", path)
	}

	return nil
}
