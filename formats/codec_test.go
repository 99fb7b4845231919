// SPDX-License-Identifier: EPL-2.0

package formats_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/formats"
	"github.com/ik5/grainsynth/internal/audiotest"
)

func TestCodec_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		layout    audio.Layout
		depth     int
		tolerance float64
	}{
		{"mono16", audio.Mono, 16, 1.0 / 32767},
		{"stereo16", audio.Stereo, 16, 1.0 / 32767},
		{"stereo32", audio.Stereo, 32, 1e-7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			codec := formats.NewCodec()
			path := filepath.Join(t.TempDir(), tt.name+".wav")
			in := audiotest.SineBuffer(tt.layout, 2400, 48000, 220, 0.7)

			if err := codec.Save(path, in, 48000, tt.depth); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			out, rate, err := codec.Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if rate != 48000 {
				t.Errorf("rate = %d, want 48000", rate)
			}
			if out.Layout() != tt.layout || out.Len() != in.Len() {
				t.Fatalf("got %s/%d, want %s/%d", out.Layout(), out.Len(), tt.layout, in.Len())
			}

			for c := range in.Channels() {
				want, _ := in.Channel(c)
				got, _ := out.Channel(c)
				for i := range want {
					if math.Abs(got[i]-want[i]) > tt.tolerance {
						t.Fatalf("channel %d sample %d = %v, want %v", c, i, got[i], want[i])
					}
				}
			}
		})
	}
}

func TestCodec_LoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a wave file at all"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing", filepath.Join(dir, "missing.wav"), formats.ErrNotFound},
		{"unknown extension", filepath.Join(dir, "sample.flac"), formats.ErrUnsupportedFormat},
		{"no extension", filepath.Join(dir, "sample"), formats.ErrUnsupportedFormat},
		{"garbage", garbage, formats.ErrDecode},
	}

	codec := formats.NewCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := codec.Load(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCodec_SaveErrors(t *testing.T) {
	t.Parallel()

	codec := formats.NewCodec()
	dir := t.TempDir()
	buf := audio.NewBuffer(audio.Stereo, 16)

	path := filepath.Join(dir, "bad-depth.wav")
	err := codec.Save(path, buf, 48000, 8)
	if !errors.Is(err, formats.ErrUnsupportedFormat) {
		t.Errorf("Save(depth 8) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("failed save left %s behind", path)
	}

	err = codec.Save(filepath.Join(dir, "no", "such", "dir.wav"), buf, 48000, 16)
	if !errors.Is(err, formats.ErrCreate) {
		t.Errorf("Save(missing dir) error = %v, want ErrCreate", err)
	}
}

func TestCodec_Formats(t *testing.T) {
	t.Parallel()

	got := formats.NewCodec().Formats()
	for _, want := range []string{"aif", "aiff", "mp3", "ogg", "wav"} {
		if !slices.Contains(got, want) {
			t.Errorf("Formats() = %v, missing %q", got, want)
		}
	}
}

func TestCodec_ExtensionCaseInsensitive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := audiotest.WriteWAV(t, dir, "UPPER.WAV", audiotest.ConstantBuffer(audio.Mono, 100, 0.5), 48000, 16)

	buf, _, err := formats.NewCodec().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if buf.Len() != 100 {
		t.Errorf("Len() = %d, want 100", buf.Len())
	}
}
