// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// fakeFrames simulates gomp3.Decoder. chunk limits bytes per Read to exercise
// odd-sized reads.
type fakeFrames struct {
	data  []byte
	off   int
	chunk int
	err   error
}

func newFakeFrames(samples []int16, chunk int) *fakeFrames {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)
	return &fakeFrames{data: buf.Bytes(), chunk: chunk}
}

func (f *fakeFrames) SampleRate() int { return 44100 }

func (f *fakeFrames) Read(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.off >= len(f.data) {
		return 0, io.EOF
	}
	end := min(len(f.data), f.off+len(p))
	if f.chunk > 0 {
		end = min(end, f.off+f.chunk)
	}
	n := copy(p, f.data[f.off:end])
	f.off += n
	return n, nil
}

func drain(t *testing.T, src *mp3Source, size int) []float32 {
	t.Helper()

	var out []float32
	dst := make([]float32, size)
	for range 1000 {
		n, err := src.ReadSamples(dst)
		out = append(out, dst[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not MP3 data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotMP3File) {
				t.Errorf("Decode() error = %v, want ErrNotMP3File", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &mp3Source{dec: newFakeFrames(nil, 0), sampleRate: 44100, raw: make([]byte, 64)}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 32 {
		t.Errorf("BufSize() = %d, want 32", src.BufSize())
	}
}

func TestSource_ReadSamples_Conversion(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, 32767, -32767, 16384, -16384, -32768}
	src := &mp3Source{dec: newFakeFrames(samples, 0), sampleRate: 44100}

	got := drain(t, src, 16)
	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}

	for i, s := range samples {
		want := float64(s) / math.MaxInt16
		if math.Abs(float64(got[i])-want) > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_OddChunks(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 101)
	for i := range samples {
		samples[i] = int16(i*300 - 15000)
	}

	for _, chunk := range []int{1, 3, 7, 33} {
		src := &mp3Source{dec: newFakeFrames(samples, chunk), sampleRate: 44100}

		got := drain(t, src, 10)
		if len(got) != len(samples) {
			t.Fatalf("chunk %d: read %d samples, want %d", chunk, len(got), len(samples))
		}
		for i, s := range samples {
			want := float32(float64(s) / math.MaxInt16)
			if got[i] != want {
				t.Fatalf("chunk %d: sample[%d] = %v, want %v", chunk, i, got[i], want)
			}
		}
	}
}

func TestSource_ReadSamples_EmptyDst(t *testing.T) {
	t.Parallel()

	src := &mp3Source{dec: newFakeFrames(make([]int16, 10), 0), sampleRate: 44100}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := &mp3Source{dec: &fakeFrames{err: io.ErrUnexpectedEOF}, sampleRate: 44100}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := &mp3Source{dec: newFakeFrames(nil, 0)}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 8192)
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := &mp3Source{dec: newFakeFrames(samples, 0), raw: make([]byte, 8192)}
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
