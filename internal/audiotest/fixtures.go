// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/grainsynth/audio"
	"github.com/ik5/grainsynth/formats/wav"
)

// SineBuffer returns size samples of a sine at freq Hz and amplitude amp.
// Stereo buffers get the right channel in opposite phase.
func SineBuffer(layout audio.Layout, size, sampleRate int, freq, amp float64) *audio.SampleBuffer {
	buf := audio.NewBuffer(layout, size)
	for c := range buf.Channels() {
		ch, _ := buf.Channel(c)
		sign := 1.0
		if c == 1 {
			sign = -1
		}
		for i := range ch {
			ch[i] = sign * amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		}
	}

	return buf
}

// ConstantBuffer returns size samples equal to v in every channel.
func ConstantBuffer(layout audio.Layout, size int, v float64) *audio.SampleBuffer {
	buf := audio.NewBuffer(layout, size)
	for c := range buf.Channels() {
		ch, _ := buf.Channel(c)
		for i := range ch {
			ch[i] = v
		}
	}

	return buf
}

// WriteWAV encodes buf into dir/name and returns the full path.
func WriteWAV(tb testing.TB, dir, name string, buf *audio.SampleBuffer, sampleRate, bitDepth int) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if err := wav.Write(f, buf, sampleRate, bitDepth); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}

	return path
}

// MemFile is an in-memory io.ReadWriteSeeker, enough for encoders that patch
// their headers after writing the payload.
type MemFile struct {
	data []byte
	pos  int64
}

func (m *MemFile) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		m.data = append(m.data, make([]byte, end-int64(len(m.data)))...)
	}
	copy(m.data[m.pos:end], p)
	m.pos = end

	return len(p), nil
}

func (m *MemFile) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)

	return n, nil
}

func (m *MemFile) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = m.pos + offset
	case io.SeekEnd:
		next = int64(len(m.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if next < 0 {
		return 0, errors.New("negative position")
	}
	m.pos = next

	return next, nil
}

// Bytes returns the written content.
func (m *MemFile) Bytes() []byte { return m.data }
