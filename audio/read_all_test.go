// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestReadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    *mockSource
		frames int
	}{
		{"mono", newRampSource(8000, 1, 1000), 1000},
		{"stereo", newRampSource(44100, 2, 5000), 5000},
		{"short reads", func() *mockSource { s := newRampSource(8000, 2, 777); s.chunk = 13; return s }(), 777},
		{"eof with data", func() *mockSource { s := newRampSource(8000, 2, 300); s.eofWithData = true; return s }(), 300},
		{"odd buffer size", func() *mockSource { s := newRampSource(8000, 2, 50); s.bufSize = 7; return s }(), 50},
		{"zero buffer size", func() *mockSource { s := newRampSource(8000, 1, 50); s.bufSize = 0; return s }(), 50},
		{"empty", newRampSource(8000, 2, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, rate, err := ReadAll(tt.src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if rate != tt.src.sampleRate {
				t.Errorf("rate = %d, want %d", rate, tt.src.sampleRate)
			}
			if buf.Len() != tt.frames {
				t.Fatalf("Len() = %d, want %d", buf.Len(), tt.frames)
			}
			if buf.Channels() != tt.src.channels {
				t.Errorf("Channels() = %d, want %d", buf.Channels(), tt.src.channels)
			}

			for c := range buf.Channels() {
				ch, _ := buf.Channel(c)
				for i, v := range ch {
					want := float64(i)
					if c == 1 {
						want = -want
					}
					if v != want {
						t.Fatalf("channel %d sample %d = %v, want %v", c, i, v, want)
					}
				}
			}
		})
	}
}

func TestReadAll_Errors(t *testing.T) {
	t.Parallel()

	failing := newRampSource(8000, 2, 100)
	failing.err = errMockRead
	if _, _, err := ReadAll(failing); !errors.Is(err, errMockRead) {
		t.Errorf("ReadAll(failing) error = %v, want errMockRead", err)
	}

	if _, _, err := ReadAll(newRampSource(8000, 4, 100)); !errors.Is(err, ErrUnsupportedLayout) {
		t.Errorf("ReadAll(4 channels) error = %v, want ErrUnsupportedLayout", err)
	}
}
