// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/soundgraph/internal/audiotest"
)

func TestMonoMixer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		in       []float32
		want     []float32
	}{
		{"mono", 1, []float32{0.5, -0.5}, []float32{0.5, -0.5}},
		{"stereo", 2, []float32{0.4, 0.6, -1, 1}, []float32{0.5, 0}},
		{"three", 3, []float32{0.3, 0.6, 0.9}, []float32{0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewMonoMixer(audiotest.NewSequenceSource(8000, tt.channels, tt.in...))
			if m.Channels() != 1 || m.SampleRate() != 8000 {
				t.Fatalf("format = %d Hz / %d ch", m.SampleRate(), m.Channels())
			}

			got := drain(t, m, 8)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-6 {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))
	if n, err := m.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestMonoMixer_LargeRead(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewConstantSource(44100, 2, 10000, 0.25))
	buf := make([]float32, 10000)

	n, err := m.ReadSamples(buf)
	if n != 10000 || (err != nil && err != io.EOF) {
		t.Fatalf("ReadSamples() = %d, %v", n, err)
	}
	if buf[0] != 0.25 || buf[9999] != 0.25 {
		t.Errorf("edges = %v, %v; want 0.25", buf[0], buf[9999])
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed {
		t.Error("Close() did not close the wrapped source")
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := audiotest.NewSineSource(44100, 2, 1<<20, 440.0)
	m := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := m.ReadSamples(buf); err != nil {
			src.Reset()
		}
	}
}
