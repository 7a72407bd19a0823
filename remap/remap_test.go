// SPDX-License-Identifier: EPL-2.0

package remap

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/ik5/soundgraph/audio"
	"github.com/ik5/soundgraph/internal/audiotest"
)

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

// canonical plays the given interleaved stereo samples without any
// resampling or channel conversion in between.
func canonical(samples ...float32) *audiotest.MockSource {
	return audiotest.NewSequenceSource(audio.DefaultSampleRate, 2, samples...)
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestStream_LinearMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{name: "midpoint", input: 0.5, want: 5},
		{name: "lower bound", input: 0, want: 0},
		{name: "upper bound", input: 1, want: 10},
		{name: "above range clamps", input: 1.5, want: 10},
		{name: "below range clamps", input: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewFromBounds(canonical(tt.input, tt.input), 0, 1, 0, 10, quiet)
			for ch := range 2 {
				if got := s.Next(); !near(got, tt.want) {
					t.Errorf("channel %d: Next() = %v, want %v", ch, got, tt.want)
				}
			}
		})
	}
}

func TestStream_IdentityMapping(t *testing.T) {
	t.Parallel()

	in := []float32{-1, -0.5, -0.25, 0, 0.125, 0.5, 0.99, 1}
	s := New(canonical(in...), Range{-1, 1}, Range{-1, 1}, quiet)

	for i, want := range in {
		if got := s.Next(); !near(got, want) {
			t.Errorf("sample %d: Next() = %v, want %v", i, got, want)
		}
	}
}

func TestStream_InvertedBoundsAreNormalized(t *testing.T) {
	t.Parallel()

	in := []float32{-0.5, 0, 0.25, 0.5, 0.75, 1, 2, 3, 4, 5, 6, -3}

	tests := []struct {
		name       string
		start, end Range
	}{
		{name: "start inverted", start: Range{5, 1}, end: Range{-1, 1}},
		{name: "end inverted", start: Range{1, 5}, end: Range{1, -1}},
		{name: "both inverted", start: Range{5, 1}, end: Range{1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref := New(canonical(in...), Range{1, 5}, Range{-1, 1}, quiet)
			got := New(canonical(in...), tt.start, tt.end, quiet)

			if got.Start() != ref.Start() || got.End() != ref.End() {
				t.Fatalf("ranges = %v %v, want %v %v", got.Start(), got.End(), ref.Start(), ref.End())
			}

			for i := range len(in) + 4 {
				if a, b := got.Next(), ref.Next(); a != b {
					t.Errorf("sample %d = %v, want %v", i, a, b)
				}
			}
		})
	}
}

func TestStream_ExhaustionYieldsMappedZero(t *testing.T) {
	t.Parallel()

	// 0 maps to 5 on [-1,1] -> [0,10]
	s := NewFromBounds(canonical(1, 1), -1, 1, 0, 10, quiet)

	if got := s.Next(); !near(got, 10) {
		t.Fatalf("first sample = %v, want 10", got)
	}
	if got := s.Next(); !near(got, 10) {
		t.Fatalf("second sample = %v, want 10", got)
	}

	for i := range 10000 {
		if got := s.Next(); !near(got, 5) {
			t.Fatalf("sample %d after exhaustion = %v, want 5", i, got)
		}
	}

	if !s.Exhausted() {
		t.Error("Exhausted() = false after the input ran out")
	}
}

func TestStream_ReadSamplesNeverEOF(t *testing.T) {
	t.Parallel()

	s := NewFromBounds(canonical(0.5, 0.5), 0, 1, 0, 10, quiet)
	buf := make([]float32, 4096)

	for range 3 {
		n, err := s.ReadSamples(buf)
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n != len(buf) {
			t.Fatalf("ReadSamples() n = %d, want %d", n, len(buf))
		}
	}
}

func TestStream_DegenerateRange(t *testing.T) {
	t.Parallel()

	s := NewFromBounds(canonical(2, 2, 7, -7), 2, 2, 0, 10, quiet)

	for i := range 6 {
		got := s.Next()
		if !math.IsNaN(float64(got)) && !math.IsInf(float64(got), 0) {
			t.Errorf("sample %d = %v, want a non-finite value", i, got)
		}
	}
}

func TestStream_Metadata(t *testing.T) {
	t.Parallel()

	s := New(audiotest.NewSilentSource(8000, 1, 10), Range{0, 1}, Range{0, 1}, quiet)

	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if s.SampleRate() != audio.DefaultSampleRate {
		t.Errorf("SampleRate() = %d, want %d", s.SampleRate(), audio.DefaultSampleRate)
	}
	if _, ok := s.FrameLen(); ok {
		t.Error("FrameLen() reported a known length")
	}
	if _, ok := s.TotalDuration(); ok {
		t.Error("TotalDuration() reported a known duration")
	}
}

func TestStream_MonoInputIsDuplicated(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSequenceSource(audio.DefaultSampleRate, 1, 0.25, 0.75)
	s := New(src, Range{0, 1}, Range{0, 100}, quiet)

	want := []float32{25, 25, 75, 75}
	for i, w := range want {
		if got := s.Next(); !near(got, w) {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestStream_ResampledInputKeepsLevel(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 8000, 0.5)
	s := New(src, Range{0, 1}, Range{0, 10}, quiet)

	// one second of 8 kHz becomes one second at the canonical rate
	frames := audio.DefaultSampleRate - 100
	for i := range frames * 2 {
		if got := s.Next(); !near(got, 5) {
			t.Fatalf("sample %d = %v, want 5", i, got)
		}
	}
}

func TestStream_SourceErrorBecomesSilence(t *testing.T) {
	t.Parallel()

	src := &audiotest.FailingSource{
		Rate:  audio.DefaultSampleRate,
		Chans: 2,
		Good:  1,
		Err:   errors.New("disk on fire"),
	}
	s := NewFromBounds(src, -1, 1, 0, 1, quiet)

	for i := range 10 {
		if got := s.Next(); !near(got, 0.5) {
			t.Fatalf("sample %d = %v, want 0.5", i, got)
		}
	}
	if !s.Exhausted() {
		t.Error("Exhausted() = false after a source error")
	}
}

// stallingSource returns nothing and no error for its first stalls
// reads, then hands out samples in one final read.
type stallingSource struct {
	stalls  int
	samples []float32
}

func (s *stallingSource) SampleRate() int { return audio.DefaultSampleRate }
func (s *stallingSource) Channels() int   { return 2 }
func (s *stallingSource) Close() error    { return nil }

func (s *stallingSource) ReadSamples(dst []float32) (int, error) {
	if s.stalls > 0 {
		s.stalls--
		return 0, nil
	}

	n := copy(dst, s.samples)
	s.samples = s.samples[n:]
	if len(s.samples) == 0 {
		return n, io.EOF
	}

	return n, nil
}

func TestStream_EmptyReadIsNotExhaustion(t *testing.T) {
	t.Parallel()

	src := &stallingSource{stalls: 1, samples: []float32{0.5, 0.5, 0.5, 0.5}}
	s := New(src, Range{0, 1}, Range{0, 10}, quiet)

	for i := range 4 {
		if got := s.Next(); !near(got, 5) {
			t.Fatalf("sample %d = %v, want 5", i, got)
		}
	}
	if got := s.Next(); !near(got, 0) {
		t.Errorf("after input = %v, want 0", got)
	}
	if !s.Exhausted() {
		t.Error("Exhausted() = false after io.EOF")
	}
}

func TestStream_EndlessEmptyReadsExhaust(t *testing.T) {
	t.Parallel()

	src := &stallingSource{stalls: math.MaxInt}
	s := New(src, Range{0, 1}, Range{0, 10}, quiet)

	if got := s.Next(); !near(got, 0) {
		t.Errorf("Next() = %v, want 0", got)
	}
	if !s.Exhausted() {
		t.Error("Exhausted() = false after a stalled source")
	}
}

func TestStream_Close(t *testing.T) {
	t.Parallel()

	src := canonical(0, 0)
	s := New(src, Range{0, 1}, Range{0, 1}, quiet)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed {
		t.Error("Close() did not close the wrapped source")
	}
}

func TestStream_Take(t *testing.T) {
	t.Parallel()

	s := NewFromBounds(canonical(0.5, 0.5), 0, 1, 0, 10, quiet)

	out, err := audio.ReadAll(audio.Take(s, 100))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != 100 {
		t.Fatalf("len = %d, want 100", len(out))
	}
	if !near(out[0], 5) || !near(out[99], 0) {
		t.Errorf("out[0] = %v, out[99] = %v, want 5 and 0", out[0], out[99])
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	r := Range{Min: 3, Max: -1}.Normalize()
	if r != (Range{Min: -1, Max: 3}) {
		t.Errorf("Normalize() = %v", r)
	}
	if r.Width() != 4 {
		t.Errorf("Width() = %v, want 4", r.Width())
	}
	if r.Clamp(10) != 3 || r.Clamp(-10) != -1 || r.Clamp(0) != 0 {
		t.Error("Clamp() does not limit to the range")
	}
}

func BenchmarkStream_ReadSamples(b *testing.B) {
	src := audiotest.NewSineSource(audio.DefaultSampleRate, 2, math.MaxInt32, 440)
	s := NewFromBounds(src, -1, 1, 0, 1, quiet)
	buf := make([]float32, 4096)

	b.ResetTimer()
	for b.Loop() {
		_, _ = s.ReadSamples(buf)
	}
}
