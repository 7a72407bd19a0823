// SPDX-License-Identifier: EPL-2.0

// Package remap linearly maps the amplitude of a stream from one range
// onto another.
//
// A Stream first normalizes its input to the canonical layout (two
// channels at audio.DefaultSampleRate), then for every sample p:
//
//	out = end.Min + ((end.Max-end.Min)/(start.Max-start.Min)) * (clamp(p, start) - start.Min)
//
// Input is clamped into the start range, so the output never leaves the
// end range. A Stream never ends: once its input is exhausted it keeps
// producing the mapping of 0. Consumers bound it themselves, for
// example with audio.Take.
package remap

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/ik5/soundgraph/audio"
	"github.com/ik5/soundgraph/utils"
)

// Range is a closed amplitude interval.
type Range struct {
	Min float32
	Max float32
}

// Normalize returns r with Min and Max swapped if they are inverted.
func (r Range) Normalize() Range {
	if r.Min > r.Max {
		return Range{Min: r.Max, Max: r.Min}
	}

	return r
}

// Width is Max - Min.
func (r Range) Width() float32 { return r.Max - r.Min }

// Clamp limits v to the range. r must be normalized.
func (r Range) Clamp(v float32) float32 {
	return utils.Clamp(v, r.Min, r.Max)
}

type Option func(*Stream)

// WithLogger reports degenerate ranges and source errors to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stream) {
		s.logger = logger
	}
}

// Stream is an endless, pull based range remapper.
// It is not safe for concurrent use.
type Stream struct {
	src   *audio.Uniform
	start Range
	end   Range
	slope float32

	buf       []float32
	off       int
	exhausted bool

	logger *slog.Logger
}

// New wraps src. Inverted ranges are normalized, so New(src, {5, 1}, e)
// behaves exactly like New(src, {1, 5}, e).
//
// A zero width start range is accepted as is: every sample clamps to
// that single point and maps to NaN.
func New(src audio.Source, start, end Range, opts ...Option) *Stream {
	s := &Stream{
		src:   audio.NewCanonical(src),
		start: start.Normalize(),
		end:   end.Normalize(),
		buf:   make([]float32, 0, 1024),
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.slope = s.end.Width() / s.start.Width()

	if s.start.Width() == 0 {
		s.logger.Warn("Zero width start range, samples will not be finite",
			"startMin", s.start.Min, "startMax", s.start.Max)
	}

	return s
}

// NewFromBounds is New with the four bounds given one by one.
func NewFromBounds(src audio.Source, startMin, startMax, endMin, endMax float32, opts ...Option) *Stream {
	return New(src, Range{Min: startMin, Max: startMax}, Range{Min: endMin, Max: endMax}, opts...)
}

// Start is the normalized source range.
func (s *Stream) Start() Range { return s.start }

// End is the normalized destination range.
func (s *Stream) End() Range { return s.end }

// Map applies the transform to a single value.
func (s *Stream) Map(p float32) float32 {
	return s.end.Min + s.slope*(s.start.Clamp(p)-s.start.Min)
}

// Next returns the next remapped sample.
func (s *Stream) Next() float32 {
	return s.Map(s.pull())
}

// pull returns the next normalized input sample, or 0 once the input
// has run dry.
func (s *Stream) pull() float32 {
	if s.off < len(s.buf) {
		p := s.buf[s.off]
		s.off++
		return p
	}

	if s.exhausted {
		return 0
	}

	s.fill()
	if s.off < len(s.buf) {
		p := s.buf[s.off]
		s.off++
		return p
	}

	return 0
}

func (s *Stream) fill() {
	s.buf = s.buf[:cap(s.buf)]
	s.off = 0

	for range audio.MaxEmptyReads {
		n, err := s.src.ReadSamples(s.buf[:cap(s.buf)])
		s.buf = s.buf[:n]

		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Error("Reading source failed, continuing with silence", "error", err)
			}
			s.exhausted = true
			return
		}

		if n > 0 {
			return
		}
	}

	s.logger.Warn("Source keeps returning no samples, treating it as exhausted",
		"reads", audio.MaxEmptyReads)
	s.exhausted = true
}

// Exhausted reports whether the input has run out. The stream itself
// keeps producing samples regardless.
func (s *Stream) Exhausted() bool {
	return s.exhausted && s.off >= len(s.buf)
}

func (s *Stream) SampleRate() int { return audio.DefaultSampleRate }
func (s *Stream) Channels() int   { return audio.CanonicalChannels }
func (s *Stream) Close() error    { return s.src.Close() }

// ReadSamples always fills dst completely and never returns io.EOF.
func (s *Stream) ReadSamples(dst []float32) (int, error) {
	for i := range dst {
		dst[i] = s.Next()
	}

	return len(dst), nil
}

// FrameLen is unknown: the stream has no end.
func (s *Stream) FrameLen() (int, bool) { return 0, false }

// TotalDuration is unknown: the stream has no end.
func (s *Stream) TotalDuration() (time.Duration, bool) { return 0, false }

var (
	_ audio.Source   = (*Stream)(nil)
	_ audio.Lengther = (*Stream)(nil)
)
