// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Sequence plays sources one after another. All of them share one
// sample rate and channel count.
type Sequence struct {
	srcs []Source
	cur  int
}

// Concat joins srcs end to end.
func Concat(srcs ...Source) (*Sequence, error) {
	if len(srcs) == 0 {
		return nil, fmt.Errorf("concat: no sources: %w", ErrInvalidChannels)
	}

	rate, channels := srcs[0].SampleRate(), srcs[0].Channels()
	for i, s := range srcs[1:] {
		if s.SampleRate() != rate {
			return nil, fmt.Errorf("source %d at %d Hz, want %d: %w", i+1, s.SampleRate(), rate, ErrInvalidSampleRate)
		}
		if s.Channels() != channels {
			return nil, fmt.Errorf("source %d has %d channels, want %d: %w", i+1, s.Channels(), channels, ErrInvalidChannels)
		}
	}

	return &Sequence{srcs: srcs}, nil
}

func (s *Sequence) SampleRate() int { return s.srcs[0].SampleRate() }
func (s *Sequence) Channels() int   { return s.srcs[0].Channels() }

// Close closes every source and returns the first error.
func (s *Sequence) Close() error {
	var first error
	for _, src := range s.srcs {
		if err := src.Close(); err != nil && first == nil {
			first = fmt.Errorf("%w", err)
		}
	}

	return first
}

func (s *Sequence) ReadSamples(dst []float32) (int, error) {
	for s.cur < len(s.srcs) {
		n, err := s.srcs[s.cur].ReadSamples(dst)
		if err == io.EOF {
			s.cur++
			if n == 0 {
				continue
			}
			if s.cur < len(s.srcs) {
				err = nil
			}
		}

		return n, err
	}

	return 0, io.EOF
}
