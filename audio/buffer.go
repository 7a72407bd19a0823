// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer is a fully decoded source held in memory.
// Clones share the sample slice, which is never written after
// construction, and keep their own read cursor.
type Buffer struct {
	sampleRate int
	channels   int
	samples    []float32
	pos        int
}

// NewBuffer wraps interleaved samples. The slice is owned by the Buffer
// from now on and must not be modified by the caller.
func NewBuffer(sampleRate, channels int, samples []float32) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	return &Buffer{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    samples,
	}, nil
}

// Realize drains src into a Buffer and closes it.
// src must be finite.
func Realize(src Source) (*Buffer, error) {
	defer src.Close()

	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	samples, err := ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("realizing source: %w", err)
	}

	// drop a trailing partial frame
	samples = samples[:len(samples)-len(samples)%channels]

	return NewBuffer(src.SampleRate(), channels, samples)
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return b.channels }
func (b *Buffer) Close() error    { return nil }

func (b *Buffer) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}

// Clone returns a Buffer over the same samples, rewound to the start.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		sampleRate: b.sampleRate,
		channels:   b.channels,
		samples:    b.samples,
	}
}

// Reset rewinds the read cursor.
func (b *Buffer) Reset() { b.pos = 0 }

// Len is the total number of interleaved samples.
func (b *Buffer) Len() int { return len(b.samples) }

func (b *Buffer) FrameLen() (int, bool) {
	return len(b.samples) / b.channels, true
}

func (b *Buffer) TotalDuration() (time.Duration, bool) {
	frames := len(b.samples) / b.channels
	return time.Duration(frames) * time.Second / time.Duration(b.sampleRate), true
}
