// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// Limited stops a source after a fixed number of interleaved samples.
// It is the way to bound streams that never end on their own.
type Limited struct {
	src  Source
	left int
	n    int
}

// Take returns at most n samples of src. n should be a multiple of
// the channel count.
func Take(src Source, n int) *Limited {
	return &Limited{src: src, left: n, n: n}
}

func (l *Limited) SampleRate() int { return l.src.SampleRate() }
func (l *Limited) Channels() int   { return l.src.Channels() }
func (l *Limited) Close() error    { return l.src.Close() }

func (l *Limited) ReadSamples(dst []float32) (int, error) {
	if l.left <= 0 {
		return 0, io.EOF
	}

	if len(dst) > l.left {
		dst = dst[:l.left]
	}

	n, err := l.src.ReadSamples(dst)
	l.left -= n

	if err == nil && l.left <= 0 {
		err = io.EOF
	}

	return n, err
}

func (l *Limited) FrameLen() (int, bool) {
	return l.n / l.src.Channels(), true
}

func (l *Limited) TotalDuration() (time.Duration, bool) {
	frames, _ := l.FrameLen()
	return time.Duration(frames) * time.Second / time.Duration(l.src.SampleRate()), true
}

// ReadAll pulls every remaining sample of a finite source.
func ReadAll(src Source) ([]float32, error) {
	buf := make([]float32, 4096-4096%src.Channels())
	var out []float32
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}

		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= MaxEmptyReads {
			return out, io.ErrNoProgress
		}
	}
}
