// SPDX-License-Identifier: EPL-2.0

package soundgraph

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/ik5/soundgraph/audio"
	"github.com/ik5/soundgraph/utils"
)

// ResampleToMono16 resamples src to targetRate, averages it down to one
// channel and collects it as 16-bit PCM until src ends.
//
// It returns the samples and the output rate. bufferSize is the chunk
// size of each read (e.g. 4096).
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	mono := audio.NewUniform(src, 1, targetRate)

	pcm16, err := collect16(mono, bufferSize, targetRate*2)
	if err != nil {
		return nil, targetRate, err
	}

	return pcm16, targetRate, nil
}

// RenderStereo16 normalizes src to DefaultSampleRate stereo and
// collects d worth of it as interleaved 16-bit PCM. A d of zero or less
// reads until src ends, so endless sources such as remap streams need a
// positive d.
func RenderStereo16(src audio.Source, d time.Duration, bufferSize int) ([]int16, error) {
	var s audio.Source = audio.NewCanonical(src)

	estimate := audio.DefaultSampleRate * audio.CanonicalChannels * 2
	if d > 0 {
		frames := int(d * audio.DefaultSampleRate / time.Second)
		estimate = frames * audio.CanonicalChannels
		s = audio.Take(s, estimate)
	}

	return collect16(s, bufferSize-bufferSize%audio.CanonicalChannels, estimate)
}

func collect16(src audio.Source, bufferSize, estimate int) ([]int16, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("buffer size %d: %w", bufferSize, audio.ErrInvalidDstSize)
	}

	pcm16 := make([]int16, 0, estimate)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			start := len(pcm16)
			pcm16 = slices.Grow(pcm16, n)[:start+n]
			utils.Float32ToInt16Slice(pcm16[start:], buf[:n])
		}

		if err == io.EOF {
			return pcm16, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
