// SPDX-License-Identifier: EPL-2.0

package audio

// Uniform adapts any source to a fixed channel count and sample rate.
// The rate is converted first so the resampler works on the original
// channel layout.
type Uniform struct {
	Source

	channels   int
	sampleRate int
}

func NewUniform(src Source, channels, sampleRate int) *Uniform {
	var s = src
	if s.SampleRate() != sampleRate {
		s = NewResampler(s, sampleRate)
	}

	if s.Channels() != channels {
		if channels == 1 {
			s = NewMonoMixer(s)
		} else {
			s = NewChannelConverter(s, channels)
		}
	}

	return &Uniform{
		Source:     s,
		channels:   channels,
		sampleRate: sampleRate,
	}
}

// NewCanonical normalizes src to CanonicalChannels at DefaultSampleRate.
func NewCanonical(src Source) *Uniform {
	return NewUniform(src, CanonicalChannels, DefaultSampleRate)
}

func (u *Uniform) SampleRate() int { return u.sampleRate }
func (u *Uniform) Channels() int   { return u.channels }
