// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelConverter changes the channel count of interleaved audio.
// Going down drops the trailing channels; going up repeats the last
// input channel, so mono becomes dual-mono.
type ChannelConverter struct {
	src Source
	to  int
	tmp []float32
}

func NewChannelConverter(src Source, channels int) *ChannelConverter {
	return &ChannelConverter{
		src: src,
		to:  channels,
		tmp: make([]float32, 4096),
	}
}

func (c *ChannelConverter) SampleRate() int { return c.src.SampleRate() }
func (c *ChannelConverter) Channels() int   { return c.to }
func (c *ChannelConverter) Close() error {
	err := c.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (c *ChannelConverter) ReadSamples(dst []float32) (int, error) {
	if len(dst)%c.to != 0 {
		return 0, ErrInvalidDstSize
	}

	from := c.src.Channels()
	if from == c.to {
		return c.src.ReadSamples(dst)
	}

	frames := len(dst) / c.to
	if frames == 0 {
		return 0, nil
	}

	need := frames * from
	if cap(c.tmp) < need {
		c.tmp = make([]float32, need)
	}
	c.tmp = c.tmp[:need]

	n, err := c.src.ReadSamples(c.tmp)
	got := n / from

	for f := range got {
		in := c.tmp[f*from : f*from+from]
		out := dst[f*c.to : f*c.to+c.to]
		for ch := range out {
			if ch < from {
				out[ch] = in[ch]
			} else {
				out[ch] = in[from-1]
			}
		}
	}

	return got * c.to, err
}
