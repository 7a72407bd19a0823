// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/soundgraph/audio"
	"github.com/ik5/soundgraph/utils"
)

const bitDepth16 = 16

// WriteWAV16 writes interleaved 16-bit PCM samples as a WAV file.
// The header is patched on close, so w must be seekable.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrNoChannels
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth16, channels, wavFormatPCM)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	if err := enc.Write(intBuffer(sampleRate, channels, data)); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}

	return nil
}

// Encode streams src into w as 16-bit PCM until src reports io.EOF.
// It returns the number of frames written. Endless sources must be
// bounded first, e.g. with audio.Take.
func Encode(w io.WriteSeeker, src audio.Source) (int, error) {
	channels := src.Channels()
	if channels <= 0 {
		return 0, ErrNoChannels
	}

	enc := gowav.NewEncoder(w, src.SampleRate(), bitDepth16, channels, wavFormatPCM)

	buf := make([]float32, 4096-4096%channels)
	data := make([]int, len(buf))
	written, empty := 0, 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			for i, x := range buf[:n] {
				data[i] = int(utils.Float32ToInt16(x))
			}
			if werr := enc.Write(intBuffer(src.SampleRate(), channels, data[:n])); werr != nil {
				return written, fmt.Errorf("writing wav samples: %w", werr)
			}
			written += n / channels
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return written, fmt.Errorf("%w", err)
		}
		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= audio.MaxEmptyReads {
			return written, io.ErrNoProgress
		}
	}

	if err := enc.Close(); err != nil {
		return written, fmt.Errorf("closing wav encoder: %w", err)
	}

	return written, nil
}

func intBuffer(sampleRate, channels int, data []int) *goaudio.IntBuffer {
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth16,
	}
}
