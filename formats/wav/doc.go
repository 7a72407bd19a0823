// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel count
// and any sample rate:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// Samples come out as float32 in [-1, 1).
//
// # Encoding
//
// WriteWAV16 writes ready-made int16 samples, Encode drains an
// audio.Source. Both need an io.WriteSeeker because the RIFF sizes are
// patched when the encoder closes:
//
//	out, _ := os.Create("out.wav")
//	frames, err := wav.Encode(out, audio.Take(stream, 2*audio.DefaultSampleRate))
package wav
