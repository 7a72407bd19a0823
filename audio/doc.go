// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives every node works on.
//
// A Source yields interleaved float32 samples in [-1, 1] and reports
// io.EOF once it is done:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Sources chain: a Resampler changes the rate with cubic interpolation,
// a MonoMixer averages channels down to one and a ChannelConverter
// drops or duplicates channels. NewUniform combines them so any source
// comes out at a given rate and layout; NewCanonical uses
// DefaultSampleRate and CanonicalChannels.
//
//	src := audio.NewCanonical(decoded)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// A Buffer holds a decoded source in memory. Clones share its samples
// and read independently, which is how one loaded file feeds several
// consumers. Take bounds a source that never ends; ReadAll drains a
// finite one.
//
// Decoders maps file extensions to Decoder implementations:
//
//	d := audio.NewDecoders()
//	d.Register("wav", wav.Decoder{})
//	src, err := d.DecodeFile("voice.wav", data)
//
// Reading loops look the same everywhere:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
