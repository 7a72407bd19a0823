// SPDX-License-Identifier: EPL-2.0

// Package soundgraph turns decoded audio into 16-bit PCM in one call.
//
// The building blocks live in subpackages:
//   - graph: typed values and ports of the node graph, with YAML persistence
//   - sources: the per-pass registry of loaded audio
//   - remap: the range-remapping stream
//   - engine: glue that loads files, opens handles and checks edges
//   - audio: the Source interface, resampling and channel conversion
//   - formats: WAV, MP3, Ogg Vorbis and AIFF decoders
//
// # Quick Start
//
//	dec := formats.NewDecoders()
//	src, _ := dec.DecodeFile("voice.wav", data)
//
//	// any rate and layout, 2 seconds of 44.1kHz stereo
//	pcm, _ := soundgraph.RenderStereo16(src, 2*time.Second, 4096)
//
//	// or 8kHz mono until the source ends
//	pcm, rate, _ := soundgraph.ResampleToMono16(src, 8000, 4096)
//
// Writing the result back out:
//
//	f, _ := os.Create("out.wav")
//	wav.WriteWAV16(f, audio.DefaultSampleRate, audio.CanonicalChannels, pcm)
package soundgraph
