// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo float32 samples at the
// stream's own sample rate; mono files are upmixed by go-mp3 itself.
//
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
