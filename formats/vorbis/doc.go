// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples are handed through
// without conversion, interleaved, at the stream's channel count and
// rate.
//
//	src, err := vorbis.Decoder{}.Decode(file)
package vorbis
