// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Decoders
// registry, keyed by file extension.
package formats

import (
	"github.com/ik5/soundgraph/audio"
	"github.com/ik5/soundgraph/formats/aiff"
	"github.com/ik5/soundgraph/formats/mp3"
	"github.com/ik5/soundgraph/formats/vorbis"
	"github.com/ik5/soundgraph/formats/wav"
)

// Register adds the bundled decoders to d.
func Register(d *audio.Decoders) {
	d.Register("wav", wav.Decoder{})
	d.Register("wave", wav.Decoder{})
	d.Register("mp3", mp3.Decoder{})
	d.Register("ogg", vorbis.Decoder{})
	d.Register("oga", vorbis.Decoder{})
	d.Register("aif", aiff.Decoder{})
	d.Register("aiff", aiff.Decoder{})
}

// NewDecoders returns a registry holding the bundled decoders.
func NewDecoders() *audio.Decoders {
	d := audio.NewDecoders()
	Register(d)

	return d
}
