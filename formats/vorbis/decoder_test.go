// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type fakeOgg struct {
	rate, channels int
	data           []float32
	err            error
	lastLen        int
}

func (f *fakeOgg) SampleRate() int { return f.rate }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	f.lastLen = len(p)
	if f.err != nil {
		return 0, f.err
	}
	if len(f.data) == 0 {
		return 0, io.EOF
	}

	n := copy(p, f.data)
	f.data = f.data[n:]

	return n, nil
}

func TestSource_WholeFrames(t *testing.T) {
	t.Parallel()

	dec := &fakeOgg{rate: 48000, channels: 2, data: []float32{0.1, 0.2, 0.3, 0.4}}
	src := &source{dec: dec}

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 2 {
		t.Fatalf("ReadSamples() = %d, %v; want 2, nil", n, err)
	}
	if dec.lastLen != 2 {
		t.Errorf("decoder asked for %d samples, want 2", dec.lastLen)
	}

	if n, err := src.ReadSamples(buf[:1]); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_EOFAndErrors(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeOgg{rate: 8000, channels: 1}}
	if _, err := src.ReadSamples(make([]float32, 4)); err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want EOF", err)
	}

	boom := errors.New("corrupt page")
	src = &source{dec: &fakeOgg{rate: 8000, channels: 1, err: boom}}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestDecoder_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("OggS but not really"))); err == nil {
		t.Error("Decode() of garbage succeeded")
	}
}
