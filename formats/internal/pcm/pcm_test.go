// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeReader hands out ints the way go-audio decoders do: short reads
// with a nil error at the end of the data.
type fakeReader struct {
	format *goaudio.Format
	data   []int
	off    int
	err    error
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	n := copy(buf.Data, f.data[f.off:])
	f.off += n

	return n, nil
}

func stereo(rate int) *goaudio.Format {
	return &goaudio.Format{NumChannels: 2, SampleRate: rate}
}

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		want float32
	}{
		{8, 128}, {16, 32768}, {24, 8388608}, {32, 2147483648},
	}

	for _, tt := range tests {
		got, err := FullScale(tt.bits)
		if err != nil || got != tt.want {
			t.Errorf("FullScale(%d) = %v, %v; want %v", tt.bits, got, err, tt.want)
		}
	}

	if _, err := FullScale(12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("FullScale(12) error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestNewSource_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewSource(&fakeReader{}, 16); err == nil {
		t.Error("NewSource() with no format succeeded")
	}

	if _, err := NewSource(&fakeReader{format: stereo(8000)}, 20); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("NewSource() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	r := &fakeReader{format: stereo(22050), data: []int{0, 16384, -16384, -32768, 32767, 8192}}
	src, err := NewSource(r, 16)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Fatalf("format = %d Hz / %d ch", src.SampleRate(), src.Channels())
	}

	buf := make([]float32, 4)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}

	want := []float32{0, 0.5, -0.5, -1}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}

	// short read marks the end
	n, err = src.ReadSamples(buf)
	if n != 2 || err != io.EOF {
		t.Fatalf("ReadSamples() = %d, %v; want 2, EOF", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Fatalf("ReadSamples() after end = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src, err := NewSource(&fakeReader{format: stereo(8000), err: boom}, 16)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want boom", err)
	}

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		in   int
	}{
		{8, 64}, {24, 4194304}, {32, 1073741824},
	}

	for _, tt := range tests {
		src, err := NewSource(&fakeReader{format: stereo(8000), data: []int{tt.in, -tt.in}}, tt.bits)
		if err != nil {
			t.Fatalf("NewSource(%d bits) error = %v", tt.bits, err)
		}

		buf := make([]float32, 2)
		if _, err := src.ReadSamples(buf); err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if buf[0] != 0.5 || buf[1] != -0.5 {
			t.Errorf("%d bits: got %v, want [0.5 -0.5]", tt.bits, buf)
		}
	}
}
