// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/soundgraph/internal/audiotest"
)

func TestConcat(t *testing.T) {
	t.Parallel()

	a := audiotest.NewSequenceSource(8000, 1, 1, 2, 3)
	b := audiotest.NewSequenceSource(8000, 1)
	c := audiotest.NewSequenceSource(8000, 1, 4, 5)

	s, err := Concat(a, b, c)
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}

	if got := drain(t, s, 2); !slices.Equal(got, []float32{1, 2, 3, 4, 5}) {
		t.Errorf("got %v, want [1 2 3 4 5]", got)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !a.Closed || !b.Closed || !c.Closed {
		t.Error("Close() did not close every source")
	}
}

func TestConcat_Mismatch(t *testing.T) {
	t.Parallel()

	if _, err := Concat(); err == nil {
		t.Error("Concat() with no sources succeeded")
	}

	_, err := Concat(audiotest.NewSilentSource(8000, 1, 1), audiotest.NewSilentSource(16000, 1, 1))
	if !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("rate mismatch error = %v, want ErrInvalidSampleRate", err)
	}

	_, err = Concat(audiotest.NewSilentSource(8000, 1, 1), audiotest.NewSilentSource(8000, 2, 1))
	if !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("channel mismatch error = %v, want ErrInvalidChannels", err)
	}
}
