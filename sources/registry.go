// SPDX-License-Identifier: EPL-2.0

// Package sources keeps the realized audio of one evaluation pass and
// hands out integer handles to it.
//
// Handles are dense and start at 0. They are never reused while the
// registry lives and all of them become invalid on Clear, which an
// evaluator calls at the start of every pass. Reading a handle always
// returns a fresh clone, so consumers never share a read cursor.
package sources

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ik5/soundgraph/audio"
)

// InvalidHandleError is the panic value of CloneAt for a handle the
// registry did not issue in its current generation.
type InvalidHandleError struct {
	Handle int
	Len    int
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("source handle %d out of range [0, %d)", e.Handle, e.Len)
}

func (e *InvalidHandleError) Is(target error) bool {
	return target == ErrInvalidHandle
}

// Registry stores realized sources. It is safe for concurrent use.
type Registry struct {
	mtx     sync.RWMutex
	entries []*audio.Buffer
	logger  *slog.Logger
}

// New returns an empty registry. A nil logger means slog.Default().
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{logger: logger}
}

// Push stores b and returns its handle. The registry keeps b; callers
// should not read from it afterwards and should use CloneAt instead.
// b must not be nil; Push panics with ErrNilSource before storing
// anything.
func (r *Registry) Push(b *audio.Buffer) int {
	if b == nil {
		panic(ErrNilSource)
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.entries = append(r.entries, b)
	h := len(r.entries) - 1

	r.logger.Debug("Pushed source", "handle", h, "channels", b.Channels(), "sampleRate", b.SampleRate(), "samples", b.Len())

	return h
}

// CloneAt returns an independent copy of the source at h, rewound to
// its start. It panics with *InvalidHandleError when h is out of range:
// handles only come from Push, so a bad one is a bug in the caller.
func (r *Registry) CloneAt(h int) *audio.Buffer {
	b, ok := r.Lookup(h)
	if !ok {
		panic(&InvalidHandleError{Handle: h, Len: r.Len()})
	}

	return b
}

// Lookup is CloneAt without the panic, for handles of unknown origin
// such as the ones found in a saved graph.
func (r *Registry) Lookup(h int) (*audio.Buffer, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if h < 0 || h >= len(r.entries) {
		return nil, false
	}

	return r.entries[h].Clone(), true
}

// Clear drops every entry. The next Push returns handle 0 again.
func (r *Registry) Clear() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.logger.Debug("Clearing sources", "count", len(r.entries))

	clear(r.entries)
	r.entries = r.entries[:0]
}

// Len is the number of live handles.
func (r *Registry) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return len(r.entries)
}
