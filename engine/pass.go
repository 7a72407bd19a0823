// SPDX-License-Identifier: EPL-2.0

// Package engine glues the typed values of a node graph to the audio
// they stand for during one evaluation pass.
//
// A pass starts with Begin, which invalidates every handle of the
// previous pass. File values are then decoded into the source registry
// with Load or LoadAll, and AudioSource values are turned back into
// readable streams with Open or Remap.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/soundgraph/audio"
	"github.com/ik5/soundgraph/graph"
	"github.com/ik5/soundgraph/remap"
	"github.com/ik5/soundgraph/sources"
	"golang.org/x/sync/errgroup"
)

type Pass struct {
	reg    *sources.Registry
	dec    *audio.Decoders
	logger *slog.Logger
}

// New returns a pass over reg that decodes files with dec.
// A nil logger falls back to slog.Default().
func New(reg *sources.Registry, dec *audio.Decoders, logger *slog.Logger) *Pass {
	if logger == nil {
		logger = slog.Default()
	}

	return &Pass{
		reg:    reg,
		dec:    dec,
		logger: logger,
	}
}

// Registry returns the registry the pass pushes into.
func (p *Pass) Registry() *sources.Registry { return p.reg }

// Begin starts a new evaluation pass.
func (p *Pass) Begin() {
	p.logger.Debug("Beginning pass", "sources", p.reg.Len())
	p.reg.Clear()
}

// Resolve turns the configured default of an input into the value it
// carries when nothing is connected to it.
func (p *Pass) Resolve(param graph.InputParameter) graph.Value {
	switch c := param.Value.(type) {
	case graph.FloatConfig:
		return graph.FloatValue(c.Value)
	case graph.DurationConfig:
		return graph.DurationValue(time.Duration(float64(c.Seconds) * float64(time.Second)))
	case graph.FileConfig:
		return graph.FileValue(nil)
	default:
		return graph.NoneValue()
	}
}

// Load decodes the file held by v, realizes it in memory and registers
// it. AudioSource values are returned unchanged.
func (p *Pass) Load(v graph.Value) (graph.Value, error) {
	if v.Type() == graph.AudioSource {
		return v, nil
	}

	file, err := v.TryToFile()
	if err != nil {
		return graph.NoneValue(), fmt.Errorf("loading: %w", err)
	}
	if file == nil {
		return graph.NoneValue(), ErrNoFile
	}

	src, err := p.dec.DecodeFile(file.Name, file.Data)
	if err != nil {
		return graph.NoneValue(), fmt.Errorf("%w", err)
	}

	buf, err := audio.Realize(src)
	if err != nil {
		return graph.NoneValue(), fmt.Errorf("reading %s: %w", file.Name, err)
	}

	h := p.reg.Push(buf)

	frames, _ := buf.FrameLen()
	p.logger.Info("Loaded file",
		"name", file.Name,
		"handle", h,
		"frames", frames,
		"sampleRate", buf.SampleRate(),
		"channels", buf.Channels(),
	)

	return graph.SourceValue(h), nil
}

// LoadAll loads files concurrently. The result keeps the order of
// files; handle numbers follow completion order.
func (p *Pass) LoadAll(ctx context.Context, files []graph.Value) ([]graph.Value, error) {
	out := make([]graph.Value, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, err := p.Load(f)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			out[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Open returns a fresh stream for the AudioSource held by v.
func (p *Pass) Open(v graph.Value) (audio.Source, error) {
	h, err := v.TryToSource()
	if err != nil {
		return nil, fmt.Errorf("opening: %w", err)
	}

	buf, ok := p.reg.Lookup(h)
	if !ok {
		return nil, fmt.Errorf("handle %d: %w", h, ErrStaleHandle)
	}

	return buf, nil
}

// Remap opens v and maps its samples from start onto end.
func (p *Pass) Remap(v graph.Value, start, end remap.Range) (*remap.Stream, error) {
	src, err := p.Open(v)
	if err != nil {
		return nil, err
	}

	return remap.New(src, start, end, remap.WithLogger(p.logger)), nil
}

// Connect checks that an edge from out to in is allowed.
func (p *Pass) Connect(out graph.Output, in graph.InputParameter) error {
	if in.Kind == graph.ConstantOnly {
		return fmt.Errorf("%s -> %s: %w", out.Name, in.Name, ErrConstantOnly)
	}

	if !out.CanConnect(in) {
		return fmt.Errorf("%s (%s) -> %s (%s): %w",
			out.Name, out.DataType, in.Name, in.DataType, ErrTypeMismatch)
	}

	return nil
}
