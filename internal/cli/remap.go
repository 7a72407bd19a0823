// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/soundgraph/audio"
	"github.com/ik5/soundgraph/engine"
	"github.com/ik5/soundgraph/formats"
	"github.com/ik5/soundgraph/formats/wav"
	"github.com/ik5/soundgraph/graph"
	"github.com/ik5/soundgraph/remap"
	"github.com/ik5/soundgraph/sources"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const remapLongDescription = `Remap the amplitude of one or more audio files from one range onto
another and write the result as a 16-bit stereo WAV at 44.1kHz.

Inputs are decoded concurrently and written one after another. Each input
lasts as long as the file itself unless --seconds is given. Samples are
clamped into the from range first, so the output stays inside the to range.`

const saveGraphFlagName = "save-graph"

var (
	remapSecondsFlag float64
	remapFromMinFlag float32
	remapFromMaxFlag float32
	remapToMinFlag   float32
	remapToMaxFlag   float32
	saveGraphFlag    string
)

// loaderOutput is the port a file loader node exposes.
var loaderOutput = graph.Output{Name: "audio", DataType: graph.AudioSource}

// remapOutput is the port the remap node exposes.
var remapOutput = graph.Output{Name: "remapped", DataType: graph.AudioSource}

// remapInputs describes the input ports of the remap node, with the
// given constants as their defaults.
func remapInputs(start, end remap.Range) []graph.InputParameter {
	float := func(name string, v float32) graph.InputParameter {
		return graph.InputParameter{
			Name:     name,
			DataType: graph.Float,
			Kind:     graph.ConnectionOrConstant,
			Value:    graph.FloatConfig{Value: v},
		}
	}

	return []graph.InputParameter{
		{Name: "source", DataType: graph.AudioSource, Kind: graph.ConnectionOnly, Value: graph.SourceConfig{}},
		float("from_min", start.Min),
		float("from_max", start.Max),
		float("to_min", end.Min),
		float("to_max", end.Max),
	}
}

func newRemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remap <out.wav> <input...>",
		Short: "Remap the amplitude range of audio files",
		Long:  remapLongDescription,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := remapOptions{
				out:    args[0],
				inputs: args[1:],
				start: remap.Range{
					Min: float32(viper.GetFloat64(remapFromMinKey)),
					Max: float32(viper.GetFloat64(remapFromMaxKey)),
				},
				end: remap.Range{
					Min: float32(viper.GetFloat64(remapToMinKey)),
					Max: float32(viper.GetFloat64(remapToMaxKey)),
				},
				seconds:   viper.GetFloat64(remapSecondsKey),
				saveGraph: saveGraphFlag,
			}

			frames, err := runRemap(cmd.Context(), opts)
			if err != nil {
				return err
			}

			cmd.Printf("wrote %d frames to %s\n", frames, opts.out)

			return nil
		},
	}

	configureRemapFlags(cmd)

	return cmd
}

func configureRemapFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&remapSecondsFlag, secondsFlagName, viper.GetFloat64(remapSecondsKey), "seconds to render per input (0 = input length)")
	bindFlagToConfig(cmd.Flags().Lookup(secondsFlagName), remapSecondsKey)

	cmd.Flags().Float32Var(&remapFromMinFlag, fromMinFlagName, float32(viper.GetFloat64(remapFromMinKey)), "lower bound of the input range")
	bindFlagToConfig(cmd.Flags().Lookup(fromMinFlagName), remapFromMinKey)

	cmd.Flags().Float32Var(&remapFromMaxFlag, fromMaxFlagName, float32(viper.GetFloat64(remapFromMaxKey)), "upper bound of the input range")
	bindFlagToConfig(cmd.Flags().Lookup(fromMaxFlagName), remapFromMaxKey)

	cmd.Flags().Float32Var(&remapToMinFlag, toMinFlagName, float32(viper.GetFloat64(remapToMinKey)), "lower bound of the output range")
	bindFlagToConfig(cmd.Flags().Lookup(toMinFlagName), remapToMinKey)

	cmd.Flags().Float32Var(&remapToMaxFlag, toMaxFlagName, float32(viper.GetFloat64(remapToMaxKey)), "upper bound of the output range")
	bindFlagToConfig(cmd.Flags().Lookup(toMaxFlagName), remapToMaxKey)

	cmd.Flags().StringVar(&saveGraphFlag, saveGraphFlagName, "", "write the remap node and its values as YAML to this path")
}

type remapOptions struct {
	out       string
	inputs    []string
	start     remap.Range
	end       remap.Range
	seconds   float64
	saveGraph string
}

// runRemap renders every input through a remap stream into opts.out and
// returns the number of frames written.
func runRemap(ctx context.Context, opts remapOptions) (int, error) {
	logger := globalLogger

	files, err := readInputs(ctx, opts.inputs)
	if err != nil {
		return 0, err
	}

	pass := engine.New(sources.New(logger), formats.NewDecoders(), logger)
	pass.Begin()

	inputs := remapInputs(opts.start, opts.end)
	if err := pass.Connect(loaderOutput, inputs[0]); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	loaded, err := pass.LoadAll(ctx, files)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	parts := make([]audio.Source, 0, len(loaded))
	for i, v := range loaded {
		frames, err := renderFrames(pass, v, opts.seconds)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", opts.inputs[i], err)
		}

		stream, err := pass.Remap(v, opts.start, opts.end)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", opts.inputs[i], err)
		}

		logger.Debug("Remapping input", "input", opts.inputs[i], "frames", frames,
			"start", stream.Start(), "end", stream.End())

		parts = append(parts, audio.Take(stream, frames*audio.CanonicalChannels))
	}

	seq, err := audio.Concat(parts...)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer seq.Close()

	f, err := os.Create(opts.out)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	written, err := wav.Encode(f, seq)
	if err != nil {
		return written, fmt.Errorf("writing %s: %w", opts.out, err)
	}

	if err := f.Close(); err != nil {
		return written, fmt.Errorf("%w", err)
	}

	logger.Info("Wrote remapped audio", "path", opts.out, "frames", written, "inputs", len(opts.inputs))

	if opts.saveGraph != "" {
		if err := saveRemapGraph(opts, inputs); err != nil {
			return written, err
		}
	}

	return written, nil
}

// readInputs reads every input file concurrently, keeping their order.
func readInputs(ctx context.Context, paths []string) ([]graph.Value, error) {
	files := make([]graph.Value, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w", err)
			}

			files[i] = graph.FileValue(&graph.FilePayload{Name: filepath.Base(path), Data: data})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// renderFrames is the number of canonical frames to render for v.
func renderFrames(pass *engine.Pass, v graph.Value, seconds float64) (int, error) {
	if seconds > 0 {
		return int(math.Round(seconds * audio.DefaultSampleRate)), nil
	}

	src, err := pass.Open(v)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	l, ok := src.(audio.Lengther)
	if !ok {
		return 0, nil
	}

	frames, ok := l.FrameLen()
	if !ok {
		return 0, nil
	}

	return frames * audio.DefaultSampleRate / src.SampleRate(), nil
}

func saveRemapGraph(opts remapOptions, inputs []graph.InputParameter) error {
	values := map[string]graph.Value{
		"from_min": graph.FloatValue(opts.start.Min),
		"from_max": graph.FloatValue(opts.start.Max),
		"to_min":   graph.FloatValue(opts.end.Min),
		"to_max":   graph.FloatValue(opts.end.Max),
		"seconds":  graph.DurationValue(time.Duration(opts.seconds * float64(time.Second))),
	}
	for i, in := range opts.inputs {
		// names only; the audio itself stays on disk
		values[fmt.Sprintf("input_%d", i)] = graph.FileValue(&graph.FilePayload{Name: in})
	}

	doc := graph.Document{
		Inputs:  inputs,
		Outputs: []graph.Output{remapOutput},
		Values:  values,
	}

	f, err := os.Create(opts.saveGraph)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	if err := doc.Save(f); err != nil {
		return err
	}

	return f.Close()
}
