// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ik5/soundgraph/engine"
	"github.com/ik5/soundgraph/graph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <graph.yaml>",
		Short: "Show the ports and values of a saved graph",
		Long: `Show the inputs, outputs and bound values of a graph document.
Audio and file contents are never printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("%w", err)
			}
			defer f.Close()

			doc, err := graph.Load(f)
			if err != nil {
				return err
			}

			globalLogger.Debug("Loaded graph document", "path", args[0],
				"inputs", len(doc.Inputs), "outputs", len(doc.Outputs), "values", len(doc.Values))

			return renderDocument(cmd.OutOrStdout(), doc)
		},
	}
}

func renderDocument(w io.Writer, doc *graph.Document) error {
	// Resolve needs no registry or decoders
	pass := engine.New(nil, nil, globalLogger)

	inputs := make([][]string, 0, len(doc.Inputs))
	for _, in := range doc.Inputs {
		inputs = append(inputs, []string{
			in.Name,
			in.DataType.String(),
			in.Kind.String(),
			pass.Resolve(in).String(),
		})
	}

	outputs := make([][]string, 0, len(doc.Outputs))
	for _, out := range doc.Outputs {
		outputs = append(outputs, []string{out.Name, out.DataType.String()})
	}

	names := make([]string, 0, len(doc.Values))
	for name := range doc.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([][]string, 0, len(names))
	for _, name := range names {
		v := doc.Values[name]
		values = append(values, []string{name, v.Type().String(), v.String()})
	}

	sections := []struct {
		title  string
		header []string
		rows   [][]string
	}{
		{"Inputs", []string{"Name", "Type", "Kind", "Default"}, inputs},
		{"Outputs", []string{"Name", "Type"}, outputs},
		{"Values", []string{"Name", "Type", "Value"}, values},
	}

	for _, s := range sections {
		if len(s.rows) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "%s\n%s\n", s.title, renderTable(s.header, s.rows)); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

func renderTable(header []string, rows [][]string) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	return buf.String()
}
