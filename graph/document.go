// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is the persisted form of a node's ports and the values
// bound to them.
type Document struct {
	Inputs  []InputParameter `yaml:"inputs,omitempty"`
	Outputs []Output         `yaml:"outputs,omitempty"`
	Values  map[string]Value `yaml:"values,omitempty"`
}

// Save writes d as YAML.
func (d *Document) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("saving graph document: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Load reads a Document written by Save.
func Load(r io.Reader) (*Document, error) {
	var d Document

	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("loading graph document: %w", err)
	}

	return &d, nil
}
