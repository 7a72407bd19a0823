// SPDX-License-Identifier: EPL-2.0

package graph

// InputValueConfig is the editable default of an input before the
// evaluator turns it into a Value. Implementations are the *Config
// types of this package.
type InputValueConfig interface {
	DataType() DataType

	inputValueConfig()
}

// SourceConfig is the placeholder of an audio input; sources only ever
// arrive through connections.
type SourceConfig struct{}

type FloatConfig struct {
	Value float32
}

// DurationConfig keeps the duration as a float number of seconds, the
// way a numeric widget edits it.
type DurationConfig struct {
	Seconds float32
}

// FileConfig is the placeholder of a file input.
type FileConfig struct{}

func (SourceConfig) DataType() DataType   { return AudioSource }
func (FloatConfig) DataType() DataType    { return Float }
func (DurationConfig) DataType() DataType { return Duration }
func (FileConfig) DataType() DataType     { return File }

func (SourceConfig) inputValueConfig()   {}
func (FloatConfig) inputValueConfig()    {}
func (DurationConfig) inputValueConfig() {}
func (FileConfig) inputValueConfig()     {}

// InputParameter describes one input port of a node.
type InputParameter struct {
	Name     string
	DataType DataType
	Kind     ParamKind
	Value    InputValueConfig
}

// Output describes one output port of a node.
type Output struct {
	Name     string   `yaml:"name"`
	DataType DataType `yaml:"data_type"`
}

// CanConnect reports whether an edge from o may end at in.
func (o Output) CanConnect(in InputParameter) bool {
	return o.DataType == in.DataType
}
