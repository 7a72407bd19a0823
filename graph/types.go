// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DataType tags a port and the values that may flow through it.
type DataType uint8

const (
	None DataType = iota
	AudioSource
	Float
	Duration
	File
)

var dataTypeNames = [...]string{
	None:        "None",
	AudioSource: "AudioSource",
	Float:       "Float",
	Duration:    "Duration",
	File:        "File",
}

// DataTypes lists every DataType in declaration order.
func DataTypes() []DataType {
	return []DataType{None, AudioSource, Float, Duration, File}
}

func (t DataType) Valid() bool { return int(t) < len(dataTypeNames) }

func (t DataType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("DataType(%d)", uint8(t))
	}

	return dataTypeNames[t]
}

// ParseDataType is the inverse of DataType.String.
func ParseDataType(s string) (DataType, error) {
	for i, name := range dataTypeNames {
		if name == s {
			return DataType(i), nil
		}
	}

	return None, fmt.Errorf("%q: %w", s, ErrUnknownDataType)
}

func (t DataType) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%d: %w", uint8(t), ErrUnknownDataType)
	}

	return t.String(), nil
}

func (t *DataType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("data type: %w", err)
	}

	parsed, err := ParseDataType(s)
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// ParamKind says whether a node editor shows a connection slot, an
// inline editor, or both for an input. It is presentation metadata and
// nothing in this module acts on it.
type ParamKind uint8

const (
	ConnectionOnly ParamKind = iota
	ConstantOnly
	ConnectionOrConstant
)

var paramKindNames = [...]string{
	ConnectionOnly:       "ConnectionOnly",
	ConstantOnly:         "ConstantOnly",
	ConnectionOrConstant: "ConnectionOrConstant",
}

func (k ParamKind) String() string {
	if int(k) >= len(paramKindNames) {
		return fmt.Sprintf("ParamKind(%d)", uint8(k))
	}

	return paramKindNames[k]
}

func (k ParamKind) MarshalYAML() (any, error) {
	if int(k) >= len(paramKindNames) {
		return nil, fmt.Errorf("%d: %w", uint8(k), ErrUnknownParamKind)
	}

	return k.String(), nil
}

func (k *ParamKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("param kind: %w", err)
	}

	for i, name := range paramKindNames {
		if name == s {
			*k = ParamKind(i)
			return nil
		}
	}

	return fmt.Errorf("%q: %w", s, ErrUnknownParamKind)
}
