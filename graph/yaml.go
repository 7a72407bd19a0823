// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var errMissingValue = errors.New("missing value")

type fileDoc struct {
	Name string `yaml:"name"`
	Data string `yaml:"data,omitempty"` // base64
}

// valueOut is the encoded form of a Value with a payload. Zero
// payloads such as handle 0 must still be written.
type valueOut struct {
	Type  DataType `yaml:"type"`
	Value any      `yaml:"value"`
}

// typeOnly is the encoded form of a Value without a payload.
type typeOnly struct {
	Type DataType `yaml:"type"`
}

// valueDoc is the decoded form; the payload is decoded once the type
// is known.
type valueDoc struct {
	Type  DataType  `yaml:"type"`
	Value yaml.Node `yaml:"value"`
}

func (v Value) MarshalYAML() (any, error) {
	switch v.typ {
	case None:
		return typeOnly{Type: None}, nil
	case AudioSource:
		return valueOut{Type: v.typ, Value: v.handle}, nil
	case Float:
		return valueOut{Type: v.typ, Value: v.f}, nil
	case Duration:
		return valueOut{Type: v.typ, Value: v.d.String()}, nil
	case File:
		if v.file == nil {
			return typeOnly{Type: File}, nil
		}
		return valueOut{Type: v.typ, Value: fileDoc{
			Name: v.file.Name,
			Data: base64.StdEncoding.EncodeToString(v.file.Data),
		}}, nil
	default:
		return nil, fmt.Errorf("%d: %w", uint8(v.typ), ErrUnknownDataType)
	}
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var doc valueDoc
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("value: %w", err)
	}

	empty := doc.Value.Kind == 0

	switch doc.Type {
	case None:
		*v = NoneValue()
	case AudioSource:
		var h int
		if empty {
			return fmt.Errorf("%s: %w", doc.Type, errMissingValue)
		}
		if err := doc.Value.Decode(&h); err != nil {
			return fmt.Errorf("%s value: %w", doc.Type, err)
		}
		*v = SourceValue(h)
	case Float:
		var f float32
		if empty {
			return fmt.Errorf("%s: %w", doc.Type, errMissingValue)
		}
		if err := doc.Value.Decode(&f); err != nil {
			return fmt.Errorf("%s value: %w", doc.Type, err)
		}
		*v = FloatValue(f)
	case Duration:
		var s string
		if empty {
			return fmt.Errorf("%s: %w", doc.Type, errMissingValue)
		}
		if err := doc.Value.Decode(&s); err != nil {
			return fmt.Errorf("%s value: %w", doc.Type, err)
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%s value: %w", doc.Type, err)
		}
		*v = DurationValue(d)
	case File:
		if empty {
			*v = FileValue(nil)
			return nil
		}
		var fd fileDoc
		if err := doc.Value.Decode(&fd); err != nil {
			return fmt.Errorf("%s value: %w", doc.Type, err)
		}
		data, err := base64.StdEncoding.DecodeString(fd.Data)
		if err != nil {
			return fmt.Errorf("%s data: %w", doc.Type, err)
		}
		*v = FileValue(&FilePayload{Name: fd.Name, Data: data})
	default:
		return fmt.Errorf("%d: %w", uint8(doc.Type), ErrUnknownDataType)
	}

	return nil
}

type configDoc struct {
	Type  DataType `yaml:"type"`
	Value *float32 `yaml:"value,omitempty"`
}

func marshalConfig(c InputValueConfig) (configDoc, error) {
	switch c := c.(type) {
	case SourceConfig:
		return configDoc{Type: AudioSource}, nil
	case FloatConfig:
		return configDoc{Type: Float, Value: &c.Value}, nil
	case DurationConfig:
		return configDoc{Type: Duration, Value: &c.Seconds}, nil
	case FileConfig:
		return configDoc{Type: File}, nil
	default:
		return configDoc{}, fmt.Errorf("input config %T: %w", c, ErrUnknownDataType)
	}
}

func unmarshalConfig(doc configDoc) (InputValueConfig, error) {
	var value float32
	if doc.Value != nil {
		value = *doc.Value
	}

	switch doc.Type {
	case AudioSource:
		return SourceConfig{}, nil
	case Float:
		return FloatConfig{Value: value}, nil
	case Duration:
		return DurationConfig{Seconds: value}, nil
	case File:
		return FileConfig{}, nil
	default:
		return nil, fmt.Errorf("input config %s: %w", doc.Type, ErrUnknownDataType)
	}
}

type inputDoc struct {
	Name     string    `yaml:"name"`
	DataType DataType  `yaml:"data_type"`
	Kind     ParamKind `yaml:"kind"`
	Value    configDoc `yaml:"value"`
}

func (p InputParameter) MarshalYAML() (any, error) {
	cfg, err := marshalConfig(p.Value)
	if err != nil {
		return nil, fmt.Errorf("input %q: %w", p.Name, err)
	}

	return inputDoc{
		Name:     p.Name,
		DataType: p.DataType,
		Kind:     p.Kind,
		Value:    cfg,
	}, nil
}

func (p *InputParameter) UnmarshalYAML(node *yaml.Node) error {
	var doc inputDoc
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("input: %w", err)
	}

	cfg, err := unmarshalConfig(doc.Value)
	if err != nil {
		return fmt.Errorf("input %q: %w", doc.Name, err)
	}

	*p = InputParameter{
		Name:     doc.Name,
		DataType: doc.DataType,
		Kind:     doc.Kind,
		Value:    cfg,
	}

	return nil
}
