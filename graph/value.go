// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// FilePayload is a file carried by value: its name and raw bytes.
type FilePayload struct {
	Name string
	Data []byte
}

// Value is a tagged value flowing along a graph edge.
// The zero Value is None.
type Value struct {
	typ    DataType
	handle int
	f      float32
	d      time.Duration
	file   *FilePayload
}

func NoneValue() Value { return Value{} }

// SourceValue wraps a handle issued by a source registry.
func SourceValue(handle int) Value {
	return Value{typ: AudioSource, handle: handle}
}

func FloatValue(f float32) Value {
	return Value{typ: Float, f: f}
}

func DurationValue(d time.Duration) Value {
	return Value{typ: Duration, d: d}
}

// FileValue holds an optional file. A nil file means no file was picked.
func FileValue(file *FilePayload) Value {
	v := Value{typ: File}
	if file != nil {
		cp := *file
		v.file = &cp
	}

	return v
}

// Type returns the tag of v.
func (v Value) Type() DataType { return v.typ }

// TryToSource returns the registry handle held by v.
func (v Value) TryToSource() (int, error) {
	if v.typ != AudioSource {
		return 0, &CastError{Want: AudioSource, Got: v.typ}
	}

	return v.handle, nil
}

func (v Value) TryToFloat() (float32, error) {
	if v.typ != Float {
		return 0, &CastError{Want: Float, Got: v.typ}
	}

	return v.f, nil
}

func (v Value) TryToDuration() (time.Duration, error) {
	if v.typ != Duration {
		return 0, &CastError{Want: Duration, Got: v.typ}
	}

	return v.d, nil
}

// TryToFile returns the file held by v, which is nil when the value
// carries no file.
func (v Value) TryToFile() (*FilePayload, error) {
	if v.typ != File {
		return nil, &CastError{Want: File, Got: v.typ}
	}
	if v.file == nil {
		return nil, nil
	}

	cp := *v.file

	return &cp, nil
}

// Equal compares tags and payloads. AudioSource values never compare
// equal to each other: a handle says nothing about the audio behind it.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}

	switch v.typ {
	case None:
		return true
	case Float:
		return v.f == o.f
	case Duration:
		return v.d == o.d
	case File:
		if v.file == nil || o.file == nil {
			return v.file == nil && o.file == nil
		}
		return v.file.Name == o.file.Name && bytes.Equal(v.file.Data, o.file.Data)
	default:
		return false
	}
}

// String never prints audio or file contents. Every variant is listed
// on purpose; a new payload-bearing type needs its own case.
func (v Value) String() string {
	switch v.typ {
	case None:
		return "None"
	case AudioSource:
		return "Source{value: Anonymous AudioSource}"
	case Float:
		return "Float{value: " + strconv.FormatFloat(float64(v.f), 'g', -1, 32) + "}"
	case Duration:
		return "Duration{value: " + v.d.String() + "}"
	case File:
		if v.file == nil {
			return "File{name: None}"
		}
		return "File{name: " + strconv.Quote(v.file.Name) + "}"
	default:
		return fmt.Sprintf("Unknown{type: %d}", uint8(v.typ))
	}
}

// GoString makes %#v as safe as %v.
func (v Value) GoString() string {
	return "graph." + v.String()
}
