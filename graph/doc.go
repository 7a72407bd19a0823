// SPDX-License-Identifier: EPL-2.0

// Package graph defines the values that travel along the edges of a
// sound graph.
//
// # Data types
//
// DataType is the closed set of port types: None, AudioSource, Float,
// Duration and File. Two ports may be connected when their DataTypes
// are equal, which is a plain == comparison.
//
// # Values
//
// Value carries a DataType tag together with its payload. The zero Value
// is None. Payloads are read back with the TryTo* methods, which never
// panic:
//
//	v := graph.FloatValue(0.5)
//	f, err := v.TryToFloat() // 0.5, nil
//	_, err = v.TryToSource() // errors.Is(err, graph.ErrInvalidCast)
//
// An AudioSource value holds only a handle into a source registry
// (see package sources), never the samples themselves. Printing a Value
// does not dump heavy payloads: audio sources print a fixed placeholder
// and files print their name only.
//
// # Parameters
//
// InputParameter and Output describe node ports. An InputParameter
// carries an InputValueConfig, the editable default shown by a node
// editor. It is deliberately narrower than Value (a duration is a float
// number of seconds) and turning it into a Value is left to the
// evaluator.
//
// # Persistence
//
// Every type in this package round-trips through YAML. Handles are
// stored as plain integers and are meaningless once the registry that
// issued them is cleared; loading a Document restores topology and
// defaults, never audio.
package graph
