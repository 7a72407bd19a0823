// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrStaleHandle is returned for an AudioSource value whose handle
	// was issued before the registry was last cleared.
	ErrStaleHandle = errors.New("stale audio source handle")

	// ErrTypeMismatch is returned when an output is wired to an input
	// of another data type.
	ErrTypeMismatch = errors.New("port data types differ")

	// ErrConstantOnly is returned when an edge targets an input that
	// only takes a constant.
	ErrConstantOnly = errors.New("input does not accept connections")

	// ErrNoFile is returned when a File value without a file is loaded.
	ErrNoFile = errors.New("no file selected")
)
