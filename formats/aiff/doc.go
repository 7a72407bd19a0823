// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 or 32 bits is supported; AIFF stores
// samples big-endian and go-audio takes care of the byte order.
// Inputs that are not an io.ReadSeeker are buffered in memory first.
//
//	src, err := aiff.Decoder{}.Decode(file)
package aiff
