// SPDX-License-Identifier: EPL-2.0

package sources

import "errors"

// ErrInvalidHandle is matched by InvalidHandleError.
var ErrInvalidHandle = errors.New("invalid source handle")

// ErrNilSource is the panic value of Push(nil).
var ErrNilSource = errors.New("nil source buffer")
