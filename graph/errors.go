// SPDX-License-Identifier: EPL-2.0

package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCast is matched by every CastError.
	ErrInvalidCast = errors.New("invalid cast")

	ErrUnknownDataType  = errors.New("unknown data type")
	ErrUnknownParamKind = errors.New("unknown parameter kind")
)

// CastError reports a downcast to a type the Value does not hold.
type CastError struct {
	Want DataType
	Got  DataType
}

func (e *CastError) Error() string {
	return fmt.Sprintf("invalid cast: want %s, got %s", e.Want, e.Got)
}

func (e *CastError) Is(target error) bool {
	return target == ErrInvalidCast
}
