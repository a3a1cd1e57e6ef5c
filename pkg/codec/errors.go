package codec

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrShortRead    = errors.New("short read")
	ErrInvalidBool  = errors.New("invalid boolean")
	ErrIntOverflow  = errors.New("value does not fit in 32 bits")
	ErrStringLength = errors.New("invalid string length")
	ErrCharset      = errors.New("string not representable in charset")
)

// FieldError reports a primitive read or write failure together with the
// stream offset where the field started.
type FieldError struct {
	Op     string // "read" or "write"
	Field  string
	Offset int64
	Value  int64
	Err    error
}

func (e *FieldError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidBool), errors.Is(e.Err, ErrStringLength), errors.Is(e.Err, ErrIntOverflow):
		return fmt.Sprintf("%s %s at offset %d (0x%x): %v (value %d)", e.Op, e.Field, e.Offset, e.Offset, e.Err, e.Value)
	default:
		return fmt.Sprintf("%s %s at offset %d (0x%x): %v", e.Op, e.Field, e.Offset, e.Offset, e.Err)
	}
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
