package savegame

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrUnknownTag          = errors.New("unknown tag")
	ErrUnresolvedBlueprint = errors.New("unresolved blueprint")
	ErrOutOfRange          = errors.New("value out of range")
	ErrCountMismatch       = errors.New("count mismatch")
	ErrMissingRecord       = errors.New("missing record")
)

// DecodeError reports a fatal decode failure with the offset of the field
// being read and, for tag errors, the value that was seen.
type DecodeError struct {
	Path   string // dotted record path, e.g. "playerShip.crew[2]"
	Field  string
	Offset int64
	Value  int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s at offset %d (0x%x): %v (value %d)",
		e.Path, e.Field, e.Offset, e.Offset, e.Err, e.Value)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a fatal encode failure
type EncodeError struct {
	Path   string
	Field  string
	Offset int64
	Value  int64
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %s at offset %d (0x%x): %v (value %d)",
		e.Path, e.Field, e.Offset, e.Offset, e.Err, e.Value)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
