package buildergen

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedShape is matched by every UnsupportedShapeError.
	ErrUnsupportedShape = errors.New("unsupported shape")
	// ErrMalformedOptional is matched by every MalformedOptionalError.
	ErrMalformedOptional = errors.New("malformed optional type")
)

// UnsupportedShapeError reports a type a builder cannot be generated for.
type UnsupportedShapeError struct {
	Struct string
	Reason string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("%s: unsupported shape: %s", e.Struct, e.Reason)
}

func (e *UnsupportedShapeError) Unwrap() error {
	return ErrUnsupportedShape
}

// MalformedOptionalError reports an optionality wrapper applied to anything but
// exactly one type argument.
type MalformedOptionalError struct {
	Struct string
	Field  string
	Type   string
	Args   int
}

func (e *MalformedOptionalError) Error() string {
	return fmt.Sprintf("%s.%s: malformed optional type %s: want 1 type argument, got %d", e.Struct, e.Field, e.Type, e.Args)
}

func (e *MalformedOptionalError) Unwrap() error {
	return ErrMalformedOptional
}

func unsupported(structName, format string, args ...any) error {
	return &UnsupportedShapeError{Struct: structName, Reason: fmt.Sprintf(format, args...)}
}
