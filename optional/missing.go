package optional

import (
	"errors"
	"fmt"
)

// ErrMissingField is matched by every MissingFieldError.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError is returned by a generated Build method when a required
// field was never set.
type MissingFieldError struct {
	Struct string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field %q was never set", e.Struct, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// Missing builds the error a generated Build method returns for an unset field.
func Missing(structName, fieldName string) error {
	return &MissingFieldError{Struct: structName, Field: fieldName}
}
