// Package optional is the runtime support imported by generated builders.
//
// Option is the optionality wrapper recognised by the generator: a struct field
// declared as Option[T] is optional, every other field is required. Builders
// store all of their fields as Option values and report absent required fields
// through MissingFieldError.
package optional

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/go-json-experiment/json"
)

// Option holds either a value of type T or nothing.
// The zero Option is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value returns the held value, or the zero value of T when absent.
func (o Option[T]) Value() T {
	return o.value
}

// OrElse returns the held value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// IsZero reports whether o is None. It lets `omitzero` drop absent options.
func (o Option[T]) IsZero() bool {
	return !o.some
}

// Equal reports whether both options are absent, or both hold deeply equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.some != other.some {
		return false
	}
	if !o.some {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MarshalJSON encodes None as null and Some(v) as v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return []byte("null"), nil
	}
	data, err := json.Marshal(o.value)
	if err != nil {
		return nil, fmt.Errorf("marshal option value: %w", err)
	}
	return data, nil
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal option value: %w", err)
	}
	*o = Some(v)
	return nil
}
