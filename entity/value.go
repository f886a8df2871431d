package entity

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Placeholder is shown in place of a missing value.
const Placeholder = "-"

// Value wraps a field value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string, empty for nil.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Display returns the value as a string, Placeholder for nil.
func (v Value) Display() string {
	if v.Raw == nil {
		return Placeholder
	}
	return v.String()
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// IsBool reports whether the raw value is a bool.
func (v Value) IsBool() bool {
	_, ok := v.Raw.(bool)
	return ok
}

// IsEmpty reports whether the value is nil or the zero value of its type.
// "", false and 0 all count as empty.
func (v Value) IsEmpty() bool {
	if v.Raw == nil {
		return true
	}
	rv := reflect.ValueOf(v.Raw)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return rv.IsZero()
}

// Equal reports exact equality with other, without coercion.
func (v Value) Equal(other any) bool {
	return reflect.DeepEqual(v.Raw, other)
}
