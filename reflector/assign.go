package reflector

import (
	"reflect"

	"beanpath/errors"
)

// Nillable reports whether nil is a valid value of t.
func Nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// IsAbsent reports whether v holds no value: it is invalid or a nil of a nillable type.
func IsAbsent(v reflect.Value) bool {
	return !v.IsValid() || Nillable(v.Type()) && v.IsNil()
}

// Assign returns v as a value usable where t is expected. Absent values become
// the zero value of nillable types. No conversion is attempted: a value whose
// type is not assignable to t is an ErrTypeMismatch.
func Assign(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		if Nillable(t) {
			return reflect.Zero(t), nil
		}

		return reflect.Value{}, errors.Wrapf(errors.ErrTypeMismatch, "nil is not assignable to %s", t)
	}

	if v.Type().AssignableTo(t) {
		return v, nil
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Assign(reflect.Value{}, t)
		}

		return Assign(v.Elem(), t)
	}

	return reflect.Value{}, errors.Wrapf(errors.ErrTypeMismatch, "%s is not assignable to %s", v.Type(), t)
}
