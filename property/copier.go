package property

import (
	"reflect"

	"beanpath/errors"
)

// CopyProperties copies every exported field, including promoted ones, from src to dst.
// Both must be non-nil pointers to the same struct type. Embedded struct pointers
// are copied structurally: a nil source pointer leaves a nil destination pointer and
// a non-nil one gets a fresh copy in dst. Unexported fields are not copied, and
// an unexported embedded pointer that is nil in dst cannot be allocated, so the
// fields behind it are skipped.
func CopyProperties(src, dst any) error {
	sv, dv := reflect.ValueOf(src), reflect.ValueOf(dst)

	if sv.Kind() != reflect.Pointer || sv.IsNil() || dv.Kind() != reflect.Pointer || dv.IsNil() {
		return errors.Wrap(errors.ErrUnsupportedOperation, "copy properties: source and destination must be non-nil pointers")
	}

	if sv.Type() != dv.Type() {
		return errors.Wrapf(errors.ErrTypeMismatch, "copy properties: %s into %s", sv.Type(), dv.Type())
	}

	st := sv.Type().Elem()
	if st.Kind() != reflect.Struct {
		return errors.Wrapf(errors.ErrUnsupportedOperation, "copy properties: %s is not a struct", st)
	}

	copyStruct(sv.Elem(), dv.Elem())

	return nil
}

func copyStruct(from, to reflect.Value) {
	t := from.Type()

	for i := range t.NumField() {
		f := t.Field(i)

		if f.Anonymous {
			copyEmbedded(f, from.Field(i), to.Field(i))
			continue
		}

		if f.IsExported() && to.Field(i).CanSet() {
			to.Field(i).Set(from.Field(i))
		}
	}
}

func copyEmbedded(f reflect.StructField, from, to reflect.Value) {
	switch {
	case from.Kind() == reflect.Struct:
		copyStruct(from, to)
	case from.Kind() == reflect.Pointer && from.Type().Elem().Kind() == reflect.Struct:
		if from.IsNil() {
			if to.CanSet() {
				to.SetZero()
			}

			return
		}

		if to.CanSet() {
			to.Set(reflect.New(from.Type().Elem()))
		} else if to.IsNil() {
			return
		}

		copyStruct(from.Elem(), to.Elem())
	case f.IsExported() && to.CanSet():
		to.Set(from)
	}
}
