package navigator

import (
	"reflect"

	"beanpath/errors"
	"beanpath/reflector"
)

// ObjectFactory creates the values that fill missing intermediate segments.
type ObjectFactory interface {
	// Create returns a new empty value of t.
	Create(t reflect.Type) (reflect.Value, error)
	// CreateWith returns a new value of t whose leading struct fields are set
	// from args, in order, like an unkeyed composite literal.
	CreateWith(t reflect.Type, argTypes []reflect.Type, args []reflect.Value) (reflect.Value, error)
	// IsSequence reports whether t is a slice or an array.
	IsSequence(t reflect.Type) bool
}

// DefaultObjectFactory allocates pointers, makes empty maps and slices and
// creates zero values. The empty interface is instantiated as map[string]any.
type DefaultObjectFactory struct{}

var _ ObjectFactory = DefaultObjectFactory{}

func (DefaultObjectFactory) Create(t reflect.Type) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Pointer:
		return reflect.New(t.Elem()), nil
	case reflect.Map:
		return reflect.MakeMap(t), nil
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0), nil
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return reflect.ValueOf(map[string]any{}), nil
		}
	}

	if !reflector.Constructible(t) {
		return reflect.Value{}, errors.Wrapf(errors.ErrInstantiation, "cannot create a value of %s", t)
	}

	return reflect.New(t).Elem(), nil
}

func (f DefaultObjectFactory) CreateWith(t reflect.Type, argTypes []reflect.Type, args []reflect.Value) (reflect.Value, error) {
	if len(argTypes) != len(args) {
		return reflect.Value{}, errors.Wrapf(errors.ErrInstantiation,
			"create %s: %d argument types for %d arguments", t, len(argTypes), len(args))
	}

	if len(args) == 0 {
		return f.Create(t)
	}

	structType := t
	if t.Kind() == reflect.Pointer {
		structType = t.Elem()
	}

	if structType.Kind() != reflect.Struct {
		return reflect.Value{}, errors.Wrapf(errors.ErrInstantiation, "create %s: only structs take arguments", t)
	}

	if len(args) > structType.NumField() {
		return reflect.Value{}, errors.Wrapf(errors.ErrInstantiation,
			"create %s: too many arguments, %d for %d fields", t, len(args), structType.NumField())
	}

	ptr := reflect.New(structType)
	obj := ptr.Elem()

	for i, arg := range args {
		field := structType.Field(i)

		if !field.IsExported() {
			return reflect.Value{}, errors.Wrapf(errors.ErrInstantiation,
				"create %s: field %s is not exported", t, field.Name)
		}

		if !argTypes[i].AssignableTo(field.Type) {
			return reflect.Value{}, errors.Wrapf(errors.ErrInstantiation,
				"create %s: argument %d of type %s does not fit field %s %s", t, i, argTypes[i], field.Name, field.Type)
		}

		value, err := reflector.Assign(arg, field.Type)
		if err != nil {
			return reflect.Value{}, errors.WithSecondaryError(
				errors.Wrapf(errors.ErrInstantiation, "create %s: argument %d", t, i), err)
		}

		obj.Field(i).Set(value)
	}

	if t.Kind() == reflect.Pointer {
		return ptr, nil
	}

	return obj, nil
}

func (DefaultObjectFactory) IsSequence(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}
