package reflector

import (
	"reflect"

	"beanpath/errors"
	"beanpath/internal/common"
)

// AccessorKind tells how a property is bound.
type AccessorKind int

const (
	AccessorField AccessorKind = iota
	AccessorMethod
)

func (k AccessorKind) String() string {
	switch k {
	case AccessorField:
		return "field"
	case AccessorMethod:
		return "method"
	default:
		return common.UnknownStr
	}
}

// Invoker is an accessor bound to a property of one type.
//
// Getters are invoked with the target only and return the property value,
// which is invalid when the value cannot be reached (for example through a nil
// embedded pointer). Setters are invoked with the target and the new value and
// return an invalid value. The target must be a value of the introspected type,
// not a pointer to it; it must be addressable for setters.
type Invoker interface {
	Property() string
	Kind() AccessorKind
	// Type is the declared property type.
	Type() reflect.Type
	Invoke(target reflect.Value, args ...reflect.Value) (reflect.Value, error)
}

var errorType = reflect.TypeFor[error]()

// GetFieldInvoker reads an exported field, possibly promoted through embedded structs.
type GetFieldInvoker struct {
	prop  string
	index []int
	typ   reflect.Type
}

func (i *GetFieldInvoker) Property() string   { return i.prop }
func (i *GetFieldInvoker) Kind() AccessorKind { return AccessorField }
func (i *GetFieldInvoker) Type() reflect.Type { return i.typ }

func (i *GetFieldInvoker) Invoke(target reflect.Value, _ ...reflect.Value) (reflect.Value, error) {
	owner, err := embedded(target, i.index[:len(i.index)-1], false)
	if err != nil || !owner.IsValid() {
		return reflect.Value{}, err
	}

	return owner.Field(i.index[len(i.index)-1]), nil
}

// SetFieldInvoker writes an exported field. Nil embedded pointers on the way
// to the field are allocated.
type SetFieldInvoker struct {
	prop  string
	index []int
	typ   reflect.Type
}

func (i *SetFieldInvoker) Property() string   { return i.prop }
func (i *SetFieldInvoker) Kind() AccessorKind { return AccessorField }
func (i *SetFieldInvoker) Type() reflect.Type { return i.typ }

func (i *SetFieldInvoker) Invoke(target reflect.Value, args ...reflect.Value) (reflect.Value, error) {
	value, err := singleArg(i.prop, i.typ, args)
	if err != nil {
		return reflect.Value{}, err
	}

	owner, err := embedded(target, i.index[:len(i.index)-1], true)
	if err != nil {
		return reflect.Value{}, err
	}

	field := owner.Field(i.index[len(i.index)-1])
	if !field.CanSet() {
		return reflect.Value{}, errors.Wrapf(errors.ErrNotAddressable, "cannot set field %q of %s", i.prop, target.Type())
	}

	field.Set(value)

	return reflect.Value{}, nil
}

// MethodInvoker calls a Get, Is or Set method, declared on the target type or
// on one of its embedded fields. A trailing error result is returned as the error.
type MethodInvoker struct {
	prop     string
	name     string
	path     []int
	typ      reflect.Type
	setter   bool
	hasError bool
}

func (i *MethodInvoker) Property() string   { return i.prop }
func (i *MethodInvoker) Kind() AccessorKind { return AccessorMethod }
func (i *MethodInvoker) Type() reflect.Type { return i.typ }

// Name is the method name.
func (i *MethodInvoker) Name() string { return i.name }

func (i *MethodInvoker) Invoke(target reflect.Value, args ...reflect.Value) (reflect.Value, error) {
	var in []reflect.Value

	if i.setter {
		value, err := singleArg(i.prop, i.typ, args)
		if err != nil {
			return reflect.Value{}, err
		}

		in = []reflect.Value{value}
	}

	receiver, err := embedded(target, i.path, i.setter)
	if err != nil {
		return reflect.Value{}, err
	}

	if !receiver.IsValid() || receiver.Kind() == reflect.Interface && receiver.IsNil() {
		if i.setter {
			return reflect.Value{}, errors.Wrapf(errors.ErrMissingAccessor,
				"cannot call %s on %s: embedded interface is nil", i.name, target.Type())
		}

		return reflect.Value{}, nil
	}

	fn, err := i.method(receiver)
	if err != nil {
		return reflect.Value{}, err
	}

	out := fn.Call(in)

	if i.hasError {
		if errValue := out[len(out)-1]; !errValue.IsNil() {
			return reflect.Value{}, errors.Wrapf(errValue.Interface().(error), "%s.%s", target.Type(), i.name)
		}
	}

	if i.setter {
		return reflect.Value{}, nil
	}

	return out[0], nil
}

// method binds the method to receiver. Getters on a value that is not
// addressable run on a copy, setters fail.
func (i *MethodInvoker) method(receiver reflect.Value) (reflect.Value, error) {
	switch {
	case receiver.Kind() == reflect.Interface:
		return receiver.MethodByName(i.name), nil
	case receiver.CanAddr():
		return receiver.Addr().MethodByName(i.name), nil
	case i.setter:
		return reflect.Value{}, errors.Wrapf(errors.ErrNotAddressable,
			"cannot call %s on a non-addressable %s", i.name, receiver.Type())
	}

	cp := reflect.New(receiver.Type())
	cp.Elem().Set(receiver)

	return cp.MethodByName(i.name), nil
}

// embedded follows a path of embedded fields from target, dereferencing
// pointers. A nil pointer is allocated when alloc is set and yields an invalid
// value otherwise. An interface ends the path.
func embedded(target reflect.Value, path []int, alloc bool) (reflect.Value, error) {
	v := target

	for _, idx := range path {
		v = v.Field(idx)

		switch v.Kind() {
		case reflect.Pointer:
			if v.IsNil() {
				if !alloc {
					return reflect.Value{}, nil
				}

				if !v.CanSet() {
					return reflect.Value{}, errors.Wrapf(errors.ErrNotAddressable,
						"cannot allocate embedded %s in %s", v.Type(), target.Type())
				}

				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		case reflect.Interface:
			return v, nil
		}
	}

	return v, nil
}

func singleArg(prop string, typ reflect.Type, args []reflect.Value) (reflect.Value, error) {
	if len(args) != 1 {
		return reflect.Value{}, errors.Wrapf(errors.ErrUnsupportedOperation,
			"setter of %q takes one argument, got %d", prop, len(args))
	}

	return Assign(args[0], typ)
}
