package navigator

import (
	"reflect"

	"beanpath/errors"
	"beanpath/property"
)

// nullWrapper backs Null: it has no properties and refuses every access.
type nullWrapper struct{}

func (nullWrapper) Kind() WrapperKind { return KindNull }

func (nullWrapper) Get(prop *property.Tokenizer) (reflect.Value, error) {
	return reflect.Value{}, errors.Wrapf(errors.ErrMissingAccessor, "cannot read %q of a nil value", prop.IndexedName())
}

func (nullWrapper) Set(prop *property.Tokenizer, _ reflect.Value) error {
	return errors.Wrapf(errors.ErrMissingAccessor, "cannot write %q of a nil value", prop.IndexedName())
}

func (nullWrapper) FindProperty(string, bool) (string, bool) { return "", false }
func (nullWrapper) GetterNames() []string                     { return nil }
func (nullWrapper) SetterNames() []string                     { return nil }
func (nullWrapper) HasGetter(string) bool                     { return false }
func (nullWrapper) HasSetter(string) bool                     { return false }
func (nullWrapper) IsSequence() bool                          { return false }

func (nullWrapper) GetterType(name string) (reflect.Type, error) {
	return nil, errors.Wrapf(errors.ErrMissingAccessor, "no getter for %q of a nil value", name)
}

func (nullWrapper) SetterType(name string) (reflect.Type, error) {
	return nil, errors.Wrapf(errors.ErrMissingAccessor, "no setter for %q of a nil value", name)
}

func (nullWrapper) InstantiatePropertyValue(string, *property.Tokenizer, ObjectFactory) (*Navigator, error) {
	return nil, unsupported(KindNull, "instantiation")
}

func (nullWrapper) Append(reflect.Value) error {
	return unsupported(KindNull, "append")
}

func (nullWrapper) AppendAll([]reflect.Value) error {
	return unsupported(KindNull, "append")
}
