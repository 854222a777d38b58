package navigator

import (
	"reflect"

	"beanpath/errors"
)

// WrapperFactory provides custom wrappers for values the built-in ones should not handle.
// It is consulted before the map, slice and struct wrappers.
type WrapperFactory interface {
	HasWrapperFor(v reflect.Value) bool
	WrapperFor(nav *Navigator, v reflect.Value) (Wrapper, error)
}

// DefaultWrapperFactory has no custom wrappers.
type DefaultWrapperFactory struct{}

var _ WrapperFactory = DefaultWrapperFactory{}

func (DefaultWrapperFactory) HasWrapperFor(reflect.Value) bool {
	return false
}

func (DefaultWrapperFactory) WrapperFor(_ *Navigator, v reflect.Value) (Wrapper, error) {
	return nil, errors.Wrapf(errors.ErrUnsupportedOperation, "no custom wrapper for %s", v.Type())
}
