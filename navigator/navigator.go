package navigator

import (
	"reflect"

	"go.uber.org/zap"

	"beanpath/errors"
	"beanpath/property"
	"beanpath/reflector"
)

// Navigator resolves property paths against one wrapped value. Navigators are
// cheap and meant to be created per call; they are not safe for concurrent
// writes to the same value.
type Navigator struct {
	original   reflect.Value
	object     reflect.Value
	wrapper    Wrapper
	objects    ObjectFactory
	wrappers   WrapperFactory
	reflectors reflector.Factory
	logger     *zap.SugaredLogger
}

// Null is the Navigator of an absent value. Reads through it stop, writes through it fail.
var Null = &Navigator{wrapper: nullWrapper{}, logger: zap.NewNop().Sugar()}

// Option configures a Navigator and the children it creates.
type Option func(*Navigator)

func WithObjectFactory(objects ObjectFactory) Option {
	return func(n *Navigator) {
		if objects != nil {
			n.objects = objects
		}
	}
}

func WithWrapperFactory(wrappers WrapperFactory) Option {
	return func(n *Navigator) {
		if wrappers != nil {
			n.wrappers = wrappers
		}
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// New wraps obj. A nil obj, or a nil pointer or interface, yields Null.
// Pass a pointer to make the value writable; a pointer to a nil map or slice
// is wrapped so that writes can allocate it.
func New(obj any, reflectors reflector.Factory, opts ...Option) (*Navigator, error) {
	return ForValue(reflect.ValueOf(obj), reflectors, opts...)
}

// ForValue is New for a reflect.Value.
func ForValue(v reflect.Value, reflectors reflector.Factory, opts ...Option) (*Navigator, error) {
	if reflectors == nil {
		return nil, errors.Wrap(errors.ErrUnsupportedOperation, "navigator needs a reflector factory")
	}

	proto := &Navigator{
		objects:    DefaultObjectFactory{},
		wrappers:   DefaultWrapperFactory{},
		reflectors: reflectors,
		logger:     zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(proto)
	}

	object := indirect(v)
	if !object.IsValid() {
		return Null, nil
	}

	if reflector.IsAbsent(object) && !object.CanSet() {
		return Null, nil
	}

	return proto.wrap(v, object)
}

// ForObject wraps obj with the default factories and a reflector cache of its own.
func ForObject(obj any) (*Navigator, error) {
	return New(obj, reflector.NewFactory())
}

// child wraps a value read from this navigator. Absent values yield Null.
func (n *Navigator) child(v reflect.Value) (*Navigator, error) {
	if reflector.IsAbsent(v) {
		return Null, nil
	}

	object := indirect(v)
	if !object.IsValid() || reflector.IsAbsent(object) {
		return Null, nil
	}

	return n.wrap(v, object)
}

func (n *Navigator) wrap(original, object reflect.Value) (*Navigator, error) {
	nav := &Navigator{
		original:   original,
		object:     object,
		objects:    n.objects,
		wrappers:   n.wrappers,
		reflectors: n.reflectors,
		logger:     n.logger,
	}

	wrapper, err := nav.selectWrapper()
	if err != nil {
		return nil, err
	}

	nav.wrapper = wrapper

	return nav, nil
}

func (n *Navigator) selectWrapper() (Wrapper, error) {
	if n.original.CanInterface() {
		if w, ok := n.original.Interface().(Wrapper); ok {
			return w, nil
		}
	}

	if n.wrappers.HasWrapperFor(n.object) {
		return n.wrappers.WrapperFor(n, n.object)
	}

	switch Dispatch(n.object) {
	case KindMap:
		return newMapWrapper(n, n.object), nil
	case KindSlice:
		return newSliceWrapper(n, n.object), nil
	default:
		return newStructWrapper(n, n.object)
	}
}

// IsNull reports whether the navigator wraps no value.
func (n *Navigator) IsNull() bool {
	return n == Null || n.wrapper == nil || n.wrapper.Kind() == KindNull
}

// Original returns the wrapped value as passed in, nil for Null.
func (n *Navigator) Original() any {
	if !n.original.IsValid() || !n.original.CanInterface() {
		return nil
	}

	return n.original.Interface()
}

// Value returns the wrapped value with pointers and interfaces removed.
func (n *Navigator) Value() reflect.Value {
	return n.object
}

func (n *Navigator) Wrapper() Wrapper {
	return n.wrapper
}

func (n *Navigator) ObjectFactory() ObjectFactory {
	return n.objects
}

func (n *Navigator) WrapperFactory() WrapperFactory {
	return n.wrappers
}

func (n *Navigator) ReflectorFactory() reflector.Factory {
	return n.reflectors
}

// GetValue reads the value at path. It returns nil when an intermediate value is absent.
func (n *Navigator) GetValue(path string) (any, error) {
	v, err := n.Get(path)
	if err != nil || !v.IsValid() {
		return nil, err
	}

	if !v.CanInterface() {
		return nil, errors.Wrapf(errors.ErrUnsupportedOperation, "value at %q is not exported", path)
	}

	return v.Interface(), nil
}

// Get is GetValue returning the reflect.Value, which is invalid when absent.
// Values read from addressable containers stay addressable.
func (n *Navigator) Get(path string) (reflect.Value, error) {
	tok := property.NewTokenizer(path)

	if !tok.HasNext() {
		return n.wrapper.Get(tok)
	}

	child, err := n.ForProperty(tok.IndexedName())
	if err != nil {
		return reflect.Value{}, err
	}

	if child.IsNull() {
		return reflect.Value{}, nil
	}

	return child.Get(tok.Children())
}

// SetValue writes value at path, creating missing intermediate values. Writing
// nil below a missing intermediate value does nothing. A failed write may
// leave already created intermediate values in place.
func (n *Navigator) SetValue(path string, value any) error {
	return n.Set(path, reflect.ValueOf(value))
}

// Set is SetValue taking a reflect.Value; an invalid value stands for nil.
func (n *Navigator) Set(path string, value reflect.Value) error {
	tok := property.NewTokenizer(path)

	if !tok.HasNext() {
		return n.wrapper.Set(tok, value)
	}

	child, err := n.ForProperty(tok.IndexedName())
	if err != nil {
		return err
	}

	if child.IsNull() {
		if reflector.IsAbsent(value) {
			return nil
		}

		n.logger.Debugw("Instantiating missing value", "path", path, "segment", tok.IndexedName())

		child, err = n.wrapper.InstantiatePropertyValue(path, tok, n.objects)
		if err != nil {
			return err
		}
	}

	return child.Set(tok.Children(), value)
}

// ForProperty returns a Navigator over the value of one segment, Null when it is absent.
func (n *Navigator) ForProperty(name string) (*Navigator, error) {
	v, err := n.Get(name)
	if err != nil {
		return nil, err
	}

	return n.child(v)
}

func (n *Navigator) FindProperty(name string, camelCase bool) (string, bool) {
	return n.wrapper.FindProperty(name, camelCase)
}

func (n *Navigator) GetterNames() []string {
	return n.wrapper.GetterNames()
}

func (n *Navigator) SetterNames() []string {
	return n.wrapper.SetterNames()
}

func (n *Navigator) GetterType(name string) (reflect.Type, error) {
	return n.wrapper.GetterType(name)
}

func (n *Navigator) SetterType(name string) (reflect.Type, error) {
	return n.wrapper.SetterType(name)
}

func (n *Navigator) HasGetter(name string) bool {
	return n.wrapper.HasGetter(name)
}

func (n *Navigator) HasSetter(name string) bool {
	return n.wrapper.HasSetter(name)
}

func (n *Navigator) IsSequence() bool {
	return n.wrapper.IsSequence()
}

func (n *Navigator) Append(value any) error {
	return n.wrapper.Append(reflect.ValueOf(value))
}

func (n *Navigator) AppendAll(values ...any) error {
	vs := make([]reflect.Value, len(values))
	for i, v := range values {
		vs[i] = reflect.ValueOf(v)
	}

	return n.wrapper.AppendAll(vs)
}
