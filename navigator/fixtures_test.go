package navigator

import (
	"reflect"
	"strings"

	"beanpath/errors"
	"beanpath/property"
)

type Address struct {
	City string
	Zip  string
}

type Customer struct {
	name    string
	Address *Address
}

func (c *Customer) GetName() string { return c.name }

func (c *Customer) SetName(name string) { c.name = strings.TrimSpace(name) }

type Item struct {
	Name  string
	Price float64
}

type Room struct {
	Size int
}

type Handler interface {
	Handle() error
}

type Order struct {
	Items    []Item
	Lines    []*Item
	Customer *Customer
	Notes    map[string]string
	Attrs    map[string]any
	Rooms    map[string]Room
	Tags     []string
	Dims     [2]int
	Payload  any
	Handler  Handler
	Total    float64
	ShipTo   string
}

type Holder struct {
	M map[string]any
}

// Settings is navigated through settingsWrapper only.
type Settings struct {
	values map[string]string
}

type App struct {
	Settings *Settings
}

type settingsFactory struct{}

func (settingsFactory) HasWrapperFor(v reflect.Value) bool {
	return v.Type() == reflect.TypeFor[Settings]()
}

func (settingsFactory) WrapperFor(_ *Navigator, v reflect.Value) (Wrapper, error) {
	if !v.CanAddr() {
		return nil, errors.Wrap(errors.ErrNotAddressable, "settings must be addressable")
	}

	return &settingsWrapper{s: v.Addr().Interface().(*Settings)}, nil
}

type settingsWrapper struct {
	s *Settings
}

func (w *settingsWrapper) Kind() WrapperKind { return KindCustom }

func (w *settingsWrapper) Get(prop *property.Tokenizer) (reflect.Value, error) {
	v, ok := w.s.values[prop.Name()]
	if !ok {
		return reflect.Value{}, nil
	}

	return reflect.ValueOf(v), nil
}

func (w *settingsWrapper) Set(prop *property.Tokenizer, value reflect.Value) error {
	if w.s.values == nil {
		w.s.values = map[string]string{}
	}

	w.s.values[prop.Name()] = value.String()

	return nil
}

func (w *settingsWrapper) FindProperty(name string, _ bool) (string, bool) { return name, true }
func (w *settingsWrapper) GetterNames() []string                           { return nil }
func (w *settingsWrapper) SetterNames() []string                           { return nil }
func (w *settingsWrapper) HasGetter(name string) bool                      { return w.s.values[name] != "" }
func (w *settingsWrapper) HasSetter(string) bool                           { return true }
func (w *settingsWrapper) IsSequence() bool                                { return false }
func (w *settingsWrapper) Append(reflect.Value) error                      { return nil }
func (w *settingsWrapper) AppendAll([]reflect.Value) error                 { return nil }

func (w *settingsWrapper) GetterType(string) (reflect.Type, error) {
	return reflect.TypeFor[string](), nil
}

func (w *settingsWrapper) SetterType(string) (reflect.Type, error) {
	return reflect.TypeFor[string](), nil
}

func (w *settingsWrapper) InstantiatePropertyValue(string, *property.Tokenizer, ObjectFactory) (*Navigator, error) {
	return nil, errors.Wrap(errors.ErrUnsupportedOperation, "settings are flat")
}
