package reflector

import (
	"reflect"
	"strings"

	"beanpath/errors"
	"beanpath/internal/match"
	"beanpath/property"
)

// MetaClass navigates property paths over types, without any instance.
type MetaClass struct {
	factory   Factory
	reflector *Reflector
}

// ForType returns the MetaClass of t, introspected through factory.
func ForType(t reflect.Type, factory Factory) (*MetaClass, error) {
	r, err := factory.FindForType(t)
	if err != nil {
		return nil, err
	}

	return &MetaClass{factory: factory, reflector: r}, nil
}

func (m *MetaClass) Type() reflect.Type {
	return m.reflector.Type()
}

func (m *MetaClass) Reflector() *Reflector {
	return m.reflector
}

// ForProperty returns the MetaClass of the type a property reads as.
func (m *MetaClass) ForProperty(name string) (*MetaClass, error) {
	t, err := m.reflector.GetterType(name)
	if err != nil {
		return nil, err
	}

	return ForType(t, m.factory)
}

// FindProperty resolves a dotted path case-insensitively to known property
// names, "ORDER.customer.NAME" -> "order.customer.name". With camelCase the
// separators are stripped first, so "total_cents" finds "totalCents".
// Indexes are dropped from the result.
func (m *MetaClass) FindProperty(name string, camelCase bool) (string, bool) {
	if camelCase {
		name = match.StripSeparators(name)
	}

	var parts []string

	cur := m
	for tok := property.NewTokenizer(name); tok != nil; tok = tok.Next() {
		prop, ok := cur.reflector.FindPropertyName(tok.Name())
		if !ok {
			return "", false
		}

		parts = append(parts, prop)

		if !tok.HasNext() {
			break
		}

		next, err := cur.child(prop, tok.HasIndex())
		if err != nil {
			return "", false
		}

		cur = next
	}

	return strings.Join(parts, "."), len(parts) > 0
}

func (m *MetaClass) GetterNames() []string {
	return m.reflector.GetablePropertyNames()
}

func (m *MetaClass) SetterNames() []string {
	return m.reflector.SetablePropertyNames()
}

// GetterType returns the type the path reads as. An indexed segment reads as
// the element type of its slice, array or map.
func (m *MetaClass) GetterType(path string) (reflect.Type, error) {
	tok := property.NewTokenizer(path)

	if !tok.HasNext() {
		return m.segmentType(tok.Name(), tok.HasIndex(), m.reflector.GetterType)
	}

	child, err := m.child(tok.Name(), tok.HasIndex())
	if err != nil {
		return nil, err
	}

	return child.GetterType(tok.Children())
}

// SetterType returns the type the path is written as. Intermediate segments
// are followed through their getter types.
func (m *MetaClass) SetterType(path string) (reflect.Type, error) {
	tok := property.NewTokenizer(path)

	if !tok.HasNext() {
		return m.segmentType(tok.Name(), tok.HasIndex(), m.reflector.SetterType)
	}

	child, err := m.child(tok.Name(), tok.HasIndex())
	if err != nil {
		return nil, err
	}

	return child.SetterType(tok.Children())
}

func (m *MetaClass) HasGetter(path string) bool {
	tok := property.NewTokenizer(path)

	if !m.reflector.HasGetter(tok.Name()) {
		return false
	}

	if !tok.HasNext() {
		return true
	}

	child, err := m.child(tok.Name(), tok.HasIndex())
	if err != nil {
		return false
	}

	return child.HasGetter(tok.Children())
}

func (m *MetaClass) HasSetter(path string) bool {
	tok := property.NewTokenizer(path)

	if !tok.HasNext() {
		return m.reflector.HasSetter(tok.Name())
	}

	if !m.reflector.HasGetter(tok.Name()) {
		return false
	}

	child, err := m.child(tok.Name(), tok.HasIndex())
	if err != nil {
		return false
	}

	return child.HasSetter(tok.Children())
}

func (m *MetaClass) GetInvoker(name string) (Invoker, error) {
	return m.reflector.GetInvoker(name)
}

func (m *MetaClass) SetInvoker(name string) (Invoker, error) {
	return m.reflector.SetInvoker(name)
}

func (m *MetaClass) HasDefaultConstructor() bool {
	return m.reflector.HasDefaultConstructor()
}

// child returns the MetaClass of a segment's getter type.
func (m *MetaClass) child(name string, indexed bool) (*MetaClass, error) {
	t, err := m.segmentType(name, indexed, m.reflector.GetterType)
	if err != nil {
		return nil, err
	}

	return ForType(t, m.factory)
}

func (m *MetaClass) segmentType(name string, indexed bool, lookup func(string) (reflect.Type, error)) (reflect.Type, error) {
	t, err := lookup(name)
	if err != nil || !indexed {
		return t, err
	}

	return ElementType(t)
}

// ElementType returns the element type of a slice, array or map, looking
// through pointers.
func ElementType(t reflect.Type) (reflect.Type, error) {
	base := t
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	switch base.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return base.Elem(), nil
	default:
		return nil, errors.Wrapf(errors.ErrNotACollection, "%s has no elements", t)
	}
}
