package navigator

import (
	"reflect"

	"beanpath/errors"
	"beanpath/property"
	"beanpath/reflector"
)

// structWrapper binds properties through the reflector of the value's type.
// It is the fallback for every value that is neither a map nor a sequence.
type structWrapper struct {
	nav    *Navigator
	object reflect.Value
	meta   *reflector.MetaClass
}

func newStructWrapper(nav *Navigator, object reflect.Value) (*structWrapper, error) {
	meta, err := reflector.ForType(object.Type(), nav.reflectors)
	if err != nil {
		return nil, err
	}

	return &structWrapper{nav: nav, object: object, meta: meta}, nil
}

func (w *structWrapper) Kind() WrapperKind { return KindStruct }

func (w *structWrapper) Get(prop *property.Tokenizer) (reflect.Value, error) {
	if !prop.HasIndex() {
		return w.getProperty(prop.Name())
	}

	collection, err := w.collection(prop)
	if err != nil {
		return reflect.Value{}, err
	}

	return collectionValue(prop, collection)
}

func (w *structWrapper) Set(prop *property.Tokenizer, value reflect.Value) error {
	if !prop.HasIndex() {
		return w.setProperty(prop.Name(), value)
	}

	collection, err := w.collection(prop)
	if err != nil {
		return err
	}

	return setCollectionValue(prop, collection, value)
}

// collection resolves the bare property of an indexed segment.
func (w *structWrapper) collection(prop *property.Tokenizer) (reflect.Value, error) {
	if prop.Name() == "" {
		return w.object, nil
	}

	return w.getProperty(prop.Name())
}

func (w *structWrapper) getProperty(name string) (reflect.Value, error) {
	inv, err := w.meta.GetInvoker(name)
	if err != nil {
		return reflect.Value{}, err
	}

	v, err := inv.Invoke(w.object)
	if err != nil {
		return reflect.Value{}, errors.Wrapf(err, "get %q from %s", name, w.object.Type())
	}

	return v, nil
}

func (w *structWrapper) setProperty(name string, value reflect.Value) error {
	inv, err := w.meta.SetInvoker(name)
	if err != nil {
		return err
	}

	if _, err := inv.Invoke(w.object, value); err != nil {
		return errors.Wrapf(err, "set %q on %s", name, w.object.Type())
	}

	return nil
}

func (w *structWrapper) FindProperty(name string, camelCase bool) (string, bool) {
	return w.meta.FindProperty(name, camelCase)
}

func (w *structWrapper) GetterNames() []string {
	return w.meta.GetterNames()
}

func (w *structWrapper) SetterNames() []string {
	return w.meta.SetterNames()
}

// GetterType follows nested paths through the live values and falls back to
// the declared types once a value is missing.
func (w *structWrapper) GetterType(name string) (reflect.Type, error) {
	tok := property.NewTokenizer(name)
	if !tok.HasNext() {
		return w.meta.GetterType(name)
	}

	child, err := w.nav.ForProperty(tok.IndexedName())
	if err != nil {
		return nil, err
	}

	if child.IsNull() {
		return w.meta.GetterType(name)
	}

	return child.GetterType(tok.Children())
}

func (w *structWrapper) SetterType(name string) (reflect.Type, error) {
	tok := property.NewTokenizer(name)
	if !tok.HasNext() {
		return w.meta.SetterType(name)
	}

	child, err := w.nav.ForProperty(tok.IndexedName())
	if err != nil {
		return nil, err
	}

	if child.IsNull() {
		return w.meta.SetterType(name)
	}

	return child.SetterType(tok.Children())
}

func (w *structWrapper) HasGetter(name string) bool {
	tok := property.NewTokenizer(name)
	if !tok.HasNext() {
		return w.meta.HasGetter(name)
	}

	if !w.meta.HasGetter(tok.IndexedName()) {
		return false
	}

	child, err := w.nav.ForProperty(tok.IndexedName())
	if err != nil {
		return false
	}

	if child.IsNull() {
		return w.meta.HasGetter(name)
	}

	return child.HasGetter(tok.Children())
}

func (w *structWrapper) HasSetter(name string) bool {
	tok := property.NewTokenizer(name)
	if !tok.HasNext() {
		return w.meta.HasSetter(name)
	}

	if !w.meta.HasSetter(tok.IndexedName()) {
		return false
	}

	child, err := w.nav.ForProperty(tok.IndexedName())
	if err != nil {
		return false
	}

	if child.IsNull() {
		return w.meta.HasSetter(name)
	}

	return child.HasSetter(tok.Children())
}

// InstantiatePropertyValue creates a value of the property's setter type, or
// of its element type for an indexed segment.
func (w *structWrapper) InstantiatePropertyValue(path string, prop *property.Tokenizer, objects ObjectFactory) (*Navigator, error) {
	t, err := w.meta.SetterType(prop.Name())
	if err != nil {
		return nil, err
	}

	if prop.HasIndex() {
		if t, err = reflector.ElementType(t); err != nil {
			return nil, err
		}
	}

	return instantiate(w.nav, w, path, prop, t, objects)
}

func (w *structWrapper) IsSequence() bool {
	return false
}

func (w *structWrapper) Append(reflect.Value) error {
	return unsupported(KindStruct, "append")
}

func (w *structWrapper) AppendAll([]reflect.Value) error {
	return unsupported(KindStruct, "append")
}

// instantiate creates a value of t, stores it at prop through w and returns a
// Navigator over the stored value.
func instantiate(nav *Navigator, w Wrapper, path string, prop *property.Tokenizer, t reflect.Type, objects ObjectFactory) (*Navigator, error) {
	obj, err := objects.Create(t)
	if err != nil {
		return nil, errors.WithDetailf(
			errors.Mark(errors.Wrapf(err, "instantiate %q for %q", prop.IndexedName(), path), errors.ErrInstantiation),
			"type: %s", t)
	}

	if err := w.Set(prop, obj); err != nil {
		return nil, err
	}

	child, err := nav.ForProperty(prop.IndexedName())
	if err != nil {
		return nil, err
	}

	if child.IsNull() {
		return nil, errors.Wrapf(errors.ErrInstantiation, "instantiated %s for %q reads back as nil", t, prop.IndexedName())
	}

	return child, nil
}
