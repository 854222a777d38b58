package navigator

import (
	"reflect"

	"beanpath/property"
	"beanpath/reflector"
)

// mapWrapper treats the keys of a map as its properties. Keys are dynamic, so
// every name can be set and types come from the stored values.
type mapWrapper struct {
	nav *Navigator
	m   reflect.Value
}

func newMapWrapper(nav *Navigator, m reflect.Value) *mapWrapper {
	return &mapWrapper{nav: nav, m: m}
}

func (w *mapWrapper) Kind() WrapperKind { return KindMap }

func (w *mapWrapper) Get(prop *property.Tokenizer) (reflect.Value, error) {
	if !prop.HasIndex() {
		return w.lookup(prop.Name())
	}

	collection, err := w.collection(prop)
	if err != nil {
		return reflect.Value{}, err
	}

	return collectionValue(prop, collection)
}

func (w *mapWrapper) Set(prop *property.Tokenizer, value reflect.Value) error {
	if !prop.HasIndex() {
		return setMapValue(w.m, prop.Name(), value)
	}

	collection, err := w.collection(prop)
	if err != nil {
		return err
	}

	return setCollectionValue(prop, collection, value)
}

func (w *mapWrapper) collection(prop *property.Tokenizer) (reflect.Value, error) {
	if prop.Name() == "" {
		return w.m, nil
	}

	return w.lookup(prop.Name())
}

func (w *mapWrapper) lookup(name string) (reflect.Value, error) {
	key, err := mapKey(w.m.Type(), name)
	if err != nil {
		return reflect.Value{}, err
	}

	return w.m.MapIndex(key), nil
}

// FindProperty returns name unchanged: any key is a property.
func (w *mapWrapper) FindProperty(name string, _ bool) (string, bool) {
	return name, true
}

func (w *mapWrapper) GetterNames() []string {
	return mapKeys(w.m)
}

func (w *mapWrapper) SetterNames() []string {
	return mapKeys(w.m)
}

// GetterType is the dynamic type of the stored value, the element type when
// the key is missing, and any below a missing intermediate value.
func (w *mapWrapper) GetterType(name string) (reflect.Type, error) {
	return w.valueType(name, (*Navigator).GetterType)
}

func (w *mapWrapper) SetterType(name string) (reflect.Type, error) {
	return w.valueType(name, (*Navigator).SetterType)
}

func (w *mapWrapper) valueType(name string, nested func(*Navigator, string) (reflect.Type, error)) (reflect.Type, error) {
	tok := property.NewTokenizer(name)

	if tok.HasNext() {
		child, err := w.nav.ForProperty(tok.IndexedName())
		if err != nil {
			return nil, err
		}

		if child.IsNull() {
			return reflect.TypeFor[any](), nil
		}

		return nested(child, tok.Children())
	}

	v, err := w.Get(tok)
	if err != nil {
		return nil, err
	}

	if v = indirectInterface(v); reflector.IsAbsent(v) {
		if tok.HasIndex() {
			return reflect.TypeFor[any](), nil
		}

		return w.m.Type().Elem(), nil
	}

	return v.Type(), nil
}

// HasGetter reports whether the key exists; nested paths below a missing
// value count as readable.
func (w *mapWrapper) HasGetter(name string) bool {
	tok := property.NewTokenizer(name)

	v, err := w.lookup(tok.Name())
	if err != nil || !v.IsValid() {
		return false
	}

	if !tok.HasNext() {
		return true
	}

	child, err := w.nav.ForProperty(tok.IndexedName())
	if err != nil {
		return false
	}

	if child.IsNull() {
		return true
	}

	return child.HasGetter(tok.Children())
}

// HasSetter is always true: any key can be written.
func (w *mapWrapper) HasSetter(string) bool {
	return true
}

// InstantiatePropertyValue stores a new value of the map's element type, or a
// map[string]any when elements are untyped.
func (w *mapWrapper) InstantiatePropertyValue(path string, prop *property.Tokenizer, objects ObjectFactory) (*Navigator, error) {
	t := w.m.Type().Elem()

	if prop.HasIndex() {
		collection, err := w.collection(prop)
		if err != nil {
			return nil, err
		}

		if coll := indirect(collection); coll.IsValid() {
			if t, err = reflector.ElementType(coll.Type()); err != nil {
				return nil, err
			}
		}
	}

	return instantiate(w.nav, w, path, prop, t, objects)
}

func (w *mapWrapper) IsSequence() bool {
	return false
}

func (w *mapWrapper) Append(reflect.Value) error {
	return unsupported(KindMap, "append")
}

func (w *mapWrapper) AppendAll([]reflect.Value) error {
	return unsupported(KindMap, "append")
}

// indirectInterface unwraps a non-nil interface value to its dynamic value.
func indirectInterface(v reflect.Value) reflect.Value {
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem()
	}

	return v
}
