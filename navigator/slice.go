package navigator

import (
	"reflect"

	"beanpath/errors"
	"beanpath/property"
	"beanpath/reflector"
)

// sliceWrapper indexes slices and arrays by integer. Sequences have no named
// properties.
type sliceWrapper struct {
	nav *Navigator
	seq reflect.Value
}

func newSliceWrapper(nav *Navigator, seq reflect.Value) *sliceWrapper {
	return &sliceWrapper{nav: nav, seq: seq}
}

func (w *sliceWrapper) Kind() WrapperKind { return KindSlice }

// index takes the position from "[2]" or from a bare "2".
func (w *sliceWrapper) index(prop *property.Tokenizer) (int, error) {
	raw := prop.Name()

	if prop.HasIndex() {
		if prop.Name() != "" {
			return 0, errors.Wrapf(errors.ErrUnsupportedOperation,
				"a sequence has no property %q", prop.Name())
		}

		raw = prop.Index()
	}

	return sequenceIndex(raw, w.seq.Len())
}

func (w *sliceWrapper) Get(prop *property.Tokenizer) (reflect.Value, error) {
	i, err := w.index(prop)
	if err != nil {
		return reflect.Value{}, err
	}

	return w.seq.Index(i), nil
}

func (w *sliceWrapper) Set(prop *property.Tokenizer, value reflect.Value) error {
	i, err := w.index(prop)
	if err != nil {
		return err
	}

	return setElement(w.seq, i, value)
}

func (w *sliceWrapper) FindProperty(string, bool) (string, bool) {
	return "", false
}

func (w *sliceWrapper) GetterNames() []string {
	return []string{}
}

func (w *sliceWrapper) SetterNames() []string {
	return []string{}
}

func (w *sliceWrapper) GetterType(string) (reflect.Type, error) {
	return nil, unsupported(KindSlice, "getter type")
}

func (w *sliceWrapper) SetterType(string) (reflect.Type, error) {
	return nil, unsupported(KindSlice, "setter type")
}

func (w *sliceWrapper) HasGetter(string) bool {
	return false
}

func (w *sliceWrapper) HasSetter(string) bool {
	return false
}

// InstantiatePropertyValue fills a nil element with a new value of the element type.
func (w *sliceWrapper) InstantiatePropertyValue(path string, prop *property.Tokenizer, objects ObjectFactory) (*Navigator, error) {
	return instantiate(w.nav, w, path, prop, w.seq.Type().Elem(), objects)
}

func (w *sliceWrapper) IsSequence() bool {
	return true
}

func (w *sliceWrapper) Append(value reflect.Value) error {
	return w.AppendAll([]reflect.Value{value})
}

// AppendAll appends in place; the slice must be addressable. Nothing is
// appended when one of the values does not fit the element type.
func (w *sliceWrapper) AppendAll(values []reflect.Value) error {
	if w.seq.Kind() != reflect.Slice {
		return errors.Wrapf(errors.ErrUnsupportedOperation, "cannot append to %s", w.seq.Type())
	}

	if !w.seq.CanSet() {
		return errors.Wrapf(errors.ErrNotAddressable, "cannot append to a non-addressable %s", w.seq.Type())
	}

	elems := make([]reflect.Value, len(values))

	for i, v := range values {
		elem, err := reflector.Assign(v, w.seq.Type().Elem())
		if err != nil {
			return errors.Wrapf(err, "append element %d", i)
		}

		elems[i] = elem
	}

	w.seq.Set(reflect.Append(w.seq, elems...))

	return nil
}
