package navigator

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"beanpath/errors"
	"beanpath/property"
	"beanpath/reflector"
	"beanpath/utils"
)

// Wrapper reads and writes the properties of one wrapped value.
// Segments passed to Get, Set and InstantiatePropertyValue have no children;
// names passed to the type and accessor queries may be nested paths.
type Wrapper interface {
	Kind() WrapperKind

	Get(prop *property.Tokenizer) (reflect.Value, error)
	Set(prop *property.Tokenizer, value reflect.Value) error

	FindProperty(name string, camelCase bool) (string, bool)
	GetterNames() []string
	SetterNames() []string
	GetterType(name string) (reflect.Type, error)
	SetterType(name string) (reflect.Type, error)
	HasGetter(name string) bool
	HasSetter(name string) bool

	// InstantiatePropertyValue creates the missing value of segment prop,
	// stores it and returns a Navigator over the stored value. path is the
	// full path being written.
	InstantiatePropertyValue(path string, prop *property.Tokenizer, objects ObjectFactory) (*Navigator, error)

	IsSequence() bool
	Append(value reflect.Value) error
	AppendAll(values []reflect.Value) error
}

// indirect dereferences pointers and interfaces. Nil ones yield an invalid value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}

// collectionValue reads the element at the segment index of a map, slice or array.
func collectionValue(prop *property.Tokenizer, collection reflect.Value) (reflect.Value, error) {
	coll := indirect(collection)

	switch Dispatch(coll) {
	case KindMap:
		key, err := mapKey(coll.Type(), prop.Index())
		if err != nil {
			return reflect.Value{}, err
		}

		return coll.MapIndex(key), nil
	case KindSlice:
		i, err := sequenceIndex(prop.Index(), coll.Len())
		if err != nil {
			return reflect.Value{}, err
		}

		return coll.Index(i), nil
	default:
		return reflect.Value{}, notACollection(prop, collection)
	}
}

// setCollectionValue writes the element at the segment index of a map, slice
// or array. A nil map is allocated when it can be set.
func setCollectionValue(prop *property.Tokenizer, collection, value reflect.Value) error {
	coll := indirect(collection)

	switch Dispatch(coll) {
	case KindMap:
		return setMapValue(coll, prop.Index(), value)
	case KindSlice:
		i, err := sequenceIndex(prop.Index(), coll.Len())
		if err != nil {
			return err
		}

		return setElement(coll, i, value)
	default:
		return notACollection(prop, collection)
	}
}

func setMapValue(m reflect.Value, name string, value reflect.Value) error {
	key, err := mapKey(m.Type(), name)
	if err != nil {
		return err
	}

	elem, err := reflector.Assign(value, m.Type().Elem())
	if err != nil {
		return errors.Wrapf(err, "set key %q", name)
	}

	if m.IsNil() {
		if !m.CanSet() {
			return errors.Wrapf(errors.ErrNotAddressable, "cannot allocate nil %s", m.Type())
		}

		m.Set(reflect.MakeMap(m.Type()))
	}

	m.SetMapIndex(key, elem)

	return nil
}

func setElement(seq reflect.Value, i int, value reflect.Value) error {
	elem, err := reflector.Assign(value, seq.Type().Elem())
	if err != nil {
		return errors.Wrapf(err, "set index %d", i)
	}

	target := seq.Index(i)
	if !target.CanSet() {
		return errors.Wrapf(errors.ErrNotAddressable, "cannot set index %d of %s", i, seq.Type())
	}

	target.Set(elem)

	return nil
}

// mapKey converts a segment into a key of the map type. Keys are used verbatim:
// only string kinds and interfaces accepting a string qualify.
func mapKey(mapType reflect.Type, name string) (reflect.Value, error) {
	keyType := mapType.Key()

	switch {
	case keyType.Kind() == reflect.String:
		return reflect.ValueOf(name).Convert(keyType), nil
	case keyType.Kind() == reflect.Interface && reflect.TypeFor[string]().AssignableTo(keyType):
		return reflect.ValueOf(name), nil
	default:
		return reflect.Value{}, errors.Wrapf(errors.ErrTypeMismatch, "key %q cannot index %s", name, mapType)
	}
}

// sequenceIndex parses an index and checks it against the sequence length.
// A malformed index keeps its strconv cause and is marked ErrIndexOutOfBounds.
func sequenceIndex(index string, length int) (int, error) {
	i, err := strconv.Atoi(index)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "index %q is not an integer", index), errors.ErrIndexOutOfBounds)
	}

	if !utils.IsInRange(0, i, length-1) {
		return 0, errors.Wrapf(errors.ErrIndexOutOfBounds, "index %d out of range [0:%d]", i, length)
	}

	return i, nil
}

// mapKeys returns the keys of a map as sorted strings.
func mapKeys(m reflect.Value) []string {
	names := make([]string, 0, m.Len())

	for _, key := range m.MapKeys() {
		if key.Kind() == reflect.String {
			names = append(names, key.String())
			continue
		}

		names = append(names, fmt.Sprint(key.Interface()))
	}

	slices.Sort(names)

	return names
}

func notACollection(prop *property.Tokenizer, v reflect.Value) error {
	if !v.IsValid() || reflector.IsAbsent(v) {
		return errors.Wrapf(errors.ErrNotACollection, "cannot index %q: value is nil", prop.IndexedName())
	}

	return errors.Wrapf(errors.ErrNotACollection, "cannot index %q: %s is neither a map nor a sequence",
		prop.IndexedName(), v.Type())
}

func unsupported(kind WrapperKind, op string) error {
	return errors.Wrapf(errors.ErrUnsupportedOperation, "%s is not supported by the %s wrapper", op, kind)
}
