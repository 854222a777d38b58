package reflector

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"beanpath/errors"
	"beanpath/internal/match"
	"beanpath/property"
)

// maxSuggestions bounds the "did you mean" hint of a missing property.
const maxSuggestions = 3

// Reflector is the introspection record of one type: its readable and writable
// properties and how each is bound. It is immutable once built and safe for
// concurrent use.
type Reflector struct {
	typ             reflect.Type
	readable        []string
	writable        []string
	getters         map[string]Invoker
	setters         map[string]Invoker
	caseInsensitive map[string]string
	constructible   bool
}

// New introspects t. Pointer types are introspected through their element type.
func New(t reflect.Type) (*Reflector, error) {
	if t == nil {
		return nil, errors.Wrap(errors.ErrUnsupportedOperation, "cannot introspect a nil type")
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	r := &Reflector{
		typ:             t,
		getters:         map[string]Invoker{},
		setters:         map[string]Invoker{},
		caseInsensitive: map[string]string{},
		constructible:   Constructible(t),
	}

	getters, setters := classify(collectMethods(t))

	if err := r.resolveGetters(getters); err != nil {
		return nil, err
	}

	if err := r.resolveSetters(setters); err != nil {
		return nil, err
	}

	r.addFields()

	r.readable = slices.Sorted(maps.Keys(r.getters))
	r.writable = slices.Sorted(maps.Keys(r.setters))

	for _, name := range r.readable {
		r.caseInsensitive[strings.ToUpper(name)] = name
	}

	for _, name := range r.writable {
		r.caseInsensitive[strings.ToUpper(name)] = name
	}

	return r, nil
}

// Constructible reports whether a usable zero value of t can be created.
func Constructible(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
		return false
	default:
		return true
	}
}

func classify(members []member) (getters, setters map[string][]Candidate[member]) {
	getters = map[string][]Candidate[member]{}
	setters = map[string][]Candidate[member]{}

	for _, m := range members {
		name := m.method.Name

		prop, ok := property.MethodToProperty(name)
		if !ok {
			continue
		}

		switch {
		case property.IsGetter(name) && isGetterShape(m):
			getters[prop] = append(getters[prop], Candidate[member]{Method: name, Type: RefOf(m.out[0]), Ambiguous: m.ambiguous, Payload: m})
		case property.IsSetter(name) && isSetterShape(m):
			setters[prop] = append(setters[prop], Candidate[member]{Method: name, Type: RefOf(m.in[0]), Ambiguous: m.ambiguous, Payload: m})
		}
	}

	return getters, setters
}

// isGetterShape accepts func() T and func() (T, error).
func isGetterShape(m member) bool {
	return len(m.in) == 0 && (len(m.out) == 1 || len(m.out) == 2 && m.out[1] == errorType)
}

// isSetterShape accepts func(T) and func(T) error.
func isSetterShape(m member) bool {
	return len(m.in) == 1 && !m.method.Type.IsVariadic() &&
		(len(m.out) == 0 || len(m.out) == 1 && m.out[0] == errorType)
}

func (r *Reflector) resolveGetters(candidates map[string][]Candidate[member]) error {
	for _, prop := range slices.Sorted(maps.Keys(candidates)) {
		winner, err := ResolveGetter(r.typ.String(), prop, candidates[prop])
		if err != nil {
			return err
		}

		m := winner.Payload
		r.getters[prop] = &MethodInvoker{
			prop:     prop,
			name:     m.method.Name,
			path:     m.path,
			typ:      m.out[0],
			hasError: len(m.out) == 2,
		}
	}

	return nil
}

func (r *Reflector) resolveSetters(candidates map[string][]Candidate[member]) error {
	for _, prop := range slices.Sorted(maps.Keys(candidates)) {
		var getter TypeRef
		if inv, ok := r.getters[prop]; ok {
			getter = RefOf(inv.Type())
		}

		winner, err := ResolveSetter(r.typ.String(), prop, getter, candidates[prop])
		if err != nil {
			return err
		}

		m := winner.Payload
		r.setters[prop] = &MethodInvoker{
			prop:     prop,
			name:     m.method.Name,
			path:     m.path,
			typ:      m.in[0],
			setter:   true,
			hasError: len(m.out) == 1,
		}
	}

	return nil
}

// addFields binds every visible exported field whose property has no accessor method.
// Blank fields are unexported and never bound.
func (r *Reflector) addFields() {
	if r.typ.Kind() != reflect.Struct {
		return
	}

	for _, f := range reflect.VisibleFields(r.typ) {
		if !f.IsExported() {
			continue
		}

		prop := property.FieldToProperty(f.Name)

		if _, ok := r.getters[prop]; !ok {
			r.getters[prop] = &GetFieldInvoker{prop: prop, index: f.Index, typ: f.Type}
		}

		if _, ok := r.setters[prop]; !ok {
			r.setters[prop] = &SetFieldInvoker{prop: prop, index: f.Index, typ: f.Type}
		}
	}
}

// Type returns the introspected type.
func (r *Reflector) Type() reflect.Type {
	return r.typ
}

// HasDefaultConstructor reports whether a zero value of the type can be created.
func (r *Reflector) HasDefaultConstructor() bool {
	return r.constructible
}

// GetablePropertyNames returns the readable property names, sorted.
func (r *Reflector) GetablePropertyNames() []string {
	return slices.Clone(r.readable)
}

// SetablePropertyNames returns the writable property names, sorted.
func (r *Reflector) SetablePropertyNames() []string {
	return slices.Clone(r.writable)
}

func (r *Reflector) HasGetter(name string) bool {
	_, ok := r.getters[name]
	return ok
}

func (r *Reflector) HasSetter(name string) bool {
	_, ok := r.setters[name]
	return ok
}

func (r *Reflector) GetInvoker(name string) (Invoker, error) {
	inv, ok := r.getters[name]
	if !ok {
		return nil, r.missing("getter", name, r.readable)
	}

	return inv, nil
}

func (r *Reflector) SetInvoker(name string) (Invoker, error) {
	inv, ok := r.setters[name]
	if !ok {
		return nil, r.missing("setter", name, r.writable)
	}

	return inv, nil
}

// GetterType returns the type a property reads as.
func (r *Reflector) GetterType(name string) (reflect.Type, error) {
	inv, err := r.GetInvoker(name)
	if err != nil {
		return nil, err
	}

	return inv.Type(), nil
}

// SetterType returns the type a property is written as.
func (r *Reflector) SetterType(name string) (reflect.Type, error) {
	inv, err := r.SetInvoker(name)
	if err != nil {
		return nil, err
	}

	return inv.Type(), nil
}

// FindPropertyName resolves name case-insensitively to a known property name.
func (r *Reflector) FindPropertyName(name string) (string, bool) {
	prop, ok := r.caseInsensitive[strings.ToUpper(name)]
	return prop, ok
}

func (r *Reflector) missing(kind, name string, known []string) error {
	err := errors.WithDetailf(
		errors.Wrapf(errors.ErrMissingAccessor, "no %s for property %q in %s", kind, name, r.typ),
		"type: %s", r.typ)

	if suggestions := match.Suggest(name, known, maxSuggestions); len(suggestions) > 0 {
		err = errors.WithHintf(err, "did you mean %s?", strings.Join(suggestions, ", "))
	}

	return err
}
