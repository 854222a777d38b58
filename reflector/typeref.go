package reflector

import (
	"reflect"
)

// TypeRef is the view of a type needed to resolve accessor conflicts.
type TypeRef interface {
	String() string
	// Identical reports whether both refer to the same type.
	Identical(other TypeRef) bool
	// AssignableTo reports whether a value of this type can be used where other is expected.
	AssignableTo(other TypeRef) bool
	IsBool() bool
}

// RefOf returns the TypeRef of a runtime type.
func RefOf(t reflect.Type) TypeRef {
	return reflectRef{t: t}
}

type reflectRef struct {
	t reflect.Type
}

func (r reflectRef) String() string {
	return r.t.String()
}

func (r reflectRef) Identical(other TypeRef) bool {
	o, ok := other.(reflectRef)

	return ok && o.t == r.t
}

func (r reflectRef) AssignableTo(other TypeRef) bool {
	o, ok := other.(reflectRef)

	return ok && r.t.AssignableTo(o.t)
}

func (r reflectRef) IsBool() bool {
	return r.t.Kind() == reflect.Bool
}
