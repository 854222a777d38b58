package navigator

import (
	"reflect"

	"beanpath/internal/common"
)

// WrapperKind tells which wrapper strategy handles a value.
type WrapperKind int

const (
	KindNull WrapperKind = iota
	KindStruct
	KindMap
	KindSlice
	KindCustom

	// KindTotal is the number of wrapper kinds.
	KindTotal = int(iota)
)

func (k WrapperKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindStruct:
		return "struct"
	case KindMap:
		return "map"
	case KindSlice:
		return "slice"
	case KindCustom:
		return "custom"
	default:
		return common.UnknownStr
	}
}

// Dispatch returns the built-in wrapper kind of a dereferenced value.
func Dispatch(v reflect.Value) WrapperKind {
	if !v.IsValid() {
		return KindNull
	}

	switch v.Kind() {
	case reflect.Map:
		return KindMap
	case reflect.Slice, reflect.Array:
		return KindSlice
	default:
		return KindStruct
	}
}
