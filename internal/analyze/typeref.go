package analyze

import (
	"go/types"

	"beanpath/reflector"
)

// goRef is the reflector.TypeRef of a static type.
type goRef struct {
	t types.Type
}

var _ reflector.TypeRef = goRef{}

func (r goRef) String() string {
	return TypeString(r.t)
}

func (r goRef) Identical(other reflector.TypeRef) bool {
	o, ok := other.(goRef)

	return ok && types.Identical(r.t, o.t)
}

func (r goRef) AssignableTo(other reflector.TypeRef) bool {
	o, ok := other.(goRef)

	return ok && types.AssignableTo(r.t, o.t)
}

func (r goRef) IsBool() bool {
	basic, ok := r.t.Underlying().(*types.Basic)

	return ok && basic.Info()&types.IsBoolean != 0
}
