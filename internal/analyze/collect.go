package analyze

import (
	"go/types"
	"strings"

	"golang.org/x/tools/go/types/typeutil"
)

// member is a method found on an inspected type or one of its exported
// embedded fields.
type member struct {
	fn  *types.Func
	sig *types.Signature
	// depth is the embedding depth of the level that declares the method.
	depth     int
	ambiguous bool
}

type level struct {
	typ   types.Type
	depth int
}

// signature identifies a method across embedding levels: result types, name,
// parameter types.
func (m member) signature() string {
	var b strings.Builder

	writeTuple(&b, m.sig.Results())
	b.WriteByte('#')
	b.WriteString(m.fn.Name())
	b.WriteByte(':')
	writeTuple(&b, m.sig.Params())

	return b.String()
}

func writeTuple(b *strings.Builder, tuple *types.Tuple) {
	for i := range tuple.Len() {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(types.TypeString(tuple.At(i).Type(), nil))
	}
}

// collectMethods enumerates the exported methods of t and of its exported
// embedded fields, breadth-first and outermost first. Methods promoted through
// an exported embedded field are attributed to that field's level; when two
// levels declare the same signature the outer one is kept, and two levels at
// the same depth make it ambiguous.
func collectMethods(t types.Type) []member {
	var (
		members []member
		seen    = map[string]int{}
		visited typeutil.Map
		queue   = []level{{typ: t}}
	)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited.At(cur.typ) != nil {
			continue
		}

		visited.Set(cur.typ, true)

		for _, m := range declaredMethods(cur.typ) {
			m.depth = cur.depth

			key := m.signature()
			if i, dup := seen[key]; dup {
				if members[i].depth == m.depth {
					members[i].ambiguous = true
				}

				continue
			}

			seen[key] = len(members)
			members = append(members, m)
		}

		for _, typ := range embeddedTypes(cur.typ) {
			queue = append(queue, level{typ: typ, depth: cur.depth + 1})
		}
	}

	return members
}

// declaredMethods returns the exported methods t owns at its own level: those
// declared on it and those promoted through unexported embedded fields.
func declaredMethods(t types.Type) []member {
	var ms *types.MethodSet
	if types.IsInterface(t) {
		ms = types.NewMethodSet(t)
	} else {
		ms = types.NewMethodSet(types.NewPointer(t))
	}

	st, _ := t.Underlying().(*types.Struct)

	var members []member

	for sel := range ms.Methods() {
		fn, ok := sel.Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		if idx := sel.Index(); st != nil && len(idx) > 1 && isLevel(st.Field(idx[0])) {
			continue
		}

		members = append(members, member{fn: fn, sig: fn.Signature()})
	}

	return members
}

// isLevel reports whether an embedded field is walked as a level of its own.
func isLevel(f *types.Var) bool {
	return f.Embedded() && f.Exported()
}

// embeddedTypes returns the types of the exported embedded fields of t, pointers removed.
func embeddedTypes(t types.Type) []types.Type {
	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	var levels []types.Type

	for f := range st.Fields() {
		if !isLevel(f) {
			continue
		}

		levels = append(levels, deref(f.Type()))
	}

	return levels
}

// fieldNames returns the names of all fields reachable from t, through
// exported and unexported embedded structs alike.
func fieldNames(t types.Type) []string {
	var (
		names   []string
		visited typeutil.Map
		queue   = []types.Type{t}
	)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited.At(cur) != nil {
			continue
		}

		visited.Set(cur, true)

		st, ok := cur.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		for f := range st.Fields() {
			names = append(names, f.Name())

			if f.Embedded() {
				queue = append(queue, deref(f.Type()))
			}
		}
	}

	return names
}

func deref(t types.Type) types.Type {
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}
