package reflector

import (
	"reflect"
	"runtime"
	"strings"
)

// member is a method found on the introspected type or one of its embedded fields.
type member struct {
	method reflect.Method
	// path is the embedded field path from the introspected type to the receiver.
	path []int
	// in and out exclude the receiver.
	in  []reflect.Type
	out []reflect.Type
	// ambiguous is set when a sibling level at the same depth declares the same signature.
	ambiguous bool
}

// signature identifies a method across embedding levels: result types, name,
// parameter types.
func (m member) signature() string {
	var b strings.Builder

	for i, t := range m.out {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(t.String())
	}

	b.WriteByte('#')
	b.WriteString(m.method.Name)
	b.WriteByte(':')

	for i, t := range m.in {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(t.String())
	}

	return b.String()
}

type level struct {
	typ  reflect.Type
	path []int
}

// collectMethods enumerates the exported methods of t and of its exported
// embedded fields, breadth-first and outermost first. A method is attributed to
// the level that declares it; when two levels declare the same signature the
// outer one is kept, and two levels at the same depth make it ambiguous.
func collectMethods(t reflect.Type) []member {
	var (
		members []member
		seen    = map[string]int{}
		visited = map[reflect.Type]struct{}{}
		queue   = []level{{typ: t}}
	)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if _, ok := visited[cur.typ]; ok {
			continue
		}

		visited[cur.typ] = struct{}{}

		for _, m := range methodsOf(cur) {
			key := m.signature()
			if i, dup := seen[key]; dup {
				if len(members[i].path) == len(m.path) {
					members[i].ambiguous = true
				}

				continue
			}

			seen[key] = len(members)
			members = append(members, m)
		}

		queue = append(queue, embeddedLevels(cur)...)
	}

	return members
}

func methodsOf(l level) []member {
	var members []member

	if l.typ.Kind() == reflect.Interface {
		for i := range l.typ.NumMethod() {
			m := l.typ.Method(i)
			members = append(members, newMember(m, l.path, 0))
		}

		return members
	}

	inner := embeddedLevels(l)

	ptr := reflect.PointerTo(l.typ)
	for i := range ptr.NumMethod() {
		m := ptr.Method(i)
		if providedBy(inner, m.Name) && !declaredOn(l.typ, m.Name) {
			continue
		}

		members = append(members, newMember(m, l.path, 1))
	}

	return members
}

func newMember(m reflect.Method, path []int, skip int) member {
	mt := m.Type
	mem := member{method: m, path: path}

	for i := skip; i < mt.NumIn(); i++ {
		mem.in = append(mem.in, mt.In(i))
	}

	for i := range mt.NumOut() {
		mem.out = append(mem.out, mt.Out(i))
	}

	return mem
}

// embeddedLevels returns the exported embedded fields of a struct level.
// Unexported embedded fields are skipped; methods they promote stay with the outer type.
func embeddedLevels(l level) []level {
	if l.typ.Kind() != reflect.Struct {
		return nil
	}

	var levels []level

	for i := range l.typ.NumField() {
		f := l.typ.Field(i)
		if !f.Anonymous || !f.IsExported() {
			continue
		}

		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		path := make([]int, len(l.path)+1)
		copy(path, l.path)
		path[len(l.path)] = i

		levels = append(levels, level{typ: ft, path: path})
	}

	return levels
}

// providedBy reports whether one of the embedded levels has the method, so
// that it may be promoted from there.
func providedBy(levels []level, name string) bool {
	for _, l := range levels {
		t := l.typ
		if t.Kind() != reflect.Interface {
			t = reflect.PointerTo(t)
		}

		if _, ok := t.MethodByName(name); ok {
			return true
		}
	}

	return false
}

// declaredOn reports whether t declares the method itself rather than
// promoting it from an embedded field. Promotion wrappers, like the pointer
// wrappers of value methods, are generated by the compiler.
func declaredOn(t reflect.Type, name string) bool {
	if m, ok := reflect.PointerTo(t).MethodByName(name); ok && !generated(m.Func) {
		return true
	}

	if m, ok := t.MethodByName(name); ok && !generated(m.Func) {
		return true
	}

	return false
}

func generated(fn reflect.Value) bool {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return false
	}

	file, _ := f.FileLine(f.Entry())

	return file == "<autogenerated>"
}
