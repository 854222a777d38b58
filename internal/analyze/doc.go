// Package analyze checks accessor bindings at build time.
//
// It loads packages with golang.org/x/tools/go/packages and applies, over
// go/types, the naming and conflict rules the runtime introspector applies over
// reflect: Get/Is/Set methods found on a type and its exported embedded
// fields compete through reflector.ResolveGetter and reflector.ResolveSetter,
// exported fields fill in the remaining properties. Conflicts that would make
// runtime introspection fail are reported as error diagnostics.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeReport: resolved getters and setters of one type plus its diagnostics
//   - Report: every inspected type of the loaded packages
package analyze
