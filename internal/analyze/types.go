package analyze

import (
	"cmp"
	"maps"
	"slices"

	"beanpath/errors"
	"beanpath/internal/diagnostic"
	"beanpath/reflector"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "beanpath/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Accessor is the binding chosen for one property in one direction.
type Accessor struct {
	Property string
	Kind     reflector.AccessorKind
	// Member is the method or field name.
	Member string
	// Type is the property type, package-qualified by package name.
	Type string
}

// TypeReport describes the properties of one named type.
type TypeReport struct {
	ID          TypeID
	Getters     []Accessor // sorted by property
	Setters     []Accessor // sorted by property
	Diagnostics diagnostic.Diagnostics
}

// Getter returns the getter bound to prop.
func (r *TypeReport) Getter(prop string) (Accessor, bool) {
	return find(r.Getters, prop)
}

// Setter returns the setter bound to prop.
func (r *TypeReport) Setter(prop string) (Accessor, bool) {
	return find(r.Setters, prop)
}

func find(accessors []Accessor, prop string) (Accessor, bool) {
	i, ok := slices.BinarySearchFunc(accessors, prop, func(a Accessor, p string) int {
		return cmp.Compare(a.Property, p)
	})
	if !ok {
		return Accessor{}, false
	}

	return accessors[i], true
}

// Report holds every inspected type of the loaded packages.
type Report struct {
	// Types maps TypeID to the report of every exported named type.
	Types map[TypeID]*TypeReport
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewReport creates a new empty Report.
func NewReport() *Report {
	return &Report{
		Types:    make(map[TypeID]*TypeReport),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeReport for a given TypeID, or nil if not found.
func (r *Report) GetType(id TypeID) *TypeReport {
	return r.Types[id]
}

// IDs returns the inspected type IDs sorted by package path, then name.
func (r *Report) IDs() []TypeID {
	return slices.SortedFunc(maps.Keys(r.Types), func(a, b TypeID) int {
		return cmp.Or(cmp.Compare(a.PkgPath, b.PkgPath), cmp.Compare(a.Name, b.Name))
	})
}

// Diagnostics merges the diagnostics of all types in IDs order.
func (r *Report) Diagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics

	for _, id := range r.IDs() {
		all.Merge(r.Types[id].Diagnostics)
	}

	return all
}

// Err returns an ErrAmbiguousAccessor listing every conflict, or nil when the
// loaded types would all introspect cleanly.
func (r *Report) Err() error {
	diags := r.Diagnostics()

	if err := diags.Error(); err != nil {
		return errors.Mark(err, errors.ErrAmbiguousAccessor)
	}

	return nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types inspected in this package
}
