package analyze

import (
	"go/types"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"beanpath/errors"
	"beanpath/internal/common"
	"beanpath/internal/diagnostic"
	"beanpath/internal/match"
	"beanpath/property"
	"beanpath/reflector"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and reports the accessor bindings of their types.
type Analyzer struct {
	report *Report
	logger *zap.SugaredLogger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		report: NewReport(),
		logger: zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and inspects their exported named types.
// Patterns are standard Go package patterns (e.g., "./store", "beanpath/warehouse").
func (a *Analyzer) LoadPackages(patterns ...string) (*Report, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}

	var diags diagnostic.Diagnostics

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			diags.AddError(diagnostic.CodeLoad, e.Error(), pkg.PkgPath, "")
		}
	}

	if err := diags.Error(); err != nil {
		return nil, errors.Wrap(err, "package errors")
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.report, nil
}

// Report returns the current report.
func (a *Analyzer) Report() *Report {
	return a.report
}

// processPackage inspects the exported named types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		report := a.inspect(typeName.Type())
		report.ID = id

		a.report.Types[id] = report
		pkgInfo.Types = append(pkgInfo.Types, id)

		a.logger.Debugw("Inspected type",
			"type", id.String(),
			"getters", len(report.Getters),
			"setters", len(report.Setters),
			"errors", len(report.Diagnostics.Errors))
	}

	a.report.Packages[pkg.PkgPath] = pkgInfo
}

// Inspect returns the report of a loaded type. Unknown types come back with
// suggestions among the loaded type names of that package.
func (a *Analyzer) Inspect(pkgPath, typeName string) (*TypeReport, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	if report := a.report.GetType(id); report != nil {
		return report, nil
	}

	err := errors.Newf("type %s not found", id)

	pkg, ok := a.report.Packages[pkgPath]
	if !ok {
		return nil, errors.WithHintf(err, "package %s is not loaded", pkgPath)
	}

	names := make([]string, len(pkg.Types))
	for i, t := range pkg.Types {
		names[i] = t.Name
	}

	if best, ok := common.First(match.Suggest(typeName, names, 1)); ok {
		err = errors.WithHintf(err, "did you mean %s?", best)
	}

	return nil, err
}

// inspect resolves the getters and setters of t the way reflector.New does,
// recording every conflict instead of stopping at the first.
func (a *Analyzer) inspect(t types.Type) *TypeReport {
	report := &TypeReport{}
	owner := TypeString(t)

	getters := map[string][]reflector.Candidate[member]{}
	setters := map[string][]reflector.Candidate[member]{}

	for _, m := range collectMethods(t) {
		name := m.fn.Name()

		prop, ok := property.MethodToProperty(name)
		if !ok {
			continue
		}

		switch {
		case property.IsGetter(name) && isGetterShape(m.sig):
			getters[prop] = append(getters[prop], reflector.Candidate[member]{
				Method: name, Type: goRef{m.sig.Results().At(0).Type()}, Ambiguous: m.ambiguous, Payload: m,
			})
		case property.IsSetter(name) && isSetterShape(m.sig):
			setters[prop] = append(setters[prop], reflector.Candidate[member]{
				Method: name, Type: goRef{m.sig.Params().At(0).Type()}, Ambiguous: m.ambiguous, Payload: m,
			})
		default:
			report.Diagnostics.AddWarning(diagnostic.CodeAccessorShape,
				"method "+name+strings.TrimPrefix(types.TypeString(m.sig, nil), "func")+" does not bind as an accessor", owner, prop)
		}
	}

	bound := map[string]reflector.TypeRef{}

	for _, prop := range sortedKeys(getters) {
		winner, err := reflector.ResolveGetter(owner, prop, getters[prop])
		if err != nil {
			report.Diagnostics.AddErr(diagnostic.CodeAmbiguousGetter, err, owner, prop)
			continue
		}

		bound[prop] = winner.Type
		report.Getters = append(report.Getters, methodAccessor(prop, winner))
	}

	for _, prop := range sortedKeys(setters) {
		winner, err := reflector.ResolveSetter(owner, prop, bound[prop], setters[prop])
		if err != nil {
			report.Diagnostics.AddErr(diagnostic.CodeAmbiguousSetter, err, owner, prop)
			continue
		}

		report.Setters = append(report.Setters, methodAccessor(prop, winner))
	}

	a.addFields(t, report, getters, setters)

	sortAccessors(report.Getters)
	sortAccessors(report.Setters)

	for _, s := range report.Setters {
		if _, ok := report.Getter(s.Property); !ok {
			if _, conflict := getters[s.Property]; !conflict {
				report.Diagnostics.AddInfo(diagnostic.CodeWriteOnly, "property has a setter but no getter", owner, s.Property)
			}
		}
	}

	return report
}

// addFields binds exported fields to the properties no method binds, using Go
// selector rules for promoted fields.
func (a *Analyzer) addFields(t types.Type, report *TypeReport, getters, setters map[string][]reflector.Candidate[member]) {
	named, ok := t.(*types.Named)
	if !ok {
		return
	}

	seen := map[string]bool{}

	for _, name := range fieldNames(t) {
		if seen[name] || !types.IsExported(name) {
			continue
		}

		seen[name] = true

		obj, _, _ := types.LookupFieldOrMethod(t, true, named.Obj().Pkg(), name)

		field, ok := obj.(*types.Var)
		if !ok || !field.IsField() {
			continue
		}

		prop := property.FieldToProperty(name)
		acc := Accessor{Property: prop, Kind: reflector.AccessorField, Member: name, Type: TypeString(field.Type())}

		if _, ok := getters[prop]; !ok {
			report.Getters = append(report.Getters, acc)
		}

		if _, ok := setters[prop]; !ok {
			report.Setters = append(report.Setters, acc)
		}
	}
}

func methodAccessor(prop string, c reflector.Candidate[member]) Accessor {
	return Accessor{Property: prop, Kind: reflector.AccessorMethod, Member: c.Method, Type: c.Type.String()}
}

var errorType = types.Universe.Lookup("error").Type()

// isGetterShape accepts func() T and func() (T, error).
func isGetterShape(sig *types.Signature) bool {
	res := sig.Results()

	return sig.Params().Len() == 0 &&
		(res.Len() == 1 || res.Len() == 2 && types.Identical(res.At(1).Type(), errorType))
}

// isSetterShape accepts func(T) and func(T) error.
func isSetterShape(sig *types.Signature) bool {
	res := sig.Results()

	return sig.Params().Len() == 1 && !sig.Variadic() &&
		(res.Len() == 0 || res.Len() == 1 && types.Identical(res.At(0).Type(), errorType))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func sortAccessors(accessors []Accessor) {
	slices.SortFunc(accessors, func(a, b Accessor) int {
		return strings.Compare(a.Property, b.Property)
	})
}
