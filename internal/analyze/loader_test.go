package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"beanpath/errors"
	"beanpath/internal/diagnostic"
	"beanpath/reflector"
	"beanpath/store"
	"beanpath/warehouse"
)

const (
	storePkg     = "beanpath/store"
	warehousePkg = "beanpath/warehouse"
)

func load(t *testing.T, patterns ...string) *Report {
	t.Helper()

	report, err := NewAnalyzer().LoadPackages(patterns...)
	require.NoError(t, err)
	require.NotNil(t, report)

	return report
}

func typeReport(t *testing.T, report *Report, pkg, name string) *TypeReport {
	t.Helper()

	tr := report.GetType(TypeID{PkgPath: pkg, Name: name})
	require.NotNil(t, tr, "%s.%s not inspected", pkg, name)

	return tr
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	report := load(t, storePkg, warehousePkg)

	assert.Contains(t, report.Packages, storePkg)
	assert.Contains(t, report.Packages, warehousePkg)

	assert.Contains(t, report.Types, TypeID{PkgPath: storePkg, Name: "Order"})
	assert.Contains(t, report.Types, TypeID{PkgPath: warehousePkg, Name: "Person"})
	assert.NotContains(t, report.Types, TypeID{PkgPath: storePkg, Name: "StatusPaid"})

	ids := report.IDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, storePkg, ids[0].PkgPath)
	assert.Equal(t, warehousePkg, ids[len(ids)-1].PkgPath)
}

func TestAnalyzer_StoreIsClean(t *testing.T) {
	report := load(t, storePkg)

	require.NoError(t, report.Err())

	diags := report.Diagnostics()
	assert.Equal(t, []string{diagnostic.CodeAccessorShape, diagnostic.CodeWriteOnly}, diags.Codes())
}

func TestAnalyzer_Bindings(t *testing.T) {
	report := load(t, storePkg)

	tests := []struct {
		typ    string
		prop   string
		getter string
		setter string
		kind   reflector.AccessorKind
		ptype  string
	}{
		{"Product", "tags", "GetTags", "SetTags", reflector.AccessorMethod, "[]string"},
		{"Product", "SKU", "SKU", "SKU", reflector.AccessorField, "string"},
		{"Product", "priceCents", "PriceCents", "PriceCents", reflector.AccessorField, "int64"},
		{"Product", "createdAt", "CreatedAt", "CreatedAt", reflector.AccessorField, "time.Time"},
		{"Customer", "active", "IsActive", "SetActive", reflector.AccessorMethod, "bool"},
		{"Customer", "address", "Address", "Address", reflector.AccessorField, "*store.Address"},
		{"Order", "status", "GetStatus", "SetStatus", reflector.AccessorMethod, "store.OrderStatus"},
		{"Order", "createdBy", "CreatedBy", "CreatedBy", reflector.AccessorField, "string"},
		{"Order", "audit", "Audit", "Audit", reflector.AccessorField, "store.Audit"},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"."+tt.prop, func(t *testing.T) {
			tr := typeReport(t, report, storePkg, tt.typ)

			get, ok := tr.Getter(tt.prop)
			require.True(t, ok)
			assert.Equal(t, tt.getter, get.Member)
			assert.Equal(t, tt.kind, get.Kind)
			assert.Equal(t, tt.ptype, get.Type)

			set, ok := tr.Setter(tt.prop)
			require.True(t, ok)
			assert.Equal(t, tt.setter, set.Member)
		})
	}
}

func TestAnalyzer_PromotedAndReadOnly(t *testing.T) {
	report := load(t, storePkg)

	order := typeReport(t, report, storePkg, "Order")

	rev, ok := order.Getter("revision")
	require.True(t, ok)
	assert.Equal(t, "GetRevision", rev.Member)

	_, ok = order.Setter("revision")
	assert.False(t, ok)

	product := typeReport(t, report, storePkg, "Product")
	_, ok = product.Getter("available")
	assert.True(t, ok)
	_, ok = product.Setter("available")
	assert.False(t, ok)
}

func TestAnalyzer_Warnings(t *testing.T) {
	report := load(t, storePkg)

	ledger := typeReport(t, report, storePkg, "Ledger")
	require.Len(t, ledger.Diagnostics.Warnings, 2)

	props := []string{ledger.Diagnostics.Warnings[0].Property, ledger.Diagnostics.Warnings[1].Property}
	assert.ElementsMatch(t, []string{"balance", "limits"}, props)

	_, ok := ledger.Getter("balance")
	assert.False(t, ok)

	voucher := typeReport(t, report, storePkg, "Voucher")
	require.Len(t, voucher.Diagnostics.Infos, 1)
	assert.Equal(t, diagnostic.CodeWriteOnly, voucher.Diagnostics.Infos[0].Code)
	assert.Equal(t, "code", voucher.Diagnostics.Infos[0].Property)
}

func TestAnalyzer_Conflicts(t *testing.T) {
	report := load(t, warehousePkg)

	err := report.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAmbiguousAccessor))

	person := typeReport(t, report, warehousePkg, "Person")
	require.Len(t, person.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeAmbiguousGetter, person.Diagnostics.Errors[0].Code)
	assert.Equal(t, "age", person.Diagnostics.Errors[0].Property)

	meter := typeReport(t, report, warehousePkg, "Meter")
	require.Len(t, meter.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeAmbiguousSetter, meter.Diagnostics.Errors[0].Code)

	shipment := typeReport(t, report, warehousePkg, "Shipment")
	require.Len(t, shipment.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeAmbiguousGetter, shipment.Diagnostics.Errors[0].Code)
	assert.Equal(t, "label", shipment.Diagnostics.Errors[0].Property)

	_, ok := shipment.Getter("label")
	assert.False(t, ok)

	kennel := typeReport(t, report, warehousePkg, "DogKennel")
	assert.True(t, kennel.Diagnostics.IsValid())

	pet, ok = kennel.Getter("pet")
	require.True(t, ok)
	assert.Equal(t, "warehouse.Dog", pet.Type)

	pet, ok = kennel.Setter("pet")
	require.True(t, ok)
	assert.Equal(t, "warehouse.Animal", pet.Type)
}

// The checker and the runtime introspector must agree on which types fail.
func TestAnalyzer_MatchesRuntime(t *testing.T) {
	report := load(t, storePkg, warehousePkg)

	runtimeTypes := map[TypeID]reflect.Type{
		{PkgPath: storePkg, Name: "Product"}:         reflect.TypeFor[store.Product](),
		{PkgPath: storePkg, Name: "Customer"}:        reflect.TypeFor[store.Customer](),
		{PkgPath: storePkg, Name: "Order"}:           reflect.TypeFor[store.Order](),
		{PkgPath: storePkg, Name: "Voucher"}:         reflect.TypeFor[store.Voucher](),
		{PkgPath: storePkg, Name: "Ledger"}:          reflect.TypeFor[store.Ledger](),
		{PkgPath: warehousePkg, Name: "Person"}:      reflect.TypeFor[warehouse.Person](),
		{PkgPath: warehousePkg, Name: "Kennel"}:      reflect.TypeFor[warehouse.Kennel](),
		{PkgPath: warehousePkg, Name: "DogKennel"}:   reflect.TypeFor[warehouse.DogKennel](),
		{PkgPath: warehousePkg, Name: "Meter"}:       reflect.TypeFor[warehouse.Meter](),
		{PkgPath: warehousePkg, Name: "Warehouse"}:   reflect.TypeFor[warehouse.Warehouse](),
		{PkgPath: warehousePkg, Name: "Crate"}:       reflect.TypeFor[warehouse.Crate](),
		{PkgPath: warehousePkg, Name: "Shipment"}:    reflect.TypeFor[warehouse.Shipment](),
	}

	for id, rt := range runtimeTypes {
		t.Run(id.String(), func(t *testing.T) {
			tr := report.GetType(id)
			require.NotNil(t, tr)

			r, err := reflector.New(rt)
			if !tr.Diagnostics.IsValid() {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrAmbiguousAccessor))

				return
			}

			require.NoError(t, err)

			var getters, setters []string
			for _, a := range tr.Getters {
				getters = append(getters, a.Property)
			}

			for _, a := range tr.Setters {
				setters = append(setters, a.Property)
			}

			assert.Equal(t, r.GetablePropertyNames(), getters)
			assert.Equal(t, r.SetablePropertyNames(), setters)
		})
	}
}

func TestAnalyzer_Inspect(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.LoadPackages(storePkg)
	require.NoError(t, err)

	tr, err := a.Inspect(storePkg, "Order")
	require.NoError(t, err)
	assert.Equal(t, "Order", tr.ID.Name)

	_, err = a.Inspect(storePkg, "Ordr")
	require.Error(t, err)
	assert.Contains(t, errors.GetAllHints(err), "did you mean Order?")

	_, err = a.Inspect("beanpath/nowhere", "Order")
	require.Error(t, err)
	assert.Contains(t, errors.GetAllHints(err), "package beanpath/nowhere is not loaded")
}

func TestAnalyzer_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	_, err := NewAnalyzer(WithLogger(zap.New(core).Sugar())).LoadPackages(warehousePkg)
	require.NoError(t, err)

	entries := logs.FilterMessage("Inspected type").FilterField(zap.String("type", warehousePkg+".Person")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["errors"])
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("beanpath/does/not/exist")
	require.Error(t, err)
}

func TestTypeReport_String(t *testing.T) {
	report := load(t, warehousePkg)

	out := typeReport(t, report, warehousePkg, "Person").String()
	assert.Contains(t, out, warehousePkg+".Person\n")
	assert.Contains(t, out, "error: [warehouse.Person] age: [ambiguous-getter]")

	out = typeReport(t, report, warehousePkg, "Kennel").String()
	assert.Contains(t, out, "get pet method GetPet warehouse.Animal")
}
