package reflector

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanpath/errors"
)

func orderMeta(t *testing.T) *MetaClass {
	t.Helper()

	meta, err := ForType(reflect.TypeFor[Order](), NewFactory())
	require.NoError(t, err)

	return meta
}

func TestMetaClass_GetterType(t *testing.T) {
	meta := orderMeta(t)

	tests := []struct {
		path string
		want reflect.Type
		err  error
	}{
		{"items", reflect.TypeFor[[]Item](), nil},
		{"items[0]", reflect.TypeFor[Item](), nil},
		{"items[0].price", reflect.TypeFor[float64](), nil},
		{"customer", reflect.TypeFor[*Customer](), nil},
		{"customer.name", reflect.TypeFor[string](), nil},
		{"notes[gift]", reflect.TypeFor[string](), nil},
		{"total[0]", nil, errors.ErrNotACollection},
		{"customer.email", nil, errors.ErrMissingAccessor},
		{"items.price", nil, errors.ErrMissingAccessor},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := meta.GetterType(tt.path)
			if tt.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetaClass_SetterType(t *testing.T) {
	meta := orderMeta(t)

	got, err := meta.SetterType("items[0].price")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[float64](), got)

	got, err = meta.SetterType("items[1]")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[Item](), got)

	_, err = meta.SetterType("customer.email")
	assert.True(t, errors.Is(err, errors.ErrMissingAccessor))
}

func TestMetaClass_HasAccessors(t *testing.T) {
	meta := orderMeta(t)

	tests := []struct {
		path      string
		hasGetter bool
		hasSetter bool
	}{
		{"total", true, true},
		{"customer.name", true, true},
		{"items[0].price", true, true},
		{"customer.email", false, false},
		{"missing.name", false, false},
		{"total.value", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.hasGetter, meta.HasGetter(tt.path))
			assert.Equal(t, tt.hasSetter, meta.HasSetter(tt.path))
		})
	}
}

func TestMetaClass_FindProperty(t *testing.T) {
	meta := orderMeta(t)

	tests := []struct {
		name      string
		camelCase bool
		want      string
		found     bool
	}{
		{"TOTAL", false, "total", true},
		{"Customer.NAME", false, "customer.name", true},
		{"items[0].PRICE", false, "items.price", true},
		{"ship_to", false, "", false},
		{"ship_to", true, "shipTo", true},
		{"SHIP_TO", true, "shipTo", true},
		{"customer.email", false, "", false},
		{"", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := meta.FindProperty(tt.name, tt.camelCase)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetaClass_ForProperty(t *testing.T) {
	meta := orderMeta(t)

	customer, err := meta.ForProperty("customer")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[Customer](), customer.Type())
	assert.Equal(t, []string{"name"}, customer.GetterNames())
	assert.Equal(t, []string{"name"}, customer.SetterNames())
	assert.True(t, customer.HasDefaultConstructor())

	inv, err := customer.GetInvoker("name")
	require.NoError(t, err)
	assert.Equal(t, AccessorField, inv.Kind())
}
