package reflector

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanpath/errors"
)

func TestNew_Names(t *testing.T) {
	r, err := New(reflect.TypeFor[Product]())
	require.NoError(t, err)

	assert.Equal(t, reflect.TypeFor[Product](), r.Type())
	assert.Equal(t, []string{"SKU", "active", "available", "stock", "title"}, r.GetablePropertyNames())
	assert.Equal(t, []string{"SKU", "active", "stock", "title"}, r.SetablePropertyNames())
	assert.True(t, r.HasDefaultConstructor())
}

func TestNew_PointerType(t *testing.T) {
	r, err := New(reflect.TypeFor[*Product]())
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[Product](), r.Type())
}

func TestNew_NilType(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedOperation))
}

func TestNew_Bindings(t *testing.T) {
	r, err := New(reflect.TypeFor[Product]())
	require.NoError(t, err)

	tests := []struct {
		prop   string
		getter AccessorKind
		setter AccessorKind
		typ    reflect.Type
	}{
		{"title", AccessorMethod, AccessorMethod, reflect.TypeFor[string]()},
		{"SKU", AccessorMethod, AccessorMethod, reflect.TypeFor[string]()},
		{"stock", AccessorField, AccessorField, reflect.TypeFor[int]()},
		{"active", AccessorField, AccessorField, reflect.TypeFor[bool]()},
	}

	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			get, err := r.GetInvoker(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.getter, get.Kind())
			assert.Equal(t, tt.prop, get.Property())

			set, err := r.SetInvoker(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.setter, set.Kind())

			getType, err := r.GetterType(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, getType)

			setType, err := r.SetterType(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, setType)
		})
	}

	assert.True(t, r.HasGetter("available"))
	assert.False(t, r.HasSetter("available"))
	assert.False(t, r.HasGetter("sku"))
}

func TestNew_MissingProperty(t *testing.T) {
	r, err := New(reflect.TypeFor[Product]())
	require.NoError(t, err)

	_, err = r.GetInvoker("titel")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingAccessor))
	assert.Contains(t, errors.GetAllHints(err), "did you mean title?")

	_, err = r.SetterType("available")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingAccessor))
}

func TestFindPropertyName(t *testing.T) {
	r, err := New(reflect.TypeFor[Product]())
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"TITLE", "title", true},
		{"title", "title", true},
		{"sku", "SKU", true},
		{"Available", "available", true},
		{"price", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := r.FindPropertyName(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		prop string
		want reflect.Type
		err  error
	}{
		{"int and bool getters", reflect.TypeFor[AgeConflict](), "age", nil, errors.ErrAmbiguousAccessor},
		{"unrelated getters on two levels", reflect.TypeFor[Coded](), "code", nil, errors.ErrAmbiguousAccessor},
		{"bool getters prefer Is", reflect.TypeFor[Flags](), "active", reflect.TypeFor[bool](), nil},
		{"outer getter more specific", reflect.TypeFor[DogKeeper](), "pet", reflect.TypeFor[Dog](), nil},
		{"embedded getter more specific", reflect.TypeFor[AnyVet](), "pet", reflect.TypeFor[Dog](), nil},
		{"same getter on sibling embedded fields", reflect.TypeFor[Sides](), "side", nil, errors.ErrAmbiguousAccessor},
		{"outer getter hides siblings", reflect.TypeFor[Centered](), "side", reflect.TypeFor[string](), nil},
		{"shallower embedded getter wins", reflect.TypeFor[Deep](), "side", reflect.TypeFor[string](), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.typ)
			if tt.err != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.err))
				return
			}

			require.NoError(t, err)

			got, err := r.GetterType(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConflicts_WinnerIsInvoked(t *testing.T) {
	flags, err := New(reflect.TypeFor[Flags]())
	require.NoError(t, err)

	get, err := flags.GetInvoker("active")
	require.NoError(t, err)
	assert.Equal(t, "IsActive", get.(*MethodInvoker).Name())

	v, err := get.Invoke(reflect.ValueOf(Flags{active: true}))
	require.NoError(t, err)
	assert.True(t, v.Bool())

	vet, err := New(reflect.TypeFor[AnyVet]())
	require.NoError(t, err)

	get, err = vet.GetInvoker("pet")
	require.NoError(t, err)

	v, err = get.Invoke(reflect.ValueOf(AnyVet{}))
	require.NoError(t, err)
	assert.Equal(t, "woof", v.Interface().(Animal).Sound())
}

func TestAccessorShapes(t *testing.T) {
	r, err := New(reflect.TypeFor[Ticket]())
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "number"}, r.GetablePropertyNames())
	assert.Empty(t, r.SetablePropertyNames())
}
