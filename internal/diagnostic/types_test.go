package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beanpath/errors"
)

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics

	d.AddInfo(CodeWriteOnly, "no getter", "store.Order", "secret")
	d.AddWarning(CodeAccessorShape, "GetTotal takes arguments", "store.Order", "total")
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError(CodeAmbiguousGetter, "GetAge and IsAge", "store.Person", "age")
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	assert.Equal(t, []string{CodeAccessorShape, CodeAmbiguousGetter, CodeWriteOnly}, d.Codes())
	assert.EqualError(t, d.Error(), "[store.Person] age: [ambiguous-getter] GetAge and IsAge")
}

func TestDiagnostics_AddErr(t *testing.T) {
	var d Diagnostics

	err := errors.WithHint(errors.Wrap(errors.ErrAmbiguousAccessor, "two getters"), "rename one")
	d.AddErr(CodeAmbiguousGetter, err, "", "age")

	require.Len(t, d.Errors, 1)
	assert.Equal(t, []string{"rename one"}, d.Errors[0].Suggestions)
	assert.Equal(t, "age: [ambiguous-getter] two getters: ambiguous accessor (rename one)", d.Errors[0].String())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddInfo(CodeWriteOnly, "x", "", "")
	b.AddError(CodeLoad, "y", "", "")
	b.AddWarning(CodeAccessorShape, "z", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.String())
		})
	}
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[T]: [c] m", Diagnostic{Type: "T", Code: "c", Message: "m"}.String())
}
