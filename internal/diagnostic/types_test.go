package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("unknown_key", "unknown key \"comment\"", "comment", 3)
	assert.True(t, d.IsValid())

	d.AddError("missing_key", "missing \"output\"", "output", 0)
	d.AddError("invalid_range", "bad range", "namespaces[0].namespace.registers[0].register.fields[0].a", 9)

	assert.True(t, d.HasErrors())
	assert.Equal(t, SeverityError, d.Errors[0].Severity)
	assert.Equal(t, SeverityWarning, d.Warnings[0].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"output: [missing_key] missing \"output\"; line 9 namespaces[0].namespace.registers[0].register.fields[0].a: [invalid_range] bad range",
		err.Error())
}

func TestDiagnostics_MergeAndPromote(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning("field_overlap", "overlap", "dev::R::b", 0)
	b.AddWarning("duplicate_field", "dup", "dev::R::a", 0)
	b.AddError("x", "y", "", 0)

	a.Merge(b)
	require.Len(t, a.Warnings, 2)
	require.Len(t, a.Errors, 1)

	a.Promote()
	assert.Empty(t, a.Warnings)
	require.Len(t, a.Errors, 3)

	for _, e := range a.Errors {
		assert.Equal(t, SeverityError, e.Severity)
	}

	assert.Equal(t, "field_overlap", a.Errors[1].Code)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{Diagnostic{Message: "plain"}, "plain"},
		{Diagnostic{Code: "c", Message: "m"}, "[c] m"},
		{Diagnostic{Code: "c", Message: "m", Path: "p"}, "p: [c] m"},
		{Diagnostic{Code: "c", Message: "m", Path: "p", Line: 4}, "line 4 p: [c] m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
	}

	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(7).String())
}
