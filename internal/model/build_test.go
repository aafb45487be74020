package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regdefgen/internal/schema"
)

func ctrlFile() *schema.File {
	return &schema.File{
		Name:   "dev.yaml",
		Output: "out/dev.hpp",
		Namespaces: []schema.Namespace{
			{
				Name: "dev",
				Registers: []schema.Register{
					{
						Name:       "CTRL",
						Type:       "u32",
						SystemName: "ctrl_el1",
						Fields: []schema.Field{
							{Name: "status", Range: schema.FieldRange{
								Form: schema.FormEnum, Offset: 0, Width: 4,
								Enum: []schema.EnumEntry{{Name: "IDLE", Value: 0}, {Name: "BUSY", Value: 1}, {Name: "ERROR", Value: 2}},
							}},
							{Name: "enable", Range: schema.FieldRange{Form: schema.FormBit, Offset: 5, Width: 1}},
							{Name: "ready", Range: schema.FieldRange{Form: schema.FormRange, Offset: 6, Width: 1}},
							{Name: "prescale", Range: schema.FieldRange{Form: schema.FormRange, Offset: 8, Width: 4}},
							{Name: "lock", Range: schema.FieldRange{
								Form: schema.FormEnum, Offset: 12, Width: 1,
								Enum: []schema.EnumEntry{{Name: "UNLOCKED", Value: 0}, {Name: "LOCKED", Value: 1}},
							}},
						},
					},
				},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	u, err := Build(ctrlFile())
	require.NoError(t, err)

	assert.Equal(t, "dev.yaml", u.Source)
	assert.Equal(t, "out/dev.hpp", u.Output)
	require.Len(t, u.Namespaces, 1)
	require.Len(t, u.Namespaces[0].Registers, 1)

	reg := u.Namespaces[0].Registers[0]
	assert.Equal(t, "CTRL", reg.Name)
	assert.Equal(t, U32, reg.Word)
	assert.True(t, reg.HasSystemName())
	require.Len(t, reg.Fields, 5)

	names := make([]string, 0, len(reg.Fields))
	for _, f := range reg.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"status", "enable", "ready", "prescale", "lock"}, names)

	tests := []struct {
		field  string
		offset int
		width  int
		kind   FieldKind
		enums  int
	}{
		{"status", 0, 4, KindEnumerated, 3},
		{"enable", 5, 1, KindBoolean, 0},
		{"ready", 6, 1, KindBoolean, 0},
		{"prescale", 8, 4, KindPlain, 0},
		// enum presence suppresses boolean shorthand on one-bit fields
		{"lock", 12, 1, KindEnumerated, 2},
	}

	for i, tt := range tests {
		f := reg.Fields[i]
		assert.Equal(t, tt.field, f.Name)
		assert.Equal(t, tt.offset, f.Offset, tt.field)
		assert.Equal(t, tt.width, f.Width, tt.field)
		assert.Equal(t, tt.kind, f.Kind, tt.field)
		assert.Len(t, f.Enum, tt.enums, tt.field)
	}

	assert.Equal(t, []EnumValue{{"IDLE", 0}, {"BUSY", 1}, {"ERROR", 2}}, reg.Fields[0].Enum)
}

func TestBuild_EmptyEnumIsStillEnumerated(t *testing.T) {
	f := ctrlFile()
	f.Namespaces[0].Registers[0].Fields = []schema.Field{
		{Name: "mode", Range: schema.FieldRange{Form: schema.FormEnum, Offset: 0, Width: 1}},
	}

	u, err := Build(f)
	require.NoError(t, err)
	assert.Equal(t, KindEnumerated, u.Namespaces[0].Registers[0].Fields[0].Kind)
}

func TestBuild_UnknownType(t *testing.T) {
	f := ctrlFile()
	f.Namespaces[0].Registers[0].Type = "u128"
	f.Namespaces[0].Registers[0].Path = "namespaces[0].namespace.registers[0].register"

	_, err := Build(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namespaces[0].namespace.registers[0].register")
}

func TestParseWordType(t *testing.T) {
	for tag, want := range map[string]WordType{"u8": U8, "u16": U16, "u32": U32, "u64": U64} {
		got, err := ParseWordType(tag)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, tag, got.String())
	}

	_, err := ParseWordType("i32")
	assert.Error(t, err)
}

func TestFieldKind_String(t *testing.T) {
	assert.Equal(t, "KindPlain", KindPlain.String())
	assert.Equal(t, "KindBoolean", KindBoolean.String())
	assert.Equal(t, "KindEnumerated", KindEnumerated.String())
	assert.Equal(t, "FieldKind(0)", FieldKind(0).String())
}
