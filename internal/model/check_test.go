package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(t *testing.T, u *Unit) []string {
	t.Helper()

	res := Check(u)
	require.Empty(t, res.Errors)

	var out []string
	for _, w := range res.Warnings {
		out = append(out, w.Code)
	}

	return out
}

func unitWith(regs ...Register) *Unit {
	return &Unit{Namespaces: []Namespace{{Name: "dev", Registers: regs}}}
}

func TestCheck_Clean(t *testing.T) {
	u, err := Build(ctrlFile())
	require.NoError(t, err)

	assert.Empty(t, codes(t, u))
}

func TestCheck_Findings(t *testing.T) {
	tests := []struct {
		name string
		reg  Register
		want []string
	}{
		{
			name: "field past register width",
			reg:  Register{Name: "R", Word: U8, Fields: []Field{{Name: "a", Offset: 6, Width: 4}}},
			want: []string{"field_out_of_range"},
		},
		{
			name: "field ending at register width",
			reg:  Register{Name: "R", Word: U8, Fields: []Field{{Name: "a", Offset: 4, Width: 4}}},
			want: nil,
		},
		{
			name: "overlapping fields",
			reg: Register{Name: "R", Word: U32, Fields: []Field{
				{Name: "a", Offset: 0, Width: 4},
				{Name: "b", Offset: 3, Width: 2},
			}},
			want: []string{"field_overlap"},
		},
		{
			name: "adjacent fields",
			reg: Register{Name: "R", Word: U32, Fields: []Field{
				{Name: "a", Offset: 0, Width: 4},
				{Name: "b", Offset: 4, Width: 2},
			}},
			want: nil,
		},
		{
			name: "duplicate field name",
			reg: Register{Name: "R", Word: U32, Fields: []Field{
				{Name: "a", Offset: 0, Width: 1},
				{Name: "a", Offset: 1, Width: 1},
			}},
			want: []string{"duplicate_field"},
		},
		{
			name: "enum duplicates and overflow",
			reg: Register{Name: "R", Word: U32, Fields: []Field{
				{Name: "m", Offset: 0, Width: 2, Kind: KindEnumerated, Enum: []EnumValue{
					{"A", 0}, {"B", 0}, {"A", 1}, {"C", 4},
				}},
			}},
			want: []string{"duplicate_enum_value", "duplicate_enum_name", "enum_value_overflow"},
		},
		{
			name: "full width enum value never overflows",
			reg: Register{Name: "R", Word: U64, Fields: []Field{
				{Name: "m", Offset: 0, Width: 64, Kind: KindEnumerated, Enum: []EnumValue{{"MAX", ^uint64(0)}}},
			}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(t, unitWith(tt.reg)))
		})
	}
}

func TestCheck_DuplicateRegister(t *testing.T) {
	u := unitWith(
		Register{Name: "R", Word: U8},
		Register{Name: "R", Word: U8},
	)

	res := Check(u)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "duplicate_register", res.Warnings[0].Code)
	assert.Equal(t, "dev::R", res.Warnings[0].Path)
}

func TestCheck_PromoteForStrictMode(t *testing.T) {
	u := unitWith(Register{Name: "R", Word: U8, Fields: []Field{{Name: "a", Offset: 7, Width: 2}}})

	res := Check(u)
	require.False(t, res.HasErrors())

	res.Promote()
	require.True(t, res.HasErrors())
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "dev::R::a", res.Errors[0].Path)
	assert.Contains(t, res.Error().Error(), "field_out_of_range")
}

func TestCheck_HugeOffsetIsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		width  int
	}{
		{"offset near int max", math.MaxInt, 2},
		{"width near int max", 1, math.MaxInt},
		{"offset at register width", 8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := unitWith(Register{Name: "R", Word: U8, Fields: []Field{
				{Name: "lo", Offset: 0, Width: 1},
				{Name: "a", Offset: tt.offset, Width: tt.width},
			}})

			assert.Equal(t, []string{"field_out_of_range"}, codes(t, u))
		})
	}
}

func TestField_EndSaturates(t *testing.T) {
	f := Field{Offset: math.MaxInt, Width: 2}
	assert.Equal(t, math.MaxInt, f.End())

	other := Field{Offset: 0, Width: 4}
	assert.False(t, f.Overlaps(&other))
	assert.False(t, other.Overlaps(&f))
}
