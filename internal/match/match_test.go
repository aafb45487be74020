package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"fields", "feilds", 2},
		{"u32", "u23", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("name", "name"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("type", "tipe"), 1e-9)
}

func TestNormalizeKey(t *testing.T) {
	for _, s := range []string{"system_name", "systemName", "System-Name", "system name"} {
		assert.Equal(t, "systemname", NormalizeKey(s), s)
	}
}

func TestSuggest(t *testing.T) {
	registerKeys := []string{"name", "type", "system_name", "fields"}

	tests := []struct {
		name string
		want string
	}{
		{"systemName", "system_name"},
		{"sytem_name", "system_name"},
		{"feilds", "fields"},
		{"typ", "type"},
		{"description", ""},
		{"x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.name, registerKeys))
		})
	}

	types := []string{"u8", "u16", "u32", "u64"}
	assert.Equal(t, "u32", Suggest("U32", types))
	assert.Equal(t, "u32", Suggest("u31", types))
	assert.Equal(t, "", Suggest("anything", nil))
}
