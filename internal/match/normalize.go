package match

import (
	"strings"
	"unicode"
)

// NormalizeKey folds a document key or type tag for fuzzy comparison:
// lower case with '_', '-' and spaces removed, so "systemName",
// "System-Name" and "system_name" compare equal.
func NormalizeKey(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
