package schema

import (
	"strconv"
	"strings"
)

// RangeForm identifies which source encoding a field range used.
type RangeForm int

const (
	_ RangeForm = iota

	// FormBit is a bare integer: a single bit at that offset.
	FormBit
	// FormRange is an "offset,width" string.
	FormRange
	// FormEnum is a sequence whose first element is keyed by an
	// "offset,width" string, followed by enum entries.
	FormEnum
)

// String returns the name used for the form in diagnostics.
func (f RangeForm) String() string {
	switch f {
	case FormBit:
		return "bit"
	case FormRange:
		return "range"
	case FormEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// EnumEntry is one name/value pair of an enumerated field, in declaration order.
type EnumEntry struct {
	Name  string
	Value uint64
	Line  int
}

// FieldRange is the normalized form of every field range encoding.
// Enum is non-empty only for FormEnum.
type FieldRange struct {
	Form   RangeForm
	Offset int
	Width  int
	Enum   []EnumEntry
}

// ParseRange parses an "offset,width" string. Exactly one comma is required,
// both halves are unsigned decimal integers and whitespace around either
// half is ignored. Width must be at least 1.
func ParseRange(raw string) (offset, width int, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, &RangeFormatError{Raw: raw, Reason: "expected exactly one comma separating offset and width"}
	}

	offsetStr, widthStr := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	if !isDecimal(offsetStr) {
		return 0, 0, &RangeFormatError{Raw: raw, Reason: "offset is not an unsigned decimal integer"}
	}

	if !isDecimal(widthStr) {
		return 0, 0, &RangeFormatError{Raw: raw, Reason: "width is not an unsigned decimal integer"}
	}

	offset, err = strconv.Atoi(offsetStr)
	if err != nil {
		return 0, 0, &RangeFormatError{Raw: raw, Reason: "offset is out of range"}
	}

	width, err = strconv.Atoi(widthStr)
	if err != nil {
		return 0, 0, &RangeFormatError{Raw: raw, Reason: "width is out of range"}
	}

	if width < 1 {
		return 0, 0, &RangeFormatError{Raw: raw, Reason: "width must be at least 1"}
	}

	return offset, width, nil
}

// isDecimal reports whether s is a non-empty run of ASCII digits. Signs are
// not part of the range syntax.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !isDigit(rune(s[i])) {
			return false
		}
	}

	return true
}
