package model

import "fmt"

//go:generate go tool stringer -type=FieldKind -output=fieldkind_string.go

// FieldKind decides which accessor set the emitter renders for a field.
type FieldKind int

const (
	_ FieldKind = iota // zero value is an unset kind

	KindPlain
	// KindBoolean is a one-bit field without an enumeration: SET/CLEAR shorthand.
	KindBoolean
	// KindEnumerated carries enum entries. It wins over KindBoolean for
	// one-bit fields, so those get no SET/CLEAR shorthand.
	KindEnumerated
)

// WordType is the underlying unsigned integer type of a register, in bits.
type WordType int

const (
	U8  WordType = 8
	U16 WordType = 16
	U32 WordType = 32
	U64 WordType = 64
)

// ParseWordType maps a document type tag (u8, u16, u32, u64) to a WordType.
func ParseWordType(tag string) (WordType, error) {
	switch tag {
	case "u8":
		return U8, nil
	case "u16":
		return U16, nil
	case "u32":
		return U32, nil
	case "u64":
		return U64, nil
	default:
		return 0, fmt.Errorf("unknown register type %q", tag)
	}
}

// Bits returns the register width in bits.
func (w WordType) Bits() int {
	return int(w)
}

// String returns the document type tag.
func (w WordType) String() string {
	return fmt.Sprintf("u%d", int(w))
}
