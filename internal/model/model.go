package model

import "math"

// Unit is everything built from one document: the namespaces to emit and
// where to write them. It is never mutated after Build returns.
type Unit struct {
	// Source is the input file name quoted in the generated header.
	Source string
	// Output is the declared output path.
	Output     string
	Namespaces []Namespace
}

// Namespace groups registers under one C++ namespace.
type Namespace struct {
	Name      string
	Registers []Register
}

// Register is a fixed-width register and its fields in declaration order.
type Register struct {
	Name string
	Word WordType
	// SystemName is the system-register alias, empty when not declared.
	SystemName string
	Fields     []Field
}

// HasSystemName reports whether the register is bound to a system-register alias.
func (r *Register) HasSystemName() bool {
	return r.SystemName != ""
}

// Field is a bit range of a register.
type Field struct {
	Name   string
	Offset int
	Width  int
	Kind   FieldKind
	// Enum lists the entries of an enumerated field in declaration order.
	Enum []EnumValue
}

// End returns the first bit past the field, saturating at math.MaxInt.
func (f *Field) End() int {
	if f.Width > math.MaxInt-f.Offset {
		return math.MaxInt
	}

	return f.Offset + f.Width
}

// Fits reports whether the field lies within the low bits of a register.
func (f *Field) Fits(bits int) bool {
	return f.Offset < bits && f.Width <= bits-f.Offset
}

// Overlaps reports whether two fields share at least one bit.
func (f *Field) Overlaps(other *Field) bool {
	return f.Offset < other.End() && other.Offset < f.End()
}

// EnumValue is a named value of an enumerated field.
type EnumValue struct {
	Name  string
	Value uint64
}
