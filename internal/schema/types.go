package schema

// File is a register definition document that passed structural validation.
// Every range has already been normalized.
type File struct {
	// Name is the source file name.
	Name string
	// Version is the optional declared schema version.
	Version string
	// Output is the declared path of the generated file.
	Output     string
	Namespaces []Namespace
}

// Namespace is one entry of the top-level "namespaces" sequence.
type Namespace struct {
	Name      string
	Path      string
	Line      int
	Registers []Register
}

// Register is one entry of a namespace's "registers" sequence.
type Register struct {
	Name string
	// Type is one of u8, u16, u32, u64.
	Type string
	// SystemName is the optional system-register alias.
	SystemName string
	Path       string
	Line       int
	Fields     []Field
}

// Field is one single-key entry of a register's "fields" sequence.
type Field struct {
	Name  string
	Path  string
	Line  int
	Range FieldRange
}

// RegisterTypes lists the accepted register type tags in width order.
var RegisterTypes = []string{"u8", "u16", "u32", "u64"}
