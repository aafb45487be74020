// Package gen provides deterministic C++ code generation for register
// definitions targeting the mei::registers framework.
//
// For each register the generator emits a GenericRegister type carrying one
// nested GenericField type and member per field, in declaration order:
//   - a call operator and ValFromRaw returning the field's Value wrapper
//   - SET and CLEAR constants for one-bit fields without an enumeration
//   - one constant per entry, an Enum type, EnumStr and IsValid for
//     enumerated fields
//   - a field_types tuple, the register instance and, when the register has
//     a system name, a DEFINE_SYSTEM_REGISTER binding
//
// Indentation depth belongs to a per-document emitter, so documents can be
// generated concurrently and output is byte-identical across runs.
package gen
