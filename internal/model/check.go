package model

import (
	"fmt"

	"regdefgen/internal/diagnostic"
)

// Check looks for the problems the compiler tolerates by default: fields
// outside the register width, overlapping fields, duplicate names, repeated
// enum values and enum values that do not fit in their field. Everything is
// reported as a warning; strict mode promotes them to errors.
func Check(u *Unit) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for i := range u.Namespaces {
		ns := &u.Namespaces[i]
		seenRegs := map[string]struct{}{}

		for j := range ns.Registers {
			reg := &ns.Registers[j]
			regPath := ns.Name + "::" + reg.Name

			if _, ok := seenRegs[reg.Name]; ok {
				res.AddWarning("duplicate_register", fmt.Sprintf("register %q declared more than once", reg.Name), regPath, 0)
			}

			seenRegs[reg.Name] = struct{}{}

			checkRegister(res, regPath, reg)
		}
	}

	return res
}

func checkRegister(res *diagnostic.Diagnostics, regPath string, reg *Register) {
	seenFields := map[string]struct{}{}

	for i := range reg.Fields {
		fld := &reg.Fields[i]
		fieldPath := regPath + "::" + fld.Name

		if _, ok := seenFields[fld.Name]; ok {
			res.AddWarning("duplicate_field", fmt.Sprintf("field %q declared more than once", fld.Name), fieldPath, 0)
		}

		seenFields[fld.Name] = struct{}{}

		if !fld.Fits(reg.Word.Bits()) {
			res.AddWarning("field_out_of_range",
				fmt.Sprintf("%d bits at offset %d exceed the %d-bit register", fld.Width, fld.Offset, reg.Word.Bits()),
				fieldPath, 0)
		}

		for j := 0; j < i; j++ {
			other := &reg.Fields[j]
			if fld.Overlaps(other) {
				res.AddWarning("field_overlap",
					fmt.Sprintf("bits [%d, %d) overlap field %q", fld.Offset, fld.End(), other.Name),
					fieldPath, 0)
			}
		}

		checkEnum(res, fieldPath, fld)
	}
}

func checkEnum(res *diagnostic.Diagnostics, fieldPath string, fld *Field) {
	names := map[string]struct{}{}
	values := map[uint64]string{}

	for _, e := range fld.Enum {
		entryPath := fieldPath + "::" + e.Name

		if _, ok := names[e.Name]; ok {
			res.AddWarning("duplicate_enum_name", fmt.Sprintf("enum entry %q declared more than once", e.Name), entryPath, 0)
		}

		names[e.Name] = struct{}{}

		if prev, ok := values[e.Value]; ok {
			res.AddWarning("duplicate_enum_value",
				fmt.Sprintf("value %d already used by %q; lookups resolve to %q", e.Value, prev, prev),
				entryPath, 0)
		} else {
			values[e.Value] = e.Name
		}

		if fld.Width < 64 && e.Value >= uint64(1)<<fld.Width {
			res.AddWarning("enum_value_overflow",
				fmt.Sprintf("value %d does not fit in %d bits", e.Value, fld.Width),
				entryPath, 0)
		}
	}
}
