package model

import (
	"fmt"

	"regdefgen/internal/schema"
)

// Build turns a decoded document into a Unit. Declaration order of
// namespaces, registers, fields and enum entries is kept as is.
func Build(f *schema.File) (*Unit, error) {
	u := &Unit{
		Source:     f.Name,
		Output:     f.Output,
		Namespaces: make([]Namespace, 0, len(f.Namespaces)),
	}

	for _, sns := range f.Namespaces {
		ns := Namespace{
			Name:      sns.Name,
			Registers: make([]Register, 0, len(sns.Registers)),
		}

		for _, sreg := range sns.Registers {
			reg, err := buildRegister(&sreg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", sreg.Path, err)
			}

			ns.Registers = append(ns.Registers, reg)
		}

		u.Namespaces = append(u.Namespaces, ns)
	}

	return u, nil
}

func buildRegister(sreg *schema.Register) (Register, error) {
	word, err := ParseWordType(sreg.Type)
	if err != nil {
		return Register{}, err
	}

	reg := Register{
		Name:       sreg.Name,
		Word:       word,
		SystemName: sreg.SystemName,
		Fields:     make([]Field, 0, len(sreg.Fields)),
	}

	for _, sf := range sreg.Fields {
		reg.Fields = append(reg.Fields, buildField(&sf))
	}

	return reg, nil
}

func buildField(sf *schema.Field) Field {
	fld := Field{
		Name:   sf.Name,
		Offset: sf.Range.Offset,
		Width:  sf.Range.Width,
		Kind:   kindOf(sf.Range),
	}

	if len(sf.Range.Enum) > 0 {
		fld.Enum = make([]EnumValue, 0, len(sf.Range.Enum))
		for _, e := range sf.Range.Enum {
			fld.Enum = append(fld.Enum, EnumValue{Name: e.Name, Value: e.Value})
		}
	}

	return fld
}

// kindOf applies the kind rules: an enum payload always wins, then a single
// bit is boolean, everything else is plain.
func kindOf(r schema.FieldRange) FieldKind {
	switch {
	case r.Form == schema.FormEnum:
		return KindEnumerated
	case r.Width == 1:
		return KindBoolean
	default:
		return KindPlain
	}
}
