package gen

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"regdefgen/internal/model"
)

// emitter writes indented lines for one document. Every line is prefixed
// with depth indent units; open and close move the depth.
type emitter struct {
	buf    *bytes.Buffer
	indent string
	depth  int
}

func newEmitter(buf *bytes.Buffer, indent string) *emitter {
	return &emitter{buf: buf, indent: indent}
}

func (e *emitter) line(s string) {
	e.buf.WriteString(strings.Repeat(e.indent, e.depth))
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
}

func (e *emitter) linef(format string, args ...any) {
	e.line(fmt.Sprintf(format, args...))
}

// blank writes an empty line with no indentation.
func (e *emitter) blank() {
	e.buf.WriteByte('\n')
}

func (e *emitter) open(format string, args ...any) {
	e.linef(format, args...)
	e.depth++
}

func (e *emitter) close(format string, args ...any) {
	e.depth--
	e.linef(format, args...)
}

func (e *emitter) namespace(qualified string, ns *model.Namespace) {
	e.open("namespace %s {", qualified)

	for i := range ns.Registers {
		if i > 0 {
			e.blank()
		}

		e.register(&ns.Registers[i])
	}

	e.close("}  // namespace %s", qualified)
}

func (e *emitter) register(reg *model.Register) {
	regType := typeName(reg.Name)

	e.open("struct %s: GenericRegister<ktl::u%d, %s> {", regType, reg.Word.Bits(), strconv.Quote(reg.Name))

	fieldTypes := make([]string, 0, len(reg.Fields))

	for i := range reg.Fields {
		if i > 0 {
			e.blank()
		}

		e.field(regType, &reg.Fields[i])
		fieldTypes = append(fieldTypes, typeName(reg.Fields[i].Name))
	}

	if len(reg.Fields) > 0 {
		e.blank()
	}

	e.linef("using field_types = std::tuple<%s>;", strings.Join(fieldTypes, ", "))
	e.close("};")
	e.blank()
	e.linef("inline constexpr %s %s {};", regType, reg.Name)

	if reg.HasSystemName() {
		e.linef("DEFINE_SYSTEM_REGISTER(%s, %s, %s);", reg.Name, regType, strconv.Quote(reg.SystemName))
	}
}

func (e *emitter) field(regType string, fld *model.Field) {
	fieldType := typeName(fld.Name)

	e.open("struct %s: GenericField<%s, %d, %d, %s> {", fieldType, regType, fld.Offset, fld.Width, strconv.Quote(fld.Name))

	e.linef("using value_type = Value<%s, false, 0>;", fieldType)
	e.blank()
	e.open("constexpr auto operator()(word_type val) const noexcept -> value_type {")
	e.line("return value_type {val};")
	e.close("}")
	e.blank()
	e.open("constexpr auto ValFromRaw(word_type raw) const noexcept -> value_type {")
	e.line("return value_type {raw >> offset::value};")
	e.close("}")

	switch fld.Kind {
	case model.KindBoolean:
		e.blank()
		e.linef("static constexpr Value<%s, true, 1> SET {};", fieldType)
		e.linef("static constexpr Value<%s, true, 0> CLEAR {};", fieldType)
	case model.KindEnumerated:
		e.enum(fieldType, fld)
	}

	e.close("} %s;", fld.Name)
}

func (e *emitter) enum(fieldType string, fld *model.Field) {
	e.blank()

	for _, v := range fld.Enum {
		e.linef("static constexpr Value<%s, true, %s> %s {};", fieldType, literal(v.Value), v.Name)
	}

	e.blank()
	e.open("enum class Enum: word_type {")

	for _, v := range fld.Enum {
		e.linef("%s = %s,", v.Name, literal(v.Value))
	}

	e.close("};")

	cases := uniqueCases(fld.Enum)

	e.blank()
	e.open("static constexpr auto EnumStr(word_type val) noexcept -> std::optional<ktl::string_view> {")
	e.open("switch (val) {")

	for _, v := range cases {
		e.open("case %s:", literal(v.Value))
		e.linef("return %s;", strconv.Quote(v.Name))
		e.depth--
	}

	e.open("default:")
	e.line("return {};")
	e.depth--
	e.close("}")
	e.close("}")

	e.blank()
	e.open("static constexpr auto IsValid(word_type val) noexcept -> bool {")
	e.open("switch (val) {")

	for _, v := range cases {
		e.linef("case %s:", literal(v.Value))
	}

	if len(cases) > 0 {
		e.depth++
		e.line("return true;")
		e.depth--
	}

	e.open("default:")
	e.line("return false;")
	e.depth--
	e.close("}")
	e.close("}")
}

// uniqueCases keeps the first declared entry for every value, so the
// generated switch statements never repeat a case label.
func uniqueCases(values []model.EnumValue) []model.EnumValue {
	seen := make(map[uint64]struct{}, len(values))
	res := make([]model.EnumValue, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v.Value]; ok {
			continue
		}

		seen[v.Value] = struct{}{}
		res = append(res, v)
	}

	return res
}

func typeName(name string) string {
	return name + "_t"
}

// literal renders an unsigned value as a C++ integer literal. Values that do
// not fit a signed 64-bit literal get a ULL suffix.
func literal(v uint64) string {
	if v > math.MaxInt64 {
		return strconv.FormatUint(v, 10) + "ULL"
	}

	return strconv.FormatUint(v, 10)
}
