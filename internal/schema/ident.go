package schema

// IsValidIdent reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			// Subsequent characters can be letter, digit, or underscore
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// cppKeywords are the C++20 keywords and alternative operator tokens.
var cppKeywords = setOf(
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char8_t", "char16_t", "char32_t",
	"class", "compl", "concept", "const", "consteval", "constexpr", "constinit",
	"const_cast", "continue", "co_await", "co_return", "co_yield", "decltype",
	"default", "delete", "do", "double", "dynamic_cast", "else", "enum",
	"explicit", "export", "extern", "false", "float", "for", "friend", "goto",
	"if", "inline", "int", "long", "mutable", "namespace", "new", "noexcept",
	"not", "not_eq", "nullptr", "operator", "or", "or_eq", "private",
	"protected", "public", "register", "reinterpret_cast", "requires",
	"return", "short", "signed", "sizeof", "static", "static_assert",
	"static_cast", "struct", "switch", "template", "this", "thread_local",
	"throw", "true", "try", "typedef", "typeid", "typename", "union",
	"unsigned", "using", "virtual", "void", "volatile", "wchar_t", "while",
	"xor", "xor_eq",
)

// Names the generated code or the mei::registers framework already uses in
// the scope a declaration lands in. Redeclaring them either fails to compile
// or hides a name the generated code looks up later.
var reservedNames = map[string]map[string]struct{}{
	"namespace": setOf(),
	// Namespace scope: framework templates and the defs namespace opened by
	// DEFINE_SYSTEM_REGISTER.
	"register": setOf("GenericRegister", "GenericField", "Value", "defs"),
	// GenericRegister scope.
	"field": setOf("GenericRegister", "GenericField", "Value",
		"word_type", "name", "field_types"),
	// GenericField scope, including the members emitted for every field.
	"enum": setOf("GenericField", "Value",
		"word_type", "register_type", "offset", "numbits", "name",
		"value_type", "ValFromRaw", "SET", "CLEAR", "Enum", "EnumStr", "IsValid"),
}

// ReservedReason explains why name cannot be used for a declaration of the
// given kind ("namespace", "register", "field" or "enum"), or returns "" when
// it can.
func ReservedReason(kind, name string) string {
	if _, ok := cppKeywords[name]; ok {
		return "is a C++ keyword"
	}

	if _, ok := reservedNames[kind][name]; ok {
		return "clashes with a name used by the generated code"
	}

	return ""
}

func setOf(names ...string) map[string]struct{} {
	res := make(map[string]struct{}, len(names))
	for _, n := range names {
		res[n] = struct{}{}
	}

	return res
}
