package schema

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"regdefgen/internal/diagnostic"
	"regdefgen/internal/match"
)

// Top-level document keys.
const (
	keyVersion    = "version"
	keyNamespaces = "namespaces"
	keyOutput     = "output"
)

// Keys accepted at each level, used to suggest a spelling for unknown keys.
var (
	fileKeys      = []string{keyVersion, keyNamespaces, keyOutput}
	namespaceKeys = []string{"name", "registers"}
	registerKeys  = []string{"name", "type", "system_name", "fields"}
)

// Decode validates the structure of a loaded document and converts it into
// a File. Every problem is reported as a diagnostic with a path pointing at
// the offending node; when any of them is an error the returned error is a
// *SchemaError and the File is nil. Warnings are returned in both cases.
func Decode(doc *Document) (*File, *diagnostic.Diagnostics, error) {
	d := &decoder{}
	f := d.file(doc)

	if d.diags.HasErrors() {
		return nil, &d.diags, &SchemaError{Name: doc.Name, Diagnostics: &d.diags, Causes: d.causes}
	}

	return f, &d.diags, nil
}

type decoder struct {
	diags  diagnostic.Diagnostics
	causes []error
}

func (d *decoder) errorf(node *yaml.Node, path, code, format string, args ...any) {
	d.diags.AddError(code, fmt.Sprintf(format, args...), path, lineOf(node))
}

func (d *decoder) warnf(node *yaml.Node, path, code, format string, args ...any) {
	d.diags.AddWarning(code, fmt.Sprintf(format, args...), path, lineOf(node))
}

// unknownKey warns about a key the compiler ignores, naming the closest
// known key when there is one.
func (d *decoder) unknownKey(key *yaml.Node, path, scope string, known []string) {
	if hint := match.Suggest(key.Value, known); hint != "" {
		d.warnf(key, path, "unknown_key", "unknown %s key %q (did you mean %q?)", scope, key.Value, hint)
		return
	}

	d.warnf(key, path, "unknown_key", "unknown %s key %q", scope, key.Value)
}

// cause records err as a diagnostic and keeps it reachable through
// SchemaError.Unwrap.
func (d *decoder) cause(node *yaml.Node, path, code string, err error) {
	d.diags.AddError(code, err.Error(), path, lineOf(node))
	d.causes = append(d.causes, err)
}

func (d *decoder) file(doc *Document) *File {
	f := &File{Name: doc.Name}

	root := doc.Root
	if root == nil || root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		d.errorf(nil, "", "empty_document", "document is empty")
		return f
	}

	if root.Kind == yaml.DocumentNode {
		root = root.Content[0]
	}

	root = deref(root)
	if root.Kind != yaml.MappingNode {
		d.errorf(root, "", "wrong_shape", "document must be a mapping, got %s", kindName(root))
		return f
	}

	var namespaces, output *yaml.Node

	forEachPair(root, func(key, value *yaml.Node) {
		switch key.Value {
		case keyVersion:
			f.Version = d.version(value)
		case keyNamespaces:
			namespaces = value
		case keyOutput:
			output = value
		default:
			d.unknownKey(key, key.Value, "top-level", fileKeys)
		}
	})

	if output == nil {
		d.errorf(root, keyOutput, "missing_key", "missing required key %q", keyOutput)
	} else if s, ok := d.scalarString(output, keyOutput); ok {
		if s == "" {
			d.errorf(output, keyOutput, "wrong_shape", "output path must not be empty")
		}

		f.Output = s
	}

	if namespaces == nil {
		d.errorf(root, keyNamespaces, "missing_key", "missing required key %q", keyNamespaces)
		return f
	}

	forEachItem(d, namespaces, keyNamespaces, func(i int, item *yaml.Node, path string) {
		if ns, ok := d.namespace(item, path); ok {
			f.Namespaces = append(f.Namespaces, ns)
		}
	})

	return f
}

func (d *decoder) version(node *yaml.Node) string {
	s, ok := d.scalarString(node, keyVersion)
	if !ok {
		return ""
	}

	compatible, err := IsCompatible(s)
	if err != nil {
		d.cause(node, keyVersion, "unsupported_version", fmt.Errorf("%w: %w", ErrVersion, err))
		return s
	}

	if !compatible {
		d.cause(node, keyVersion, "unsupported_version",
			fmt.Errorf("%w: %s (supported: ^%s)", ErrVersion, s, SchemaVersion))
	}

	return s
}

func (d *decoder) namespace(item *yaml.Node, path string) (Namespace, bool) {
	body, bodyPath, ok := d.wrapped(item, path, "namespace")
	if !ok {
		return Namespace{}, false
	}

	ns := Namespace{Path: bodyPath, Line: body.Line}

	var registers *yaml.Node

	forEachPair(body, func(key, value *yaml.Node) {
		switch key.Value {
		case "name":
			ns.Name = d.identifier(value, join(bodyPath, "name"), "namespace")
		case "registers":
			registers = value
		default:
			d.unknownKey(key, join(bodyPath, key.Value), "namespace", namespaceKeys)
		}
	})

	if !hasKey(body, "name") {
		d.errorf(body, join(bodyPath, "name"), "missing_key", "namespace is missing %q", "name")
	}

	if registers == nil {
		d.errorf(body, join(bodyPath, "registers"), "missing_key", "namespace is missing %q", "registers")
		return ns, true
	}

	forEachItem(d, registers, join(bodyPath, "registers"), func(i int, item *yaml.Node, path string) {
		if reg, ok := d.register(item, path); ok {
			ns.Registers = append(ns.Registers, reg)
		}
	})

	types := map[string]struct{}{}
	for _, reg := range ns.Registers {
		types[typeName(reg.Name)] = struct{}{}
	}

	for _, reg := range ns.Registers {
		if _, ok := types[reg.Name]; ok {
			d.diags.AddError("invalid_identifier",
				fmt.Sprintf("register name %q clashes with the generated type of another register", reg.Name),
				join(reg.Path, "name"), reg.Line)
		}
	}

	return ns, true
}

func (d *decoder) register(item *yaml.Node, path string) (Register, bool) {
	body, bodyPath, ok := d.wrapped(item, path, "register")
	if !ok {
		return Register{}, false
	}

	reg := Register{Path: bodyPath, Line: body.Line}

	var fields *yaml.Node

	forEachPair(body, func(key, value *yaml.Node) {
		keyPath := join(bodyPath, key.Value)

		switch key.Value {
		case "name":
			reg.Name = d.identifier(value, keyPath, "register")
		case "type":
			if s, ok := d.scalarString(value, keyPath); ok {
				if !slices.Contains(RegisterTypes, s) {
					msg := fmt.Sprintf("register type %q is not one of %s", s, strings.Join(RegisterTypes, ", "))
					if hint := match.Suggest(s, RegisterTypes); hint != "" {
						msg += fmt.Sprintf(" (did you mean %q?)", hint)
					}

					d.errorf(value, keyPath, "invalid_register_type", "%s", msg)
				}

				reg.Type = s
			}
		case "system_name":
			if s, ok := d.scalarString(value, keyPath); ok {
				if s == "" {
					d.errorf(value, keyPath, "wrong_shape", "system_name must not be empty when present")
				} else if !isPrintableASCII(s) {
					d.errorf(value, keyPath, "invalid_system_name", "system_name %q must be printable ASCII", s)
				}

				reg.SystemName = s
			}
		case "fields":
			fields = value
		default:
			d.unknownKey(key, keyPath, "register", registerKeys)
		}
	})

	for _, required := range []string{"name", "type", "fields"} {
		if !hasKey(body, required) {
			d.errorf(body, join(bodyPath, required), "missing_key", "register is missing %q", required)
		}
	}

	if fields == nil {
		return reg, true
	}

	forEachItem(d, fields, join(bodyPath, "fields"), func(i int, item *yaml.Node, path string) {
		if fld, ok := d.field(item, path); ok {
			reg.Fields = append(reg.Fields, fld)
		}
	})

	types := map[string]string{typeName(reg.Name): "register " + reg.Name}
	for _, fld := range reg.Fields {
		types[typeName(fld.Name)] = "field " + fld.Name
	}

	for _, fld := range reg.Fields {
		if fld.Name == reg.Name {
			d.diags.AddError("invalid_identifier",
				fmt.Sprintf("field name %q repeats the register name; its type would redeclare %s", fld.Name, typeName(reg.Name)),
				fld.Path, fld.Line)

			continue
		}

		if owner, ok := types[fld.Name]; ok {
			d.diags.AddError("invalid_identifier",
				fmt.Sprintf("field name %q clashes with the generated type of %s", fld.Name, owner),
				fld.Path, fld.Line)
		}
	}

	return reg, true
}

func (d *decoder) field(item *yaml.Node, path string) (Field, bool) {
	item = deref(item)
	if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
		d.errorf(item, path, "wrong_shape", "field must be a single-key mapping like {name: range}, got %s", kindName(item))
		return Field{}, false
	}

	key, value := item.Content[0], deref(item.Content[1])
	fieldPath := join(path, key.Value)

	fld := Field{
		Name: d.identifier(key, fieldPath, "field"),
		Path: fieldPath,
		Line: key.Line,
	}

	r, ok := d.fieldRange(value, fieldPath)
	if !ok {
		return Field{}, false
	}

	fld.Range = r

	for _, e := range r.Enum {
		if e.Name == typeName(fld.Name) {
			d.diags.AddError("invalid_identifier",
				fmt.Sprintf("enum name %q clashes with the generated type of field %q", e.Name, fld.Name),
				join(fieldPath, e.Name), e.Line)
		}
	}

	return fld, true
}

// fieldRange resolves the three range encodings into one FieldRange.
func (d *decoder) fieldRange(node *yaml.Node, path string) (FieldRange, bool) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int":
			var bit int
			if err := node.Decode(&bit); err != nil || bit < 0 {
				d.cause(node, path, "invalid_range",
					&RangeFormatError{Raw: node.Value, Reason: "bit offset must be a non-negative integer"})

				return FieldRange{}, false
			}

			return FieldRange{Form: FormBit, Offset: bit, Width: 1}, true

		case "!!str":
			offset, width, err := ParseRange(node.Value)
			if err != nil {
				d.cause(node, path, "invalid_range", err)
				return FieldRange{}, false
			}

			return FieldRange{Form: FormRange, Offset: offset, Width: width}, true
		}

	case yaml.SequenceNode:
		return d.enumRange(node, path)
	}

	d.cause(node, path, "invalid_range", &RangeFormatError{
		Raw:    node.Value,
		Reason: fmt.Sprintf("expected an integer, an \"offset,width\" string or an enum sequence, got %s", kindName(node)),
	})

	return FieldRange{}, false
}

// enumRange handles [ {"offset,width": ~, NAME: value...}, {NAME: value...}... ].
// The first key of the first element is the range; every other entry, in
// that element and the following ones, is an enum entry.
func (d *decoder) enumRange(node *yaml.Node, path string) (FieldRange, bool) {
	if len(node.Content) == 0 {
		d.cause(node, path, "invalid_range", &RangeFormatError{Raw: "[]", Reason: "enum sequence is empty"})
		return FieldRange{}, false
	}

	first := deref(node.Content[0])
	if first.Kind != yaml.MappingNode || len(first.Content) == 0 {
		d.cause(first, index(path, 0), "invalid_range", &RangeFormatError{
			Raw:    first.Value,
			Reason: "first element of an enum sequence must be a mapping keyed by \"offset,width\"",
		})

		return FieldRange{}, false
	}

	rangeKey := first.Content[0]

	offset, width, err := ParseRange(rangeKey.Value)
	if err != nil {
		d.cause(rangeKey, index(path, 0), "invalid_range", err)
		return FieldRange{}, false
	}

	r := FieldRange{Form: FormEnum, Offset: offset, Width: width}
	ok := true

	for i, elem := range node.Content {
		elemPath := index(path, i)

		elem = deref(elem)
		if elem.Kind != yaml.MappingNode {
			d.errorf(elem, elemPath, "wrong_shape", "enum entries must be mappings of NAME: value, got %s", kindName(elem))
			ok = false

			continue
		}

		start := 0
		if i == 0 {
			start = 2
		}

		for j := start; j+1 < len(elem.Content); j += 2 {
			entry, valid := d.enumEntry(elem.Content[j], deref(elem.Content[j+1]), elemPath)
			if !valid {
				ok = false
				continue
			}

			r.Enum = append(r.Enum, entry)
		}
	}

	if ok && len(r.Enum) == 0 {
		d.warnf(node, path, "empty_enum", "enum sequence declares no entries")
	}

	return r, ok
}

func (d *decoder) enumEntry(key, value *yaml.Node, path string) (EnumEntry, bool) {
	entryPath := join(path, key.Value)

	if !IsValidIdent(key.Value) {
		d.errorf(key, entryPath, "invalid_identifier", "enum name %q is not a valid identifier", key.Value)
		return EnumEntry{}, false
	}

	if reason := ReservedReason("enum", key.Value); reason != "" {
		d.errorf(key, entryPath, "invalid_identifier", "enum name %q %s", key.Value, reason)
		return EnumEntry{}, false
	}

	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!int" || strings.HasPrefix(value.Value, "-") {
		d.errorf(value, entryPath, "invalid_enum_value", "enum value %q must be a non-negative integer", value.Value)
		return EnumEntry{}, false
	}

	var v uint64
	if err := value.Decode(&v); err != nil {
		d.errorf(value, entryPath, "invalid_enum_value", "enum value %q: %v", value.Value, err)
		return EnumEntry{}, false
	}

	return EnumEntry{Name: key.Value, Value: v, Line: key.Line}, true
}

// wrapped unwraps the single-key {"namespace": {...}} / {"register": {...}}
// envelope used by sequence items.
func (d *decoder) wrapped(item *yaml.Node, path, key string) (*yaml.Node, string, bool) {
	item = deref(item)
	if item.Kind != yaml.MappingNode {
		d.errorf(item, path, "wrong_shape", "expected a mapping with key %q, got %s", key, kindName(item))
		return nil, "", false
	}

	body := lookup(item, key)
	if body == nil {
		d.errorf(item, join(path, key), "missing_key", "missing required key %q", key)
		return nil, "", false
	}

	bodyPath := join(path, key)

	body = deref(body)
	if body.Kind != yaml.MappingNode {
		d.errorf(body, bodyPath, "wrong_shape", "%s must be a mapping, got %s", key, kindName(body))
		return nil, "", false
	}

	return body, bodyPath, true
}

func (d *decoder) identifier(node *yaml.Node, path, what string) string {
	s, ok := d.scalarString(node, path)
	if !ok {
		return ""
	}

	if !IsValidIdent(s) {
		d.errorf(node, path, "invalid_identifier", "%s name %q is not a valid identifier", what, s)
	} else if reason := ReservedReason(what, s); reason != "" {
		d.errorf(node, path, "invalid_identifier", "%s name %q %s", what, s, reason)
	}

	return s
}

func (d *decoder) scalarString(node *yaml.Node, path string) (string, bool) {
	node = deref(node)
	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		d.errorf(node, path, "wrong_shape", "expected a scalar value, got %s", kindName(node))
		return "", false
	}

	return node.Value, true
}

func forEachItem(d *decoder, seq *yaml.Node, path string, fn func(i int, item *yaml.Node, path string)) {
	seq = deref(seq)
	if seq.Kind != yaml.SequenceNode {
		d.errorf(seq, path, "wrong_shape", "expected a sequence, got %s", kindName(seq))
		return
	}

	for i, item := range seq.Content {
		fn(i, item, index(path, i))
	}
}

func forEachPair(mapping *yaml.Node, fn func(key, value *yaml.Node)) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		fn(mapping.Content[i], mapping.Content[i+1])
	}
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}

	return nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	return lookup(mapping, key) != nil
}

// deref follows YAML aliases to the anchored node.
func deref(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func lineOf(node *yaml.Node) int {
	if node == nil {
		return 0
	}

	return node.Line
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return "null"
		}

		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}

// typeName is the C++ type the generator derives from a register or field name.
func typeName(name string) string {
	return name + "_t"
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}

	return true
}

func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
