package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"regdefgen/internal/model"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// ToolName is quoted in the generated-code header.
	ToolName string
	// Indent is one indentation unit.
	Indent string
	// NamespacePrefix is prepended to every document namespace, e.g.
	// "mei::registers" turns "dev" into "mei::registers::dev". Empty means
	// the document namespaces are emitted at global scope.
	NamespacePrefix string
	// Includes are the headers included after #pragma once, in order.
	Includes []string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ToolName:        "regdefgen",
		Indent:          "  ",
		NamespacePrefix: "mei::registers",
		Includes:        []string{"optional", "tuple", "mei/registers.hpp"},
	}
}

// GeneratedFile represents a generated C++ header.
type GeneratedFile struct {
	// Path is the output path declared by the document.
	Path string
	// Content is the rendered source.
	Content []byte
}

// Generator renders register definitions to C++ source.
// It holds no per-document state and is safe for concurrent use.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

type headerData struct {
	Tool     string
	Source   string
	Includes []string
}

var headerTemplate = template.Must(template.New("header").Parse(
	`// Code generated by {{.Tool}} from {{.Source}}. DO NOT EDIT.

#pragma once

{{range .Includes}}#include <{{.}}>
{{end}}`))

// Generate renders one unit. The same unit always renders to the same bytes.
func (g *Generator) Generate(u *model.Unit) (*GeneratedFile, error) {
	var buf bytes.Buffer

	err := headerTemplate.Execute(&buf, headerData{
		Tool:     g.config.ToolName,
		Source:   u.Source,
		Includes: g.config.Includes,
	})
	if err != nil {
		return nil, fmt.Errorf("executing header template: %w", err)
	}

	e := newEmitter(&buf, g.config.Indent)

	for i := range u.Namespaces {
		e.blank()
		e.namespace(g.qualify(u.Namespaces[i].Name), &u.Namespaces[i])
	}

	if e.depth != 0 {
		return nil, fmt.Errorf("unbalanced scopes after emission (depth %d)", e.depth)
	}

	return &GeneratedFile{
		Path:    u.Output,
		Content: buf.Bytes(),
	}, nil
}

func (g *Generator) qualify(name string) string {
	if g.config.NamespacePrefix == "" {
		return name
	}

	return g.config.NamespacePrefix + "::" + name
}
