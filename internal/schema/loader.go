package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Document is a loaded, not yet validated, register definition document.
type Document struct {
	// Name is the base name of the source file, quoted in generated headers.
	Name string
	// Root is the YAML document node. Its Kind is zero for an empty input.
	Root *yaml.Node
}

// LoadFile loads and parses a YAML register definition file from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	return Parse(filepath.Base(path), data)
}

// Parse parses YAML data into a generic node tree. Only well-formedness is
// checked here; Decode does the structural validation. The input must hold
// at most one YAML document.
func Parse(name string, data []byte) (*Document, error) {
	var root yaml.Node

	dec := yaml.NewDecoder(bytes.NewReader(data))

	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{Name: name, Root: &root}, nil
		}

		return nil, &ParseError{Name: name, Err: err}
	}

	var extra yaml.Node

	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, &ParseError{Name: name, Err: err}
	default:
		return nil, &ParseError{Name: name, Err: fmt.Errorf("line %d: only one document is allowed per file", extra.Line)}
	}

	return &Document{Name: name, Root: &root}, nil
}
