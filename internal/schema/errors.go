package schema

import (
	"errors"
	"fmt"

	"regdefgen/internal/diagnostic"
)

// Sentinel errors for classifying document failures with errors.Is.
var (
	ErrParse       = errors.New("document parse error")
	ErrSchema      = errors.New("schema error")
	ErrRangeFormat = errors.New("range format error")
	ErrVersion     = errors.New("unsupported document version")
)

// ParseError reports a document that is not well-formed YAML.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Name, e.Err)
}

// Unwrap returns ErrParse and the underlying YAML error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// RangeFormatError reports a field range that is none of the accepted
// encodings.
type RangeFormatError struct {
	Raw    string
	Reason string
}

func (e *RangeFormatError) Error() string {
	return fmt.Sprintf("invalid field range %q: %s", e.Raw, e.Reason)
}

// Unwrap returns ErrRangeFormat.
func (e *RangeFormatError) Unwrap() error {
	return ErrRangeFormat
}

// SchemaError reports every error diagnostic found while decoding a
// document. Causes holds the typed errors behind some of the diagnostics
// (range format, version) so errors.As can reach them.
type SchemaError struct {
	Name        string
	Diagnostics *diagnostic.Diagnostics
	Causes      []error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid document %s: %v", e.Name, e.Diagnostics.Error())
}

// Unwrap returns ErrSchema followed by the recorded causes.
func (e *SchemaError) Unwrap() []error {
	return append([]error{ErrSchema}, e.Causes...)
}
