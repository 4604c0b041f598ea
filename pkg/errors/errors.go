// Package errors defines the typed errors returned while loading elevate
// configuration.
package errors

import (
	"fmt"
	"strings"
)

// ParseError reports a configuration file that could not be decoded.
type ParseError struct {
	Path string
	// Line is 1-based; zero when the decoder did not report a position.
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a decoded value that is out of range.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationErrors collects every field that failed validation so a user
// can fix a file in one pass.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	switch len(v) {
	case 0:
		return ""
	case 1:
		return v[0].Error()
	}
	parts := make([]string, len(v))
	for i, err := range v {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors:\n  %s", len(v), strings.Join(parts, "\n  "))
}

// Unwrap lets errors.As find the individual field errors.
func (v ValidationErrors) Unwrap() []error {
	out := make([]error, len(v))
	for i, err := range v {
		out[i] = err
	}
	return out
}

// Fields lists the failing field paths in order.
func (v ValidationErrors) Fields() []string {
	out := make([]string, len(v))
	for i, err := range v {
		out[i] = err.Field
	}
	return out
}
