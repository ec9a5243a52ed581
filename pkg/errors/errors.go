package errors

import (
	"fmt"
)

// ParseError represents a theme document that could not be decoded, with
// optional line metadata.
type ParseError struct {
	Path    string
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

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures an invalid theme document field or an unknown
// selector name supplied from outside the core.
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

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ContractViolation is the panic value raised when a caller breaks an API
// contract of the resolution core, such as reading the empty side of an
// icon or passing an enum value outside its closed set.
type ContractViolation struct {
	Message string
}

func (e *ContractViolation) Error() string {
	if e == nil {
		return ""
	}
	return "contract violation: " + e.Message
}

// NewContractViolation constructs a ContractViolation.
func NewContractViolation(format string, args ...any) *ContractViolation {
	return &ContractViolation{Message: fmt.Sprintf(format, args...)}
}

// Violation panics with a *ContractViolation built from the format string.
// It never returns.
func Violation(format string, args ...any) {
	panic(NewContractViolation(format, args...))
}
