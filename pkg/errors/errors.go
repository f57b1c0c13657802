// Package errors provides structured error types for bmcanvas.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code], a human-readable message and an optional cause:
//
//   - INVALID_*: the input (document, config, flag) is unusable
//   - FILE_NOT_FOUND: an input path does not exist
//   - DANGLING_REFERENCE: strict mode rejected unresolved references
//   - INTERNAL_ERROR / UNSUPPORTED: everything else
//
// Only structural problems ever abort a render. Dangling references and
// canvas overflow are reported as diagnostics, not errors, unless a caller
// explicitly opts into strictness.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDocument, "unsupported version %q", v)
//	if errors.Is(err, errors.ErrCodeInvalidDocument) {
//	    // reject the input
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, cause, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Reference integrity (strict mode only)
	ErrCodeDanglingReference Code = "DANGLING_REFERENCE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code     // Machine-readable error code
	Message string   // Human-readable message
	Details []string // Individual problems, one per line (optional)
	Cause   error    // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetails attaches individual problem descriptions and returns e.
func (e *Error) WithDetails(details ...string) *Error {
	e.Details = append(e.Details, details...)
	return e
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// DetailsOf returns the details of the first *Error in err's chain.
func DetailsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
