// Package errors provides structured error types for the resumeforge application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and the render service
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow the failure taxonomy of the generation pipeline:
//   - NOT_FOUND: the input document path does not exist
//   - PARSE_ERROR: the input is not valid structured data
//   - VALIDATION_ERROR: the document is empty, misses required fields, or
//     carries wrong-typed configuration
//   - UNKNOWN_SECTION: an unrecognized section name (the only non-fatal kind;
//     callers log it and continue)
//   - RENDER_ERROR: the layout/render delegate failed
//   - INTERNAL_ERROR, UNSUPPORTED: infrastructure faults
//
// # Usage
//
//	err := errors.New(errors.ErrCodeValidation, "missing required field %q", "personal.name")
//	if errors.Is(err, errors.ErrCodeValidation) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input loading errors
	ErrCodeNotFound   Code = "NOT_FOUND"
	ErrCodeParse      Code = "PARSE_ERROR"
	ErrCodeValidation Code = "VALIDATION_ERROR"

	// Composition errors
	ErrCodeUnknownSection Code = "UNKNOWN_SECTION"

	// Output errors
	ErrCodeRender Code = "RENDER_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
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

// Fatal reports whether err should terminate the run.
// Every code except UNKNOWN_SECTION is fatal; plain errors are fatal too.
func Fatal(err error) bool {
	if err == nil {
		return false
	}
	return GetCode(err) != ErrCodeUnknownSection
}
