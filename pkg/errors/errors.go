// Package errors provides structured error types for archiview.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the builder, renderer, CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes group into a few families:
//   - INVALID_*: Input validation failures (model files, kinds, viewpoints)
//   - CONTEXT_ERROR: A builder operation outside a valid model context
//   - UNRESOLVED_REFERENCE: Layout output naming an id that was never submitted
//   - ENGINE_ERROR / TIMEOUT: Layout engine invocation failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidKind, "unknown element kind: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidKind) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeEngine, origErr, "layout view %q", name)
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidKind      Code = "INVALID_KIND"
	ErrCodeInvalidViewpoint Code = "INVALID_VIEWPOINT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeDuplicateID      Code = "DUPLICATE_ID"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Model building errors
	ErrCodeContext Code = "CONTEXT_ERROR"

	// Rendering errors
	ErrCodeUnresolvedReference Code = "UNRESOLVED_REFERENCE"
	ErrCodeEngine              Code = "ENGINE_ERROR"
	ErrCodeTimeout             Code = "TIMEOUT"

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

// FromContext classifies a context failure. Deadline overruns become
// TIMEOUT errors; cancellation is returned unchanged so callers can
// still match context.Canceled.
func FromContext(err error, format string, args ...any) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(ErrCodeTimeout, err, format, args...)
	}
	return err
}

// UnresolvedReferenceError reports a layout record naming an id that was
// not part of the submitted element or relationship set.
type UnresolvedReferenceError struct {
	Kind string // "element" or "relationship"
	ID   string
}

// Error implements the error interface.
func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s: unresolved %s reference %q", ErrCodeUnresolvedReference, e.Kind, e.ID)
}

// Code returns the error code for this error type.
func (e *UnresolvedReferenceError) Code() Code {
	return ErrCodeUnresolvedReference
}

// Unresolved builds an *Error carrying an UnresolvedReferenceError as cause,
// so both Is(err, ErrCodeUnresolvedReference) and errors.As work.
func Unresolved(kind, id string) *Error {
	return &Error{
		Code:    ErrCodeUnresolvedReference,
		Message: fmt.Sprintf("layout output references unknown %s", kind),
		Cause:   &UnresolvedReferenceError{Kind: kind, ID: id},
	}
}
