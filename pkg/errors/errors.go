// Package errors provides structured error types for fivewords.
//
// Every fatal condition of a run carries a machine-readable code so the CLI
// (and tests) can tell the categories apart:
//   - INPUT_*: the word list could not be read, or is larger than allowed
//   - CAPACITY_EXCEEDED: a configured bound on candidates, neighbor rows or
//     per-worker solutions was hit
//   - INVALID_CONFIG: flags or the config file carry unusable values
//
// Malformed word list entries are never errors; they are only tallied.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeCapacityExceeded, "neighbor row %d has %d entries", i, n)
//	if errors.Is(err, errors.ErrCodeCapacityExceeded) {
//	    // configuration too small for this dictionary
//	}
//
//	err := errors.Wrap(errors.ErrCodeInputUnavailable, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the fatal error taxonomy.
const (
	// Input errors
	ErrCodeInputUnavailable Code = "INPUT_UNAVAILABLE"
	ErrCodeInputTooLarge    Code = "INPUT_TOO_LARGE"

	// Sizing errors
	ErrCodeCapacityExceeded Code = "CAPACITY_EXCEEDED"

	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Capacity reports a configured bound that was exceeded.
// what names the bounded resource (e.g. "candidates"), got is the size that
// was needed and limit the configured maximum.
func Capacity(what string, got, limit int) *Error {
	return New(ErrCodeCapacityExceeded, "%s: need %d, limit is %d", what, got, limit)
}
