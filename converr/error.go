// Package converr provides structured error types for value
// conversion.
//
// This package defines standard error codes and a structured Error type
// that carries the offending value, its runtime type, and the target
// type of the conversion. Every error message is self-contained: it
// names the inputs that caused it so it can be logged and understood
// without additional context capture. It integrates with Go's standard
// errors package for wrapping and unwrapping.
package converr

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error codes used across conversion operations.
const (
	// CodeConversion indicates a value's shape or type does not match
	// what a hook can handle.
	CodeConversion = "CONVERSION"

	// CodeRoundTrip indicates unstamp(stamp(raw)) did not reproduce
	// raw when constructing a version-stamped name.
	CodeRoundTrip = "ROUND_TRIP"

	// CodeTableIdentifier indicates no accepted way to resolve a
	// qualified table identifier succeeded.
	CodeTableIdentifier = "TABLE_IDENTIFIER"

	// CodeShapeMismatch indicates an eager length or shape mismatch,
	// such as a header/value count difference.
	CodeShapeMismatch = "SHAPE_MISMATCH"
)

// Error is a structured error for conversion operations. It records
// which operation failed, a standard code, and the value and target
// involved. None of these errors are retryable: each indicates a
// caller or data contract violation.
type Error struct {
	// Op is the operation that failed (e.g., "structure", "stamp").
	Op string

	// Code is a standard error code constant.
	Code string

	// Message is a human-readable error message.
	Message string

	// Value is the offending input value, when the failure concerns a
	// specific value.
	Value any

	// ValueType is the runtime type of Value, rendered as a string.
	ValueType string

	// Target names the target type of the conversion, when relevant.
	Target string

	// Details contains additional context as key-value pairs.
	Details map[string]any

	// Cause is the underlying error, if any.
	Cause error
}

// New creates a new structured conversion error.
func New(op, code, message string) *Error {
	return &Error{Op: op, Code: code, Message: message}
}

// NewConversion builds the canonical "cannot structure value into
// target" error, naming the offending value, its runtime type, and the
// target type name.
func NewConversion(value any, target string) *Error {
	return &Error{
		Op:        "structure",
		Code:      CodeConversion,
		Message:   fmt.Sprintf("cannot structure %#v into %s (type: %T)", value, target, value),
		Value:     value,
		ValueType: fmt.Sprintf("%T", value),
		Target:    target,
	}
}

// WithCause adds an underlying error. Returns the same instance for
// chaining.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// WithDetails adds additional context. Returns the same instance for
// chaining.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// Error implements the error interface. Format:
// "op [CODE]: message: cause".
func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%s [%s]", e.Op, e.Code))

	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause, enabling errors.Is and
// errors.As on wrapped errors.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error equality for errors.Is. Two Errors match when
// they share Op and Code; empty fields on the target act as wildcards
// so `errors.Is(err, &Error{Code: CodeConversion})` matches any
// conversion error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op != "" && e.Op != t.Op {
		return false
	}
	if t.Code != "" && e.Code != t.Code {
		return false
	}
	return true
}

// IsCode reports whether err is (or wraps) a conversion Error with the
// given code.
func IsCode(err error, code string) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Code == code
}
