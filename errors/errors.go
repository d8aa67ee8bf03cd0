// Package errors defines the error taxonomy for the Airtime Nigeria SDK.
//
// All SDK errors are represented as SDKError, which provides:
//   - Code: Machine-readable error identifier
//   - Message: Human-readable error description
//   - Layer: Which component layer produced the error (config, client, core)
//   - Cause: Underlying error, if any
//
// Use the provided constructor functions (NewConfigError, NewValidationError,
// NewCoreError) to create properly typed errors with automatic layer
// assignment.
package errors

import "fmt"

// Code is a machine-readable error identifier.
type Code string

// Error codes - Config Layer
const (
	CONFIG_INVALID Code = "CONFIG_INVALID"
)

// Error codes - Client Layer
const (
	VALIDATION_FAILED Code = "VALIDATION_FAILED"
)

// Error codes - Core Layer
const (
	NETWORK_ERROR    Code = "NETWORK_ERROR"
	TIMEOUT_EXCEEDED Code = "TIMEOUT_EXCEEDED"
	PARSE_FAILED     Code = "PARSE_FAILED"
)

// SDKError is the base error type for all SDK errors.
type SDKError struct {
	Code    Code
	Message string
	Layer   string // "config", "client", "core"
	Cause   error
}

// Error returns a formatted error string.
func (e *SDKError) Error() string {
	msg := fmt.Sprintf("[%s] %s: %s", e.Layer, e.Code, e.Message)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error, enabling error chain inspection.
func (e *SDKError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is an SDKError with the same code.
func (e *SDKError) Is(target error) bool {
	if target == nil {
		return false
	}
	other, ok := target.(*SDKError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// NewConfigError creates a config layer error.
func NewConfigError(code Code, message string, cause error) *SDKError {
	return &SDKError{
		Code:    code,
		Message: message,
		Layer:   "config",
		Cause:   cause,
	}
}

// NewValidationError creates a client layer validation error.
func NewValidationError(message string) *SDKError {
	return &SDKError{
		Code:    VALIDATION_FAILED,
		Message: message,
		Layer:   "client",
	}
}

// NewCoreError creates a core (transport) layer error.
func NewCoreError(code Code, message string, cause error) *SDKError {
	return &SDKError{
		Code:    code,
		Message: message,
		Layer:   "core",
		Cause:   cause,
	}
}

// As checks if err is an SDKError and assigns it to target.
func As(err error, target **SDKError) bool {
	if err == nil {
		return false
	}
	if v, ok := err.(*SDKError); ok {
		*target = v
		return true
	}
	return false
}
