// Package errors provides structured error types for genlayer.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: configuration or request validation failures
//   - UNKNOWN_*: references to unregistered world types, biomes or chains
//   - NOT_FOUND: missing resources (sessions, cache entries)
//   - CACHE_ERROR / INTERNAL_ERROR: infrastructure failures
//
// Pipeline construction fails fast with one of the INVALID_* or UNKNOWN_*
// codes; a pipeline is never partially built.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSize, "biome size must be >= 1, got %d", size)
//	if errors.Is(err, errors.ErrCodeInvalidSize) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration and request validation errors
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidSize      Code = "INVALID_SIZE"
	ErrCodeInvalidRegion    Code = "INVALID_REGION"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeCoordinateRange  Code = "COORDINATE_RANGE"
	ErrCodeUnknownWorldType Code = "UNKNOWN_WORLD_TYPE"
	ErrCodeUnknownBiome     Code = "UNKNOWN_BIOME"
	ErrCodeUnknownChain     Code = "UNKNOWN_CHAIN"

	// Resource not found errors
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

	// Infrastructure errors
	ErrCodeCache    Code = "CACHE_ERROR"
	ErrCodeTimeout  Code = "TIMEOUT"
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
		return e.Message
	}
	return err.Error()
}

// IsClientError reports whether err was caused by bad input rather than an
// infrastructure failure. HTTP handlers map these to 400-class responses.
func IsClientError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfig, ErrCodeInvalidSize, ErrCodeInvalidRegion, ErrCodeInvalidFormat,
		ErrCodeCoordinateRange, ErrCodeUnknownWorldType, ErrCodeUnknownBiome, ErrCodeUnknownChain:
		return true
	}
	return false
}
