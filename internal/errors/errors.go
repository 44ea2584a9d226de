// Package errors provides the typed failures surfaced by the bridge.
//
// Calls against the native side fail in four distinguishable ways: local
// validation, a translated boundary error, a protocol consistency failure,
// or an opaque error re-raised unchanged. The first three are *Error values
// carrying a Code; the last is whatever the transport produced.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidMapStyle reports that the native side rejected a map
	// style specification as unparseable.
	CodeInvalidMapStyle Code = "INVALID_MAP_STYLE"

	// CodeOverlayNotFound reports that an overlay identity in a batch
	// update or remove no longer exists on the native side.
	CodeOverlayNotFound Code = "OVERLAY_NOT_FOUND"

	// CodeUnsupportedFeature reports that the current platform does not
	// implement the requested capability.
	CodeUnsupportedFeature Code = "UNSUPPORTED_FEATURE"

	// CodeOverlayCountMismatch reports that a batch create returned a
	// different number of overlays than requested. The two sides' object
	// sets have diverged; this is a protocol failure, not a missing object.
	CodeOverlayCountMismatch Code = "OVERLAY_COUNT_MISMATCH"

	// CodeCameraUpdateInvalid reports that a camera update is missing
	// fields its declared kind requires. Raised before any call is issued.
	CodeCameraUpdateInvalid Code = "CAMERA_UPDATE_INVALID"
)

// Error is the bridge error type.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a bridge error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a bridge error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a bridge error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a bridge error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
