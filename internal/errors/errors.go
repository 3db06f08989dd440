// Package errors provides domain-specific error types for wpa-netman.
//
// This package defines structured errors with error codes, making it easier
// to handle and test different error conditions consistently across the
// application.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeAlreadyExists indicates a write target is present and overwrite
	// was not requested.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// ErrCodeNotFound indicates a read or delete target is absent.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeMalformedFragment indicates a fragment could not be deserialized
	// (most commonly: the required ssid field is missing or not quoted).
	ErrCodeMalformedFragment ErrorCode = "MALFORMED_FRAGMENT"

	// ErrCodeIO indicates an underlying filesystem failure. The OS-level
	// cause is always attached and reachable through Unwrap.
	ErrCodeIO ErrorCode = "IO_ERROR"

	// ErrCodeInvalidPassphrase indicates a passphrase or pre-shared key that
	// violates the wpa_supplicant length rules.
	ErrCodeInvalidPassphrase ErrorCode = "INVALID_PASSPHRASE"

	// ErrCodeEditorUnavailable indicates no external editor is configured.
	ErrCodeEditorUnavailable ErrorCode = "EDITOR_UNAVAILABLE"

	// ErrCodeConfig indicates a settings-file error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewAlreadyExistsError creates a new overwrite-guard error.
func NewAlreadyExistsError(message string) *Error {
	return New(ErrCodeAlreadyExists, message)
}

// NewNotFoundError creates a new missing-target error.
func NewNotFoundError(message string) *Error {
	return New(ErrCodeNotFound, message)
}

// NewMalformedFragmentError creates a new deserialization error.
func NewMalformedFragmentError(message string, cause error) *Error {
	return Wrap(ErrCodeMalformedFragment, message, cause)
}

// NewIOError creates a new filesystem error carrying the OS-level cause.
func NewIOError(message string, cause error) *Error {
	return Wrap(ErrCodeIO, message, cause)
}

// NewInvalidPassphraseError creates a new passphrase length/format error.
func NewInvalidPassphraseError(message string) *Error {
	return New(ErrCodeInvalidPassphrase, message)
}

// NewEditorUnavailableError creates a new missing-editor error.
func NewEditorUnavailableError(message string) *Error {
	return New(ErrCodeEditorUnavailable, message)
}

// NewConfigError creates a new settings-file error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// IsCode reports whether err or any error it wraps is a domain error with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
