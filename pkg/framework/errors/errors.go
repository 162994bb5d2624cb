package errors

import (
	stderrors "errors"
)

// Error is the framework error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human readable message
	Metadata map[string]string // Additional context (param id, type, key)
	Cause    error             // Wrapped underlying error
}

// Sentinels for errors.Is checks.
var (
	ErrDeclaration  = &Error{Code: CodeDeclarationInvalid}
	ErrUnknownType  = &Error{Code: CodeParamTypeUnknown}
	ErrIllegalID    = &Error{Code: CodeParamIDIllegal}
	ErrUnknownParam = &Error{Code: CodeParamUnknown}
	ErrValidation   = &Error{Code: CodeParamValueInvalid}
	ErrAdapter      = &Error{Code: CodeAdapterFailed}
	ErrIllegalState = &Error{Code: CodeIllegalState}
	ErrNotFound     = &Error{Code: CodeNotFound}
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil && e.Message != "" {
		return e.Message + ": " + e.Cause.Error()
	}
	if e.Cause != nil {
		return e.Cause.Error()
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

// New creates a simple error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates an error carrying context values.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates an error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf extracts the code of the first *Error in the chain.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
