// Package loreerr provides the typed errors shared by the lore packages.
package loreerr

import "errors"

// Code is a machine-readable error kind.
type Code string

const (
	CodeConfig          Code = "CONFIG"             // missing environment variable, bad path
	CodeStorage         Code = "STORAGE"            // open/prepare/exec failures in the database
	CodeValidation      Code = "VALIDATION"         // bad date format, empty title
	CodeUsage           Code = "USAGE"              // missing required argument
	CodeNotFound        Code = "NOT_FOUND"          // dismiss target does not exist
	CodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE" // position outside the active list
	CodeUnsupported     Code = "UNSUPPORTED"        // declared but unimplemented capability
)

// Error is a lore error with a kind and an optional underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface. The cause message is appended so
// storage failures always name the engine error.
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
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

// New creates an error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinels for errors.Is checks by kind.
var (
	ErrConfig          = New(CodeConfig, "configuration error")
	ErrStorage         = New(CodeStorage, "storage error")
	ErrValidation      = New(CodeValidation, "validation error")
	ErrUsage           = New(CodeUsage, "usage error")
	ErrNotFound        = New(CodeNotFound, "not found")
	ErrIndexOutOfRange = New(CodeIndexOutOfRange, "index out of range")
	ErrUnsupported     = New(CodeUnsupported, "not implemented")
)

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
