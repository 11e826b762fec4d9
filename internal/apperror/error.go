// Package apperror classifies the failures a run can end with.
package apperror

import "errors"

// Code tells transports how to report an Error: invalid input codes map
// to client errors, everything else to server errors.
type Code string

const (
	CodeInvalidCount    Code = "invalid_count"
	CodeInvalidAgeRange Code = "invalid_age_range"
	CodeCanceled        Code = "canceled"
	CodeInternal        Code = "internal"
)

// Error is a failure tagged with a Code. Message is safe to show callers.
type Error struct {
	Code    Code
	Message string
}

// Error returns the caller-facing message without the code.
func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// GetCode returns the Code of the first *Error in err's chain, "" for a
// nil error and CodeInternal for any untagged error.
func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// IsInvalidInput reports whether err rejects the caller's input.
func IsInvalidInput(err error) bool {
	switch GetCode(err) {
	case CodeInvalidCount, CodeInvalidAgeRange:
		return true
	}
	return false
}
