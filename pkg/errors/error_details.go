package errors

import "github.com/pkg/errors"

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the error message.
	// E.g. "price is not a base 10 integer".
	Message string

	// Code (required) is one of the ErrorCode values.
	Code string

	// Field (optional) is the related field the error occurred on, if any.
	Field string

	// Object (optional) is the related object the error occured on, if any.
	Object interface{}

	cause error
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// WrapDetails creates ErrorDetails that keeps err as its cause, so callers can still
// reach driver errors through errors.Is and errors.As.
func WrapDetails(err error, message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
		cause:   err,
	}
}

// Error() is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap returns the cause passed to WrapDetails, if any.
func (e *ErrorDetails) Unwrap() error {
	return e.cause
}

// ErrorCodeEquals checks whether a given `error`, or any error it wraps, has a specific code.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	var errDetails *ErrorDetails
	if !errors.As(err, &errDetails) {
		return false
	}

	return errDetails.Code == string(code)
}
