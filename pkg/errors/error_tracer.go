package errors

import "github.com/pkg/errors"

// ErrorTracer names the operation that failed and keeps the stack of the underlying error.
type ErrorTracer struct {
	Message string
	Err     error
}

// NewTracer creates a new ErrorTracer with the provided message.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{
		Message: message,
	}
}

// TracerFromError creates a new ErrorTracer from an existing error, preserving the stack trace.
func TracerFromError(err error) *ErrorTracer {
	return NewTracer(err.Error()).Wrap(err)
}

// StackTracer is an interface that requires a StackTrace method.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

func (e *ErrorTracer) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ErrorTracer) Unwrap() error {
	return e.Err
}

// Wrap wraps an existing error into the ErrorTracer. A stack is attached when err has none.
func (e *ErrorTracer) Wrap(err error) *ErrorTracer {
	e.Err = err
	if _, ok := err.(StackTracer); !ok && err != nil {
		e.Err = errors.WithStack(err)
	}

	return e
}

// StackTrace returns the stack trace of the underlying error if it implements StackTracer.
func (e *ErrorTracer) StackTrace() errors.StackTrace {
	if errWithStack, ok := e.Unwrap().(StackTracer); ok {
		return errWithStack.StackTrace()
	}
	return nil
}
