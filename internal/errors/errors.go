// Package errors wraps errors with stack traces and provides helpers to inspect, combine and recover them.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New wraps the given value in an error that carries the stack trace of the caller.
// A string becomes the error message, an error is wrapped as is, and nil yields nil.
// If the error already contains a stack trace it is returned unchanged.
func New(val any) error {
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case error:
		if ContainsStackTrace(v) {
			return v
		}

		return goerrors.Wrap(v, 1)
	case string:
		return goerrors.Wrap(errors.New(v), 1)
	default:
		return goerrors.Wrap(fmt.Errorf("%v", v), 1) //nolint:err113
	}
}

// Errorf creates a new error with the formatted message and wraps it with the caller's stack trace.
// The `%w` verb is supported.
func Errorf(format string, args ...any) error {
	return goerrors.Wrap(fmt.Errorf(format, args...), 1) //nolint:err113
}

// WithStackTraceAndPrefix wraps the given error with a stack trace and prepends the formatted message.
func WithStackTraceAndPrefix(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(format, args...), 1)
}

// ErrorWithExitCode is used to specify the exit code of the app.
type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

func (err ErrorWithExitCode) Error() string {
	return err.Err.Error()
}

func (err ErrorWithExitCode) Unwrap() error {
	return err.Err
}

// ExitCode returns the exit code carried by err, or the given default when there is none.
func ExitCode(err error, defaultCode int) int {
	var exitErr ErrorWithExitCode
	if As(err, &exitErr) {
		return exitErr.ExitCode
	}

	return defaultCode
}
