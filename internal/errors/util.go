package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
)

// As is errors.As re-exported so callers only import this package.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is errors.Is re-exported so callers only import this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join is errors.Join re-exported so callers only import this package.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap is errors.Unwrap re-exported so callers only import this package.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// IsError reports whether actual matches expected once both are stripped of their stack trace wrappers.
func IsError(actual error, expected error) bool {
	return goerrors.Is(actual, expected)
}

// IsContextCanceled returns true if err was caused by `context.Canceled`, which is not really an error.
func IsContextCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// ErrorStack returns the stack traces of err and all errors it wraps, joined by newlines.
func ErrorStack(err error) string {
	var stacks []string

	for _, err := range UnwrapMultiErrors(err) {
		for err != nil {
			if err, ok := err.(interface{ ErrorStack() string }); ok {
				stacks = append(stacks, err.ErrorStack())
			}

			err = errors.Unwrap(err)
		}
	}

	return strings.Join(stacks, "\n")
}

// ContainsStackTrace returns true if err, or any error it wraps, already carries a stack trace.
func ContainsStackTrace(err error) bool {
	for _, err := range UnwrapMultiErrors(err) {
		for err != nil {
			if _, ok := err.(interface{ ErrorStack() string }); ok {
				return true
			}

			err = errors.Unwrap(err)
		}
	}

	return false
}

// Recover tries to recover from panics, and if it succeeds, calls the given onPanic function with an error that
// explains the cause of the panic. This function should only be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec) //nolint:err113
		}

		onPanic(New(err))
	}
}

// UnwrapMultiErrors flattens nested multi-errors (anything with `Unwrap() []error`) into a slice.
func UnwrapMultiErrors(err error) []error {
	if err == nil {
		return nil
	}

	var (
		queue = []error{err}
		errs  []error
	)

	for len(queue) > 0 {
		err := queue[0]
		queue = queue[1:]

		multi := false

		for inner := err; inner != nil; inner = errors.Unwrap(inner) {
			if m, ok := inner.(interface{ Unwrap() []error }); ok {
				queue = append(queue, m.Unwrap()...)
				multi = true

				break
			}
		}

		if !multi {
			errs = append(errs, err)
		}
	}

	return errs
}
