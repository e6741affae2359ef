package errors_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	require.NoError(t, errors.New(nil))

	err := errors.New("boom")
	require.EqualError(t, err, "boom")
	assert.True(t, errors.ContainsStackTrace(err))

	err = errors.New(io.EOF)
	require.ErrorIs(t, err, io.EOF)
	assert.Contains(t, errors.ErrorStack(err), "errors_test.go")

	// already wrapped errors keep their original stack
	assert.Same(t, err, errors.New(err))

	err = errors.New(42)
	require.EqualError(t, err, "42")
}

func TestErrorfAndPrefix(t *testing.T) {
	t.Parallel()

	err := errors.Errorf("reading %s: %w", "query.txt", io.ErrUnexpectedEOF)
	require.EqualError(t, err, "reading query.txt: unexpected EOF")
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = errors.WithStackTraceAndPrefix(io.EOF, "line %d", 3)
	require.EqualError(t, err, "line 3: EOF")
	require.NoError(t, errors.WithStackTraceAndPrefix(nil, "ignored"))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	err := errors.New(errors.ErrorWithExitCode{Err: io.EOF, ExitCode: 2})

	assert.Equal(t, 2, errors.ExitCode(err, 1))
	assert.Equal(t, 1, errors.ExitCode(io.EOF, 1))
	require.EqualError(t, err, "EOF")
	require.ErrorIs(t, err, io.EOF)
}

func TestMultiError(t *testing.T) {
	t.Parallel()

	var errs *errors.MultiError

	require.NoError(t, errs.ErrorOrNil())
	assert.Equal(t, 0, errs.Len())

	errs = errs.Append(io.EOF)
	require.EqualError(t, errs.ErrorOrNil(), "error occurred:\n\n* EOF\n")

	errs = errs.Append(fmt.Errorf("first\nsecond")) //nolint:err113
	assert.Equal(t, 2, errs.Len())
	require.EqualError(t, errs, "2 errors occurred:\n\n* EOF\n* first\n  second\n")
	require.ErrorIs(t, errs, io.EOF)
}

func TestUnwrapMultiErrors(t *testing.T) {
	t.Parallel()

	inner := (&errors.MultiError{}).Append(io.EOF, io.ErrClosedPipe)
	outer := errors.Join(errors.New(inner), context.Canceled)

	errs := errors.UnwrapMultiErrors(outer)
	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], context.Canceled)
	assert.ErrorIs(t, errs[1], io.EOF)
	assert.ErrorIs(t, errs[2], io.ErrClosedPipe)

	assert.True(t, errors.IsContextCanceled(outer))
	assert.Nil(t, errors.UnwrapMultiErrors(nil))
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var recovered error

	func() {
		defer errors.Recover(func(cause error) {
			recovered = cause
		})

		panic("unexpected")
	}()

	require.EqualError(t, recovered, "unexpected")
	assert.True(t, errors.ContainsStackTrace(recovered))
}
