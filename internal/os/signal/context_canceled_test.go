package signal_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/dcmtools/dcmquery/internal/os/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextCanceledCause(t *testing.T) {
	t.Parallel()

	cause := signal.NewContextCanceledCause(os.Interrupt)

	require.ErrorIs(t, cause, context.Canceled)
	assert.Equal(t, context.Canceled.Error(), cause.Error())
}

func TestNotifyContextStop(t *testing.T) {
	t.Parallel()

	ctx, stop := signal.NotifyContext(t.Context())
	require.NoError(t, ctx.Err())

	stop()

	<-ctx.Done()
	require.ErrorIs(t, ctx.Err(), context.Canceled)

	var cause *signal.ContextCanceledCause
	assert.False(t, errors.As(context.Cause(ctx), &cause))
}
