// Package signal cancels a context when the process is interrupted, recording the signal as the cause.
package signal

import (
	"context"
	"os"
	ossignal "os/signal"
)

// ContextCanceledCause contains a signal to pass through when the context is cancelled.
type ContextCanceledCause struct {
	Signal os.Signal
}

// NewContextCanceledCause returns a new `ContextCanceledCause` instance.
func NewContextCanceledCause(sig os.Signal) *ContextCanceledCause {
	return &ContextCanceledCause{Signal: sig}
}

// Error implements the `Error` method.
func (ContextCanceledCause) Error() string {
	return context.Canceled.Error()
}

// Unwrap implements the `Unwrap` method.
func (ContextCanceledCause) Unwrap() error {
	return context.Canceled
}

// NotifyContext returns a copy of parent that is canceled when one of InterruptSignals arrives,
// with a ContextCanceledCause as its cause. Calling stop releases the signal handler.
func NotifyContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	sigCh := make(chan os.Signal, 1)
	ossignal.Notify(sigCh, InterruptSignals...)

	go func() {
		select {
		case sig := <-sigCh:
			cancel(NewContextCanceledCause(sig))
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		ossignal.Stop(sigCh)
		cancel(nil)
	}
}
