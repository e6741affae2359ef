package main

import (
	"context"
	"os"

	"github.com/dcmtools/dcmquery/cli"
	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/internal/os/signal"
	"github.com/dcmtools/dcmquery/options"
	"github.com/dcmtools/dcmquery/pkg/log"
)

// The main entrypoint for dcmquery
func main() {
	opts := options.NewQueryOptions()

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	ctx, stop := signal.NotifyContext(context.Background())

	app := cli.NewApp(opts)
	err := app.RunContext(ctx, os.Args)

	var cause *signal.ContextCanceledCause
	if errors.As(context.Cause(ctx), &cause) {
		opts.Logger.Debugf("Interrupted by %s", cause.Signal)
	}

	stop()
	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(errors.ExitCode(err, 1))
	}
}
