package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a logger.
type Option func(logger *logger)

// WithLevel sets the minimal level that gets written.
func WithLevel(level Level) Option {
	return func(logger *logger) {
		logger.Logger.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets the destination of log entries.
func WithOutput(output io.Writer) Option {
	return func(logger *logger) {
		logger.Logger.SetOutput(output)
	}
}

// WithFormatter sets the formatter that renders log entries.
func WithFormatter(formatter Formatter) Option {
	return func(logger *logger) {
		logger.formatter = formatter
		logger.Logger.SetFormatter(&fromLogrusFormatter{Formatter: formatter})
	}
}

// WithHooks adds logrus hooks, e.g. to capture entries in tests.
func WithHooks(hooks ...logrus.Hook) Option {
	return func(logger *logger) {
		for _, hook := range hooks {
			logger.Logger.AddHook(hook)
		}
	}
}
