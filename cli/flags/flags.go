// Package flags defines the global flags and the environment variable naming shared by all commands.
package flags

import (
	"strings"

	"github.com/dcmtools/dcmquery/options"
	"github.com/dcmtools/dcmquery/pkg/log"
	"github.com/dcmtools/dcmquery/pkg/log/formats"
	"github.com/urfave/cli/v2"
)

// EnvVarPrefix is prepended to flag names to form their environment variables.
const EnvVarPrefix = "DCMQUERY_"

const (
	LogLevelFlagName       = "log-level"
	LogFormatFlagName      = "log-format"
	NoColorFlagName        = "no-color"
	DictionaryFileFlagName = "dictionary"
)

// EnvVars returns the environment variables of a flag, e.g. `log-level` becomes `DCMQUERY_LOG_LEVEL`.
func EnvVars(names ...string) []string {
	envVars := make([]string, 0, len(names))

	for _, name := range names {
		envVars = append(envVars, EnvVarPrefix+strings.ToUpper(strings.ReplaceAll(name, "-", "_")))
	}

	return envVars
}

// NewGlobalFlags returns the flags accepted before any command.
func NewGlobalFlags(opts *options.QueryOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    LogLevelFlagName,
			EnvVars: EnvVars(LogLevelFlagName),
			Value:   opts.LogLevel.String(),
			Usage:   "Sets the logging level: " + log.AllLevels.String() + ".",
		},
		&cli.StringFlag{
			Name:        LogFormatFlagName,
			EnvVars:     EnvVars(LogFormatFlagName),
			Destination: &opts.LogFormat,
			Value:       opts.LogFormat,
			Usage:       "Sets the log format: " + strings.Join(formats.Names(), ", ") + ".",
		},
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     EnvVars(NoColorFlagName),
			Destination: &opts.DisableColor,
			Usage:       "Disables colors in output and logs.",
		},
		&cli.StringFlag{
			Name:        DictionaryFileFlagName,
			EnvVars:     EnvVars(DictionaryFileFlagName),
			Destination: &opts.DictionaryFile,
			TakesFile:   true,
			Usage:       "Path to an HCL file adding attributes to the built-in dictionary.",
		},
	}
}
