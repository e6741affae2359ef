// Package parse implements `dcmquery parse`, which prints the specification parsed from a query file.
package parse

import (
	"github.com/dcmtools/dcmquery/cli/flags"
	"github.com/dcmtools/dcmquery/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "parse"

	FormatFlagName = "format"
	KeyFlagName    = "key"
	KeyFlagAlias   = "k"
	StrictFlagName = "strict"
)

func NewFlags(opts *Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        FormatFlagName,
			EnvVars:     flags.EnvVars(FormatFlagName),
			Destination: &opts.Format,
			Value:       opts.Format,
			Usage:       "Output format: text, json.",
		},
		&cli.StringSliceFlag{
			Name:    KeyFlagName,
			Aliases: []string{KeyFlagAlias},
			Usage:   "Adds a query line after the file, e.g. `PatientName=Smith*`. Repeatable.",
		},
		&cli.BoolFlag{
			Name:        StrictFlagName,
			EnvVars:     flags.EnvVars(StrictFlagName),
			Destination: &opts.Strict,
			Usage:       "Exits with code 2 if the query has any diagnostics.",
		},
	}
}

func NewCommand(opts *options.QueryOptions) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Parse a query file and print the attributes to return and the values to match.",
		ArgsUsage: "QUERYFILE",
		Flags:     NewFlags(cmdOpts),
		Before: func(ctx *cli.Context) error {
			cmdOpts.QueryFile = ctx.Args().First()
			cmdOpts.Keys = ctx.StringSlice(KeyFlagName)

			return cmdOpts.Validate()
		},
		Action: func(ctx *cli.Context) error {
			return Run(ctx.Context, cmdOpts)
		},
	}
}
