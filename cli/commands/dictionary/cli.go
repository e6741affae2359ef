// Package dictionary implements `dcmquery dictionary`, which lists the attributes known to the parser.
package dictionary

import (
	"slices"

	"github.com/dcmtools/dcmquery/cli/flags"
	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/internal/view"
	"github.com/dcmtools/dcmquery/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "dictionary"

	FormatFlagName = "format"
)

type Options struct {
	*options.QueryOptions

	// Format is the output format, see view.Formats.
	Format string
}

func NewCommand(opts *options.QueryOptions) *cli.Command {
	cmdOpts := &Options{QueryOptions: opts, Format: view.TextFormat}

	return &cli.Command{
		Name:  CommandName,
		Usage: "List the built-in dictionary together with the entries of --dictionary.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        FormatFlagName,
				EnvVars:     flags.EnvVars(FormatFlagName),
				Destination: &cmdOpts.Format,
				Value:       cmdOpts.Format,
				Usage:       "Output format: text, json.",
			},
		},
		Before: func(*cli.Context) error {
			if !slices.Contains(view.Formats, cmdOpts.Format) {
				return errors.New(view.InvalidFormatError{Format: cmdOpts.Format})
			}

			return nil
		},
		Action: func(*cli.Context) error {
			return Run(cmdOpts)
		},
	}
}

// Run writes the effective dictionary to opts.Writer.
func Run(opts *Options) error {
	catalog, err := opts.LoadCatalog()
	if err != nil {
		return err
	}

	render, err := view.NewRender(opts.Format, view.NewColorizer(!opts.DisableColor), catalog)
	if err != nil {
		return err
	}

	return view.NewWriter(opts.Writer, render).Dictionary(catalog.Entries())
}
