// Package version implements `dcmquery version`.
package version

import (
	"fmt"

	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/options"
	"github.com/urfave/cli/v2"
)

const CommandName = "version"

func NewCommand(opts *options.QueryOptions) *cli.Command {
	return &cli.Command{
		Name:  CommandName,
		Usage: "Print the dcmquery version.",
		Action: func(ctx *cli.Context) error {
			if _, err := fmt.Fprintf(opts.Writer, "%s version %s\n", ctx.App.Name, ctx.App.Version); err != nil {
				return errors.New(err)
			}

			return nil
		},
	}
}
