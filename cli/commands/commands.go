// Package commands lists the dcmquery commands.
package commands

import (
	"github.com/dcmtools/dcmquery/cli/commands/dictionary"
	"github.com/dcmtools/dcmquery/cli/commands/parse"
	"github.com/dcmtools/dcmquery/cli/commands/version"
	"github.com/dcmtools/dcmquery/options"
	"github.com/urfave/cli/v2"
)

// New returns all commands.
func New(opts *options.QueryOptions) []*cli.Command {
	return []*cli.Command{
		parse.NewCommand(opts),
		dictionary.NewCommand(opts),
		version.NewCommand(opts),
	}
}
