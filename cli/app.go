// Package cli assembles the dcmquery command line application.
package cli

import (
	"io"
	"os"

	"github.com/dcmtools/dcmquery/cli/commands"
	"github.com/dcmtools/dcmquery/cli/flags"
	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/options"
	"github.com/dcmtools/dcmquery/pkg/env"
	"github.com/dcmtools/dcmquery/pkg/log"
	"github.com/dcmtools/dcmquery/pkg/log/formats"
	"github.com/gruntwork-io/go-commons/version"
	hashicorpversion "github.com/hashicorp/go-version"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v2"
)

// NewApp creates the dcmquery CLI app.
func NewApp(opts *options.QueryOptions) *cli.App {
	return &cli.App{
		Name:  "dcmquery",
		Usage: "Parses DICOM query files into the attributes to return and the values to match.",
		Description: `A query file lists one attribute per line, optionally with an explicit VR and a value:

  # comments and blank lines are ignored
  00100010=Smith^John
  00080060:CS=CT
  [ACME 1.0]00091001

Values may be quoted, a doubled quote inside quotes stands for one quote character.`,
		UsageText:            "dcmquery [global options] <command> [options]",
		Version:              version.GetVersion(),
		Writer:               opts.Writer,
		ErrWriter:            opts.ErrWriter,
		Flags:                flags.NewGlobalFlags(opts),
		Commands:             commands.New(opts),
		Before:               initialSetup(opts),
		EnableBashCompletion: true,
		// exit codes are decided by main
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func initialSetup(opts *options.QueryOptions) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		level, err := log.ParseLevel(ctx.String(flags.LogLevelFlagName))
		if err != nil {
			return err
		}

		opts.LogLevel = level

		if env.NoColor() || !isTerminal(opts.Writer) {
			opts.DisableColor = true
		}

		formatter, err := formats.ParseFormat(opts.LogFormat, opts.DisableColor || !isTerminal(opts.ErrWriter))
		if err != nil {
			return err
		}

		opts.Logger.SetOptions(
			log.WithLevel(opts.LogLevel),
			log.WithFormatter(formatter),
			log.WithOutput(opts.ErrWriter),
		)

		if opts.DictionaryFile != "" {
			if opts.DictionaryFile, err = homedir.Expand(opts.DictionaryFile); err != nil {
				return errors.New(err)
			}
		}

		dcmqueryVersion, err := hashicorpversion.NewVersion(ctx.App.Version)
		if err != nil {
			// Malformed version, e.g. a development build
			if dcmqueryVersion, err = hashicorpversion.NewVersion("0.0"); err != nil {
				return errors.New(err)
			}
		}

		opts.DcmqueryVersion = dcmqueryVersion
		opts.Logger.Debugf("dcmquery version: %s", opts.DcmqueryVersion)

		return nil
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
