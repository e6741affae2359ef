package parse

import (
	"slices"

	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/internal/view"
	"github.com/dcmtools/dcmquery/options"
)

// StrictExitCode is the exit code of `--strict` when the query has diagnostics.
const StrictExitCode = 2

type Options struct {
	*options.QueryOptions

	// QueryFile is the query file to parse, `-` for standard input.
	QueryFile string

	// Format is the output format, see view.Formats.
	Format string

	// Keys are query lines parsed after the file.
	Keys []string

	// Strict turns diagnostics into a failing exit code.
	Strict bool
}

func NewOptions(opts *options.QueryOptions) *Options {
	return &Options{
		QueryOptions: opts,
		Format:       view.TextFormat,
	}
}

func (opts *Options) Validate() error {
	var errs *errors.MultiError

	if !slices.Contains(view.Formats, opts.Format) {
		errs = errs.Append(view.InvalidFormatError{Format: opts.Format})
	}

	if opts.QueryFile == "" && len(opts.Keys) == 0 {
		errs = errs.Append(MissingQueryError{})
	}

	if err := errs.ErrorOrNil(); err != nil {
		return errors.New(err)
	}

	return nil
}

type MissingQueryError struct{}

func (err MissingQueryError) Error() string {
	return "a query file or at least one --key is required"
}
