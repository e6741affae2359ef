package parse

import (
	"context"
	"strings"

	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/internal/view"
	"github.com/dcmtools/dcmquery/query"
)

// Run parses the query and writes it to opts.Writer.
func Run(ctx context.Context, opts *Options) error {
	catalog, err := opts.LoadCatalog()
	if err != nil {
		return err
	}

	parser := query.NewParser(
		query.WithLogger(opts.Logger),
		query.WithCatalog(catalog),
		query.WithExtraLines(KeySource, ExpandKeys(catalog, opts.Keys)...),
	)

	var spec *query.Spec

	if opts.QueryFile == "" {
		spec, err = parser.Parse(ctx, KeySource, strings.NewReader(""))
	} else {
		spec, err = parser.ParseFile(ctx, opts.QueryFile)
	}

	if err != nil {
		return err
	}

	render, err := view.NewRender(opts.Format, view.NewColorizer(!opts.DisableColor), catalog)
	if err != nil {
		return err
	}

	if err := view.NewWriter(opts.Writer, render).Spec(spec); err != nil {
		return err
	}

	if opts.Strict && len(spec.Diagnostics) > 0 {
		return errors.New(errors.ErrorWithExitCode{Err: spec.Err(), ExitCode: StrictExitCode})
	}

	return nil
}
