package hclparse

import (
	"io"

	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/pkg/log"
	"github.com/hashicorp/hcl/v2"
)

type Option func(*Parser) *Parser

func WithLogger(logger log.Logger) Option {
	return func(parser *Parser) *Parser {
		parser.logger = logger
		return parser
	}
}

// WithDiagnosticsWriter prints every error diagnostic to writer, with source snippets, before it is returned.
func WithDiagnosticsWriter(writer io.Writer, disableColor bool) Option {
	return func(parser *Parser) *Parser {
		diagsWriter := parser.GetDiagnosticsWriter(writer, disableColor)

		parser.diagsWriterFunc = func(diags hcl.Diagnostics) error {
			if err := diagsWriter.WriteDiagnostics(diags); err != nil {
				return errors.New(err)
			}

			return nil
		}

		return parser
	}
}
