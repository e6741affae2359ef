package query

import (
	"github.com/dcmtools/dcmquery/dicom"
	"github.com/dcmtools/dcmquery/pkg/log"
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger diagnostics are reported to.
func WithLogger(logger log.Logger) Option {
	return func(parser *Parser) {
		parser.logger = logger
	}
}

// WithCatalog sets the catalog a new PrivateBlocks is built on for every parse.
// It is ignored for lookups and resolution replaced by WithDictionary and WithPrivateResolver.
func WithCatalog(catalog *dicom.Catalog) Option {
	return func(parser *Parser) {
		parser.catalog = catalog
	}
}

// WithDictionary replaces the dictionary used to look up VRs.
func WithDictionary(dictionary dicom.Dictionary) Option {
	return func(parser *Parser) {
		parser.dictionary = dictionary
	}
}

// WithPrivateResolver replaces the resolver used for tags with a private creator.
func WithPrivateResolver(resolver dicom.PrivateResolver) Option {
	return func(parser *Parser) {
		parser.resolver = resolver
	}
}

// WithExtraLines appends query lines after the input, reported under the source name `name`.
func WithExtraLines(name string, lines ...string) Option {
	return func(parser *Parser) {
		parser.extraName = name
		parser.extraLines = append(parser.extraLines, lines...)
	}
}
