// Package options holds the settings shared by all dcmquery commands.
package options

import (
	"io"
	"os"

	"github.com/dcmtools/dcmquery/config"
	"github.com/dcmtools/dcmquery/config/hclparse"
	"github.com/dcmtools/dcmquery/dicom"
	"github.com/dcmtools/dcmquery/pkg/log"
	"github.com/dcmtools/dcmquery/pkg/log/formats"
	"github.com/hashicorp/go-version"
)

const (
	DefaultLogLevel  = log.InfoLevel
	DefaultLogFormat = formats.KeyValueFormatName
)

// QueryOptions represents options that configure the behavior of the dcmquery program.
type QueryOptions struct {
	// Logger is the logger diagnostics and errors are reported to.
	Logger log.Logger

	// Writer receives command output, ErrWriter receives logs and HCL diagnostics.
	Writer    io.Writer
	ErrWriter io.Writer

	LogLevel  log.Level
	LogFormat string

	// DisableColor turns off colors in human output and logs.
	DisableColor bool

	// DictionaryFile is an optional dictionary extension file.
	DictionaryFile string

	// DcmqueryVersion is the running version, checked against `required_version` of the dictionary file.
	DcmqueryVersion *version.Version
}

// NewQueryOptions returns options with defaults writing to the standard streams.
func NewQueryOptions() *QueryOptions {
	return NewQueryOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewQueryOptionsWithWriters returns options with defaults writing to the given streams.
func NewQueryOptionsWithWriters(stdout, stderr io.Writer) *QueryOptions {
	return &QueryOptions{
		Logger:          log.New(log.WithOutput(stderr), log.WithLevel(DefaultLogLevel), log.WithFormatter(formats.NewKeyValueFormatter())),
		Writer:          stdout,
		ErrWriter:       stderr,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		DcmqueryVersion: version.Must(version.NewVersion("0.0")),
	}
}

// LoadCatalog returns the built-in dictionary extended by DictionaryFile.
// HCL diagnostics are printed to ErrWriter.
func (opts *QueryOptions) LoadCatalog() (*dicom.Catalog, error) {
	if opts.DictionaryFile != "" {
		opts.Logger.Debugf("Loading dictionary file %s", opts.DictionaryFile)
	}

	return config.LoadCatalog(opts.DictionaryFile, opts.DcmqueryVersion,
		hclparse.WithLogger(opts.Logger),
		hclparse.WithDiagnosticsWriter(opts.ErrWriter, opts.DisableColor),
	)
}
