// Package hclparse wraps the HCL2 parser so diagnostics are handled in one place, see `handleDiagnostics`.
package hclparse

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/pkg/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/term"
)

const defaultTermWidth = 80

type Parser struct {
	*hclparse.Parser
	diagsWriterFunc func(hcl.Diagnostics) error
	logger          log.Logger
}

func NewParser(opts ...Option) *Parser {
	parser := &Parser{
		Parser: hclparse.NewParser(),
		logger: log.Default(),
	}

	for _, opt := range opts {
		parser = opt(parser)
	}

	return parser
}

// File is a parsed HCL file together with the path it was read from.
type File struct {
	*Parser
	*hcl.File
	ConfigPath string
}

// HandleDiagnostics passes diagnostics raised while decoding the file through the parser.
func (file *File) HandleDiagnostics(diags hcl.Diagnostics) error {
	return file.handleDiagnostics(diags)
}

func (parser *Parser) ParseFromFile(configPath string) (*File, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		parser.logger.Warnf("Error reading file %s: %v", configPath, err)

		return nil, errors.New(err)
	}

	return parser.ParseFromBytes(content, configPath)
}

// ParseFromString parses content as if it was read from configPath.
func (parser *Parser) ParseFromString(content, configPath string) (*File, error) {
	return parser.ParseFromBytes([]byte(content), configPath)
}

// ParseFromBytes parses content as HCL-JSON when configPath ends in `.json`, native HCL otherwise.
func (parser *Parser) ParseFromBytes(content []byte, configPath string) (file *File, err error) {
	// cty conversions panic on some malformed input
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.New(PanicWhileParsingConfigError{RecoveredValue: recovered, ConfigFile: configPath})
		}
	}()

	var (
		diags   hcl.Diagnostics
		hclFile *hcl.File
	)

	switch filepath.Ext(configPath) {
	case ".json":
		hclFile, diags = parser.ParseJSON(content, configPath)
	default:
		hclFile, diags = parser.ParseHCL(content, configPath)
	}

	if err := parser.handleDiagnostics(diags); err != nil {
		parser.logger.Debugf("Failed to parse HCL in file %s", configPath)

		return nil, err
	}

	return &File{Parser: parser, File: hclFile, ConfigPath: configPath}, nil
}

// GetDiagnosticsWriter returns an HCL diagnostics emitter for the current terminal.
func (parser *Parser) GetDiagnosticsWriter(writer io.Writer, disableColor bool) hcl.DiagnosticWriter {
	termColor := !disableColor && term.IsTerminal(int(os.Stderr.Fd()))

	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth = defaultTermWidth
	}

	return hcl.NewDiagnosticTextWriter(writer, parser.Files(), uint(termWidth), termColor) //nolint:gosec
}

func (parser *Parser) handleDiagnostics(diags hcl.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}

	if fn := parser.diagsWriterFunc; fn != nil {
		if err := fn(diags); err != nil {
			return err
		}
	}

	return errors.New(diags)
}
