// Package view renders query specifications and dictionary listings for people or for machines.
package view

import (
	"fmt"
	"io"

	"github.com/dcmtools/dcmquery/dicom"
	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/query"
)

const (
	TextFormat = "text"
	JSONFormat = "json"
)

// Formats lists the names accepted by NewRender.
var Formats = []string{TextFormat, JSONFormat}

type Render interface {
	// Spec renders a parsed query.
	Spec(spec *query.Spec) (string, error)

	// Dictionary renders dictionary entries.
	Dictionary(entries []dicom.Entry) (string, error)
}

// NewRender returns the render for the given format name.
func NewRender(format string, colorizer *Colorizer, catalog *dicom.Catalog) (Render, error) {
	switch format {
	case TextFormat, "":
		return NewHumanRender(colorizer, catalog), nil
	case JSONFormat:
		return NewJSONRender(), nil
	}

	return nil, errors.New(InvalidFormatError{Format: format})
}

// InvalidFormatError is returned for an unknown output format name.
type InvalidFormatError struct {
	Format string
}

func (err InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q, supported formats: %s, %s", err.Format, TextFormat, JSONFormat)
}

// Writer is the base layer for command views, pairing an output stream with a render.
type Writer struct {
	io.Writer
	render Render
}

func NewWriter(writer io.Writer, render Render) *Writer {
	return &Writer{
		Writer: writer,
		render: render,
	}
}

func (writer *Writer) Spec(spec *query.Spec) error {
	output, err := writer.render.Spec(spec)
	if err != nil {
		return err
	}

	return writer.output(output)
}

func (writer *Writer) Dictionary(entries []dicom.Entry) error {
	output, err := writer.render.Dictionary(entries)
	if err != nil {
		return err
	}

	return writer.output(output)
}

func (writer *Writer) output(output string) error {
	if _, err := fmt.Fprint(writer, output); err != nil {
		return errors.New(err)
	}

	return nil
}
