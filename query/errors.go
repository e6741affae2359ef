package query

import (
	"fmt"

	"github.com/dcmtools/dcmquery/dicom"
	"github.com/dcmtools/dcmquery/pkg/log"
)

// FatalIOError is returned when the query file cannot be opened or read. Unlike diagnostics it aborts the parse.
type FatalIOError struct {
	Path string
	Err  error
}

func (err FatalIOError) Error() string {
	return fmt.Sprintf("Can't open query file %s: %v", err.Path, err.Err)
}

func (err FatalIOError) Unwrap() error {
	return err.Err
}

// DiagnosticKind classifies a problem found on a query line.
type DiagnosticKind int

const (
	// UnterminatedCreatorBlock: a `[` without `]`, the line is dropped.
	UnterminatedCreatorBlock DiagnosticKind = iota + 1
	// UnrecognizedVR: the explicit VR is unknown or ambiguous, the dictionary VR is used instead.
	UnrecognizedVR
	// VRDictionaryMismatch: the explicit VR disagrees with the dictionary, the explicit VR is kept.
	VRDictionaryMismatch
	// UnrecognizedTag: no usable VR, the tag stays in the list but gets no value.
	UnrecognizedTag
)

var diagnosticKindNames = map[DiagnosticKind]string{
	UnterminatedCreatorBlock: "unterminated-creator-block",
	UnrecognizedVR:           "unrecognized-vr",
	VRDictionaryMismatch:     "vr-dictionary-mismatch",
	UnrecognizedTag:          "unrecognized-tag",
}

func (kind DiagnosticKind) String() string {
	return diagnosticKindNames[kind]
}

// MarshalText implements encoding.TextMarshaler.
func (kind DiagnosticKind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

// Diagnostic is a recoverable problem on one query line.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`
	File string         `json:"file"`
	Line int            `json:"line"`
	// Text is the part of the line the diagnostic is about, at most 40 bytes.
	Text string `json:"text,omitempty"`
	// DictVR is the dictionary VR for VRDictionaryMismatch.
	DictVR dicom.VR `json:"dict_vr,omitempty"`
}

// Message describes the problem without its location.
func (diag *Diagnostic) Message() string {
	switch diag.Kind {
	case UnterminatedCreatorBlock:
		return `Block is missing the final "]".`
	case UnrecognizedVR:
		return fmt.Sprintf("Unrecognized DICOM VR %q", diag.Text)
	case VRDictionaryMismatch:
		return fmt.Sprintf("VR of %q doesn't match dictionary VR of %s", diag.Text, diag.DictVR)
	case UnrecognizedTag:
		return fmt.Sprintf("Unrecognized DICOM tag %q", diag.Text)
	}

	return diag.Kind.String()
}

// Level is the log level the diagnostic is reported at.
func (diag *Diagnostic) Level() log.Level {
	if diag.Kind == VRDictionaryMismatch {
		return log.WarnLevel
	}

	return log.ErrorLevel
}

func (diag *Diagnostic) Error() string {
	return fmt.Sprintf("Error %s line %d: %s", diag.File, diag.Line, diag.Message())
}
