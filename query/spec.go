package query

import (
	"github.com/dcmtools/dcmquery/dicom"
	"github.com/dcmtools/dcmquery/internal/errors"
)

// QueryTag is an attribute to be returned by the query, as written in the file.
type QueryTag struct {
	Tag     dicom.Tag `json:"tag"`
	Creator string    `json:"creator,omitempty"`
}

// Spec is a parsed query: the tags to return in file order and the values to match.
type Spec struct {
	// Tags are the requested attributes in file order.
	Tags []QueryTag
	// Attributes are the match values, keyed by resolved tag.
	Attributes *dicom.AttributeSet
	// Creators are the private creator elements reserved while resolving bracketed tags.
	Creators map[dicom.Tag]string
	// Diagnostics are the problems reported while parsing, in order.
	Diagnostics []*Diagnostic
}

// NewSpec returns an empty spec.
func NewSpec() *Spec {
	return &Spec{
		Attributes: dicom.NewAttributeSet(),
		Creators:   map[dicom.Tag]string{},
	}
}

// AddTag appends a requested attribute.
func (spec *Spec) AddTag(tag QueryTag) {
	spec.Tags = append(spec.Tags, tag)
}

// SetAttribute stores the match value of tag, replacing an earlier one.
func (spec *Spec) SetAttribute(tag dicom.Tag, value dicom.Value) {
	spec.Attributes.Set(tag, value)
}

// Diagnose records a diagnostic.
func (spec *Spec) Diagnose(diag *Diagnostic) {
	spec.Diagnostics = append(spec.Diagnostics, diag)
}

// Err returns all diagnostics as one error, nil if there are none.
func (spec *Spec) Err() error {
	var errs *errors.MultiError

	for _, diag := range spec.Diagnostics {
		errs = errs.Append(diag)
	}

	return errs.ErrorOrNil()
}
