package view

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/dcmtools/dcmquery/dicom"
	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/query"
)

type JSONRender struct{}

func NewJSONRender() Render {
	return &JSONRender{}
}

type jsonSpec struct {
	Tags        []query.QueryTag    `json:"tags"`
	Attributes  []jsonAttribute     `json:"attributes"`
	Creators    []jsonCreator       `json:"creators"`
	Diagnostics []*query.Diagnostic `json:"diagnostics"`
}

type jsonAttribute struct {
	Tag      dicom.Tag `json:"tag"`
	VR       dicom.VR  `json:"vr"`
	Value    string    `json:"value"`
	Wildcard bool      `json:"wildcard"`
}

type jsonCreator struct {
	Tag     dicom.Tag `json:"tag"`
	Creator string    `json:"creator"`
}

func (render *JSONRender) Spec(spec *query.Spec) (string, error) {
	out := jsonSpec{
		Tags:        spec.Tags,
		Attributes:  make([]jsonAttribute, 0, spec.Attributes.Len()),
		Creators:    make([]jsonCreator, 0, len(spec.Creators)),
		Diagnostics: spec.Diagnostics,
	}

	if out.Tags == nil {
		out.Tags = []query.QueryTag{}
	}

	if out.Diagnostics == nil {
		out.Diagnostics = []*query.Diagnostic{}
	}

	for tag, value := range spec.Attributes.All() {
		out.Attributes = append(out.Attributes, jsonAttribute{
			Tag:      tag,
			VR:       value.VR,
			Value:    value.String(),
			Wildcard: value.IsWildcard(),
		})
	}

	for _, tag := range sortedTags(spec.Creators) {
		out.Creators = append(out.Creators, jsonCreator{Tag: tag, Creator: spec.Creators[tag]})
	}

	return render.toJSON(out)
}

func (render *JSONRender) Dictionary(entries []dicom.Entry) (string, error) {
	if entries == nil {
		entries = []dicom.Entry{}
	}

	return render.toJSON(entries)
}

func (render *JSONRender) toJSON(val any) (string, error) {
	jsonBytes, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return "", errors.New(err)
	}

	return string(jsonBytes) + "\n", nil
}

func sortedTags(creators map[dicom.Tag]string) []dicom.Tag {
	return slices.SortedFunc(maps.Keys(creators), dicom.Tag.Compare)
}
