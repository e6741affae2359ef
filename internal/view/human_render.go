package view

import (
	"fmt"
	"strings"

	"github.com/dcmtools/dcmquery/dicom"
	"github.com/dcmtools/dcmquery/query"
)

const (
	indent       = "  "
	wildcardMark = "*"
)

type HumanRender struct {
	colorizer *Colorizer
	catalog   *dicom.Catalog
}

// NewHumanRender returns a render for terminals. Keywords are looked up in catalog, which may be nil.
func NewHumanRender(colorizer *Colorizer, catalog *dicom.Catalog) Render {
	return &HumanRender{
		colorizer: colorizer,
		catalog:   catalog,
	}
}

func (render *HumanRender) Spec(spec *query.Spec) (string, error) {
	var buf strings.Builder

	buf.WriteString(render.colorizer.Heading("Tags") + "\n")

	for _, tag := range spec.Tags {
		buf.WriteString(indent + render.colorizer.Tag(tag.Tag.String()))

		if tag.Creator != "" {
			buf.WriteString(" " + render.colorizer.Creator("["+tag.Creator+"]"))
		} else if keyword := render.keyword(tag.Tag); keyword != "" {
			buf.WriteString(" " + render.colorizer.Keyword(keyword))
		}

		buf.WriteString("\n")
	}

	buf.WriteString(render.colorizer.Heading("Attributes") + "\n")

	for tag, value := range spec.Attributes.All() {
		buf.WriteString(indent + render.colorizer.Tag(tag.String()) + " " + render.colorizer.VR(value.VR.String()))

		if keyword := render.keyword(tag); keyword != "" {
			buf.WriteString(" " + render.colorizer.Keyword(keyword))
		}

		if value.IsWildcard() {
			buf.WriteString(" = " + render.colorizer.Wildcard(wildcardMark) + "\n")
		} else {
			buf.WriteString(" = " + render.colorizer.Value(fmt.Sprintf("%q", value.String())) + "\n")
		}
	}

	if len(spec.Creators) > 0 {
		buf.WriteString(render.colorizer.Heading("Private creators") + "\n")

		for _, tag := range sortedTags(spec.Creators) {
			buf.WriteString(indent + render.colorizer.Tag(tag.String()) + " " + render.colorizer.Creator(spec.Creators[tag]) + "\n")
		}
	}

	return buf.String(), nil
}

func (render *HumanRender) Dictionary(entries []dicom.Entry) (string, error) {
	var buf strings.Builder

	keywordWidth := len("Keyword")
	for _, entry := range entries {
		keywordWidth = max(keywordWidth, len(entry.Keyword))
	}

	const tagWidth = len("(0000,0000)")

	buf.WriteString(render.colorizer.Heading(pad("Tag", tagWidth) + " VR " + pad("Keyword", keywordWidth) + " Creator"))
	buf.WriteString("\n")

	for _, entry := range entries {
		buf.WriteString(render.colorizer.Tag(entry.Tag.String()) + " ")
		buf.WriteString(render.colorizer.VR(pad(entry.VR.String(), len("VR"))) + " ")

		if entry.Creator == "" {
			buf.WriteString(render.colorizer.Keyword(entry.Keyword) + "\n")
			continue
		}

		buf.WriteString(render.colorizer.Keyword(pad(entry.Keyword, keywordWidth)) + " ")
		buf.WriteString(render.colorizer.Creator(entry.Creator) + "\n")
	}

	return buf.String(), nil
}

func (render *HumanRender) keyword(tag dicom.Tag) string {
	if render.catalog == nil {
		return ""
	}

	entry, _ := render.catalog.Lookup(tag)

	return entry.Keyword
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
