package view

import "github.com/mgutz/ansi"

// Colorizer colors the parts of human output.
type Colorizer struct {
	headingColorizer  func(string) string
	tagColorizer      func(string) string
	creatorColorizer  func(string) string
	vrColorizer       func(string) string
	valueColorizer    func(string) string
	wildcardColorizer func(string) string
	keywordColorizer  func(string) string
}

// NewColorizer returns a Colorizer, a pass-through one if shouldColor is false.
func NewColorizer(shouldColor bool) *Colorizer {
	if !shouldColor {
		plain := func(s string) string { return s }

		return &Colorizer{
			headingColorizer:  plain,
			tagColorizer:      plain,
			creatorColorizer:  plain,
			vrColorizer:       plain,
			valueColorizer:    plain,
			wildcardColorizer: plain,
			keywordColorizer:  plain,
		}
	}

	return &Colorizer{
		headingColorizer:  ansi.ColorFunc("yellow+bh"),
		tagColorizer:      ansi.ColorFunc("cyan+h"),
		creatorColorizer:  ansi.ColorFunc("magenta+h"),
		vrColorizer:       ansi.ColorFunc("blue+bh"),
		valueColorizer:    ansi.ColorFunc("green+h"),
		wildcardColorizer: ansi.ColorFunc("white+d"),
		keywordColorizer:  ansi.ColorFunc("white+h"),
	}
}

func (c *Colorizer) Heading(s string) string  { return c.headingColorizer(s) }
func (c *Colorizer) Tag(s string) string      { return c.tagColorizer(s) }
func (c *Colorizer) Creator(s string) string  { return c.creatorColorizer(s) }
func (c *Colorizer) VR(s string) string       { return c.vrColorizer(s) }
func (c *Colorizer) Value(s string) string    { return c.valueColorizer(s) }
func (c *Colorizer) Wildcard(s string) string { return c.wildcardColorizer(s) }
func (c *Colorizer) Keyword(s string) string  { return c.keywordColorizer(s) }
