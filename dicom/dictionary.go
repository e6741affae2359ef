package dicom

import (
	"cmp"
	"slices"
	"strings"
)

// Dictionary looks up the VR the DICOM standard, or a private dictionary, assigns to a tag.
// Unknown tags yield the zero VR, which is not valid.
type Dictionary interface {
	LookupVR(tag Tag) VR
}

// Entry is one attribute known to a Catalog. Entries with a Creator describe private attributes,
// for those only the group and the low byte of the element are significant.
type Entry struct {
	Keyword string `json:"keyword"`
	Tag     Tag    `json:"tag"`
	VR      VR     `json:"vr"`
	Creator string `json:"creator,omitempty"`
}

type privateKey struct {
	creator string
	group   uint16
	offset  uint8
}

// Catalog is an in-memory attribute dictionary. It is not safe for concurrent modification.
type Catalog struct {
	standard map[Tag]Entry
	private  map[privateKey]Entry
	keywords map[string]Entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		standard: make(map[Tag]Entry),
		private:  make(map[privateKey]Entry),
		keywords: make(map[string]Entry),
	}
}

// DefaultCatalog returns a new catalog holding the built-in attributes.
func DefaultCatalog() *Catalog {
	catalog := NewCatalog()

	for _, entry := range builtinEntries {
		catalog.Add(entry)
	}

	return catalog
}

// Add registers entry, replacing any entry for the same tag (and creator).
func (catalog *Catalog) Add(entry Entry) {
	if entry.Creator == "" {
		catalog.standard[entry.Tag] = entry
	} else {
		catalog.private[newPrivateKey(entry.Creator, entry.Tag)] = entry
	}

	if entry.Keyword != "" {
		catalog.keywords[strings.ToLower(entry.Keyword)] = entry
	}
}

// LookupVR implements Dictionary for standard attributes.
func (catalog *Catalog) LookupVR(tag Tag) VR {
	return catalog.standard[tag].VR
}

// LookupPrivateVR returns the VR of a private attribute, tag being any element in any block of the group.
func (catalog *Catalog) LookupPrivateVR(creator string, tag Tag) VR {
	return catalog.private[newPrivateKey(creator, tag)].VR
}

// LookupKeyword finds an entry by keyword, ignoring case.
func (catalog *Catalog) LookupKeyword(keyword string) (Entry, bool) {
	entry, ok := catalog.keywords[strings.ToLower(keyword)]
	return entry, ok
}

// Lookup returns the standard entry of tag.
func (catalog *Catalog) Lookup(tag Tag) (Entry, bool) {
	entry, ok := catalog.standard[tag]
	return entry, ok
}

// Len returns the number of entries.
func (catalog *Catalog) Len() int {
	return len(catalog.standard) + len(catalog.private)
}

// Entries returns standard entries by tag, followed by private entries by creator and tag.
func (catalog *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, catalog.Len())

	for _, entry := range catalog.standard {
		entries = append(entries, entry)
	}

	for _, entry := range catalog.private {
		entries = append(entries, entry)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Creator, b.Creator),
			a.Tag.Compare(b.Tag),
		)
	})

	return entries
}

func newPrivateKey(creator string, tag Tag) privateKey {
	return privateKey{creator: creator, group: tag.Group, offset: uint8(tag.Element & 0xFF)}
}
