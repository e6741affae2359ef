package parse

import (
	"strings"

	"github.com/dcmtools/dcmquery/dicom"
)

// KeySource names `--key` lines in diagnostics.
const KeySource = "--key"

// ExpandKeys replaces a keyword at the start of a key with the tag from catalog, so `PatientName=Smith`
// becomes `00100010=Smith` and a private keyword gains its `[creator]` block. Keys that already start with
// a creator block or a tag, and unknown keywords, are kept as written.
func ExpandKeys(catalog *dicom.Catalog, keys []string) []string {
	expanded := make([]string, 0, len(keys))

	for _, key := range keys {
		expanded = append(expanded, expandKey(catalog, key))
	}

	return expanded
}

func expandKey(catalog *dicom.Catalog, key string) string {
	trimmed := strings.TrimLeft(key, " \t")
	if strings.HasPrefix(trimmed, "[") {
		return key
	}

	end := strings.IndexAny(trimmed, ":= \t")
	if end < 0 {
		end = len(trimmed)
	}

	name, rest := trimmed[:end], trimmed[end:]

	if _, ok := dicom.ParseTag(name); ok {
		return key
	}

	entry, ok := catalog.LookupKeyword(name)
	if !ok {
		return key
	}

	if entry.Creator != "" {
		return "[" + entry.Creator + "]" + entry.Tag.Hex() + rest
	}

	return entry.Tag.Hex() + rest
}
