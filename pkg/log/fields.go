package log

import (
	"slices"
	"sort"
)

const (
	FieldKeyMsg   = "msg"
	FieldKeyLevel = "level"
	FieldKeyTime  = "time"

	// FieldKeyFile is the query file a diagnostic belongs to.
	FieldKeyFile = "file"
	// FieldKeyLine is the 1-based line number of a diagnostic.
	FieldKeyLine = "line"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any

// Keys returns the sorted field keys except removeKeys.
func (fields Fields) Keys(removeKeys ...string) []string {
	keys := make([]string, 0, len(fields))

	for key := range fields {
		if !slices.Contains(removeKeys, key) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}
