// Package formats contains the log entry formatters selectable with `--log-format`.
package formats

import (
	"strings"

	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/pkg/log"
)

const (
	KeyValueFormatName = "key-value"
	JSONFormatName     = "json"

	DefaultFormatName = KeyValueFormatName
)

// Names returns the supported format names.
func Names() []string {
	return []string{KeyValueFormatName, JSONFormatName}
}

// ParseFormat returns a formatter by name. Colors are only applied by formatters that support them.
func ParseFormat(name string, disableColors bool) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", KeyValueFormatName:
		formatter := NewKeyValueFormatter()
		formatter.DisableColors = disableColors

		return formatter, nil
	case JSONFormatName:
		return NewJSONFormatter(), nil
	}

	return nil, errors.Errorf("invalid log format %q, supported formats: %s", name, strings.Join(Names(), ", "))
}
