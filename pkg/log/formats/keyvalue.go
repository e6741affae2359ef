package formats

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/pkg/log"
)

// KeyValueFormatter renders entries as `time=... level=... msg=... key=value` lines.
type KeyValueFormatter struct {
	// Timestamp format to use for display, the timestamp is omitted when empty.
	TimestampFormat string

	// DisableColors disables coloring of the level.
	DisableColors bool

	// Wrap empty fields in quotes if true.
	QuoteEmptyFields bool
}

// NewKeyValueFormatter returns a new KeyValueFormatter instance with default values.
func NewKeyValueFormatter() *KeyValueFormatter {
	return &KeyValueFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format implements log.Formatter.
func (formatter *KeyValueFormatter) Format(entry *log.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	if formatter.TimestampFormat != "" {
		formatter.appendKeyValue(buf, log.FieldKeyTime, entry.Time.Format(formatter.TimestampFormat))
	}

	level := entry.Level.String()
	if !formatter.DisableColors {
		level = LevelColorFunc(entry.Level)(level)
	}

	formatter.appendKeyValue(buf, log.FieldKeyLevel, level)

	if entry.Message != "" {
		formatter.appendKeyValue(buf, log.FieldKeyMsg, entry.Message)
	}

	for _, key := range entry.Fields.Keys() {
		formatter.appendKeyValue(buf, key, entry.Fields[key])
	}

	if err := buf.WriteByte('\n'); err != nil {
		return nil, errors.New(err)
	}

	return buf.Bytes(), nil
}

func (formatter *KeyValueFormatter) appendKeyValue(buf *bytes.Buffer, key string, value any) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(key)
	buf.WriteByte('=')

	var str string

	switch value := value.(type) {
	case string:
		str = value
	case error:
		str = value.Error()
	default:
		fmt.Fprint(buf, value)
		return
	}

	if formatter.needsQuoting(str) {
		fmt.Fprintf(buf, "%q", str)
		return
	}

	buf.WriteString(str)
}

func (formatter *KeyValueFormatter) needsQuoting(text string) bool {
	if len(text) == 0 {
		return formatter.QuoteEmptyFields
	}

	for _, ch := range text {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '.' || ch == '/' || ch == ':' || ch == '_') {
			return true
		}
	}

	return false
}
