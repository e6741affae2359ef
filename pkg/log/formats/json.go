package formats

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/dcmtools/dcmquery/pkg/log"
)

// JSONFormatter renders every entry as one JSON object per line.
type JSONFormatter struct {
	// DisableTimestamp allows disabling automatic timestamps in output
	DisableTimestamp bool

	// Timestamp format to use for display when a full timestamp is printed.
	TimestampFormat string
}

// NewJSONFormatter returns a new JSONFormatter instance with default values.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format implements log.Formatter.
func (formatter *JSONFormatter) Format(entry *log.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	fields := make(log.Fields, len(entry.Fields)+3)

	for k, v := range entry.Fields {
		switch v := v.(type) {
		case error:
			// Otherwise errors are ignored by `encoding/json`
			fields[k] = v.Error()
		default:
			fields[k] = v
		}
	}

	if !formatter.DisableTimestamp && formatter.TimestampFormat != "" {
		fields[log.FieldKeyTime] = entry.Time.Format(formatter.TimestampFormat)
	}

	fields[log.FieldKeyMsg] = entry.Message
	fields[log.FieldKeyLevel] = entry.Level.String()

	if err := json.NewEncoder(buf).Encode(fields); err != nil {
		return nil, errors.Errorf("failed to marshal fields to JSON, %w", err)
	}

	return buf.Bytes(), nil
}
