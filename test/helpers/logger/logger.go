// Package logger provides loggers for tests.
package logger

import (
	"bytes"
	"io"
	"sync"

	"github.com/dcmtools/dcmquery/pkg/log"
	"github.com/dcmtools/dcmquery/pkg/log/formats"
	"github.com/sirupsen/logrus"
)

// CreateLogger returns a debug level logger writing plain key-value lines to nowhere.
func CreateLogger() log.Logger {
	return CreateLoggerWithWriter(io.Discard)
}

// CreateLoggerWithWriter returns a debug level logger writing plain key-value lines without timestamps to w.
func CreateLoggerWithWriter(w io.Writer) log.Logger {
	formatter := formats.NewKeyValueFormatter()
	formatter.DisableColors = true
	formatter.TimestampFormat = ""

	return log.New(log.WithLevel(log.DebugLevel), log.WithFormatter(formatter), log.WithOutput(w))
}

// Entry is a captured log entry.
type Entry struct {
	Level   log.Level
	Message string
	Fields  log.Fields
}

// Capture records the entries written to a logger.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
	output  bytes.Buffer
}

// NewCapture returns a logger whose entries are recorded by the returned Capture.
func NewCapture() (log.Logger, *Capture) {
	capture := &Capture{}
	logger := CreateLoggerWithWriter(&capture.output).WithOptions(log.WithHooks(capture))

	return logger, capture
}

// Levels implements logrus.Hook.
func (capture *Capture) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (capture *Capture) Fire(entry *logrus.Entry) error {
	capture.mu.Lock()
	defer capture.mu.Unlock()

	fields := make(log.Fields, len(entry.Data))
	for key, val := range entry.Data {
		fields[key] = val
	}

	capture.entries = append(capture.entries, Entry{
		Level:   log.FromLogrusLevel(entry.Level),
		Message: entry.Message,
		Fields:  fields,
	})

	return nil
}

// Entries returns the recorded entries at or above level (error being the highest).
func (capture *Capture) Entries(level log.Level) []Entry {
	capture.mu.Lock()
	defer capture.mu.Unlock()

	var entries []Entry

	for _, entry := range capture.entries {
		if entry.Level <= level {
			entries = append(entries, entry)
		}
	}

	return entries
}

// Output returns everything written by the formatter.
func (capture *Capture) Output() string {
	capture.mu.Lock()
	defer capture.mu.Unlock()

	return capture.output.String()
}
