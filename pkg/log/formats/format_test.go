package formats_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dcmtools/dcmquery/pkg/log"
	"github.com/dcmtools/dcmquery/pkg/log/formats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueFormatter(t *testing.T) {
	t.Parallel()

	formatter := formats.NewKeyValueFormatter()
	formatter.TimestampFormat = ""
	formatter.DisableColors = true

	var buf bytes.Buffer

	logger := log.New(log.WithOutput(&buf), log.WithFormatter(formatter))
	logger.WithField(log.FieldKeyFile, "query.txt").WithField(log.FieldKeyLine, 7).Errorf("Unrecognized DICOM tag")

	assert.Equal(t, `level=error msg="Unrecognized DICOM tag" file=query.txt line=7`+"\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	t.Parallel()

	formatter := formats.NewJSONFormatter()
	formatter.DisableTimestamp = true

	var buf bytes.Buffer

	logger := log.New(log.WithOutput(&buf), log.WithFormatter(formatter))
	logger.WithField(log.FieldKeyLine, 2).Warnf("mismatch")

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Equal(t, "warn", fields[log.FieldKeyLevel])
	assert.Equal(t, "mismatch", fields[log.FieldKeyMsg])
	assert.InDelta(t, 2, fields[log.FieldKeyLine], 0)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	formatter, err := formats.ParseFormat("JSON", false)
	require.NoError(t, err)
	assert.IsType(t, &formats.JSONFormatter{}, formatter)

	formatter, err = formats.ParseFormat("", true)
	require.NoError(t, err)
	require.IsType(t, &formats.KeyValueFormatter{}, formatter)
	assert.True(t, formatter.(*formats.KeyValueFormatter).DisableColors)

	_, err = formats.ParseFormat("pretty", false)
	require.Error(t, err)
}
