package log_test

import (
	"testing"

	"github.com/dcmtools/dcmquery/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		str      string
		expected log.Level
	}{
		{"error", log.ErrorLevel},
		{"WARN", log.WarnLevel},
		{"Info", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"trace", log.TraceLevel},
	}

	for _, testCase := range testCases {
		level, err := log.ParseLevel(testCase.str)
		require.NoError(t, err, testCase.str)
		assert.Equal(t, testCase.expected, level, testCase.str)
		assert.Equal(t, testCase.expected, log.FromLogrusLevel(level.ToLogrusLevel()))
	}

	_, err := log.ParseLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error, warn, info, debug, trace")
}

func TestLevelText(t *testing.T) {
	t.Parallel()

	text, err := log.DebugLevel.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "debug", string(text))

	var level log.Level
	require.NoError(t, level.UnmarshalText([]byte("warn")))
	assert.Equal(t, log.WarnLevel, level)

	_, err = log.Level(42).MarshalText()
	require.Error(t, err)
}

type captureHook struct {
	entries []*logrus.Entry
}

func (hook *captureHook) Levels() []logrus.Level { return logrus.AllLevels }

func (hook *captureHook) Fire(entry *logrus.Entry) error {
	hook.entries = append(hook.entries, entry)
	return nil
}

func TestLoggerLevelFilter(t *testing.T) {
	t.Parallel()

	hook := &captureHook{}
	logger := log.New(log.WithLevel(log.WarnLevel), log.WithHooks(hook), log.WithOutput(discard{}))

	logger.Infof("hidden")
	logger.WithField(log.FieldKeyLine, 3).Errorf("shown %d", 1)

	require.Len(t, hook.entries, 1)
	assert.Equal(t, "shown 1", hook.entries[0].Message)
	assert.Equal(t, 3, hook.entries[0].Data[log.FieldKeyLine])
	assert.Equal(t, log.WarnLevel, logger.Level())
}

func TestLoggerCloneIsIndependent(t *testing.T) {
	t.Parallel()

	parent := log.New(log.WithLevel(log.InfoLevel), log.WithOutput(discard{}))
	child := parent.WithOptions(log.WithLevel(log.TraceLevel))

	assert.Equal(t, log.InfoLevel, parent.Level())
	assert.Equal(t, log.TraceLevel, child.Level())

	require.NoError(t, child.SetLevel("error"))
	assert.Equal(t, log.ErrorLevel, child.Level())
	assert.Equal(t, log.InfoLevel, parent.Level())
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
