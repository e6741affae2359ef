package query

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type numberedLine struct {
	number int
	text   string
}

func collect(seq func(func(int, string) bool)) []numberedLine {
	var lines []numberedLine

	for number, text := range seq {
		lines = append(lines, numberedLine{number, text})
	}

	return lines
}

func TestScannerLines(t *testing.T) {
	t.Parallel()

	scanner := NewScanner(strings.NewReader("a\r\n\nb\nc"))

	assert.Equal(t, []numberedLine{{1, "a"}, {2, ""}, {3, "b"}, {4, "c"}}, collect(scanner.Lines()))
	require.NoError(t, scanner.Err())
}

func TestScannerQueryLines(t *testing.T) {
	t.Parallel()

	content := "# demographics\n\n   \t\n  00100010=Smith\n\t# indented comment\n\v00080060\n"
	scanner := NewScanner(strings.NewReader(content))

	assert.Equal(t, []numberedLine{{4, "00100010=Smith"}, {6, "00080060"}}, collect(scanner.QueryLines()))
}

func TestScannerStopsEarly(t *testing.T) {
	t.Parallel()

	scanner := NewScanner(strings.NewReader("a\nb\nc\n"))

	for number := range scanner.Lines() {
		if number == 2 {
			break
		}
	}

	assert.Equal(t, []numberedLine{{3, "c"}}, collect(scanner.Lines()))
}

func TestScannerReadError(t *testing.T) {
	t.Parallel()

	scanner := NewScanner(iotest.TimeoutReader(strings.NewReader("00100010\n00100020\n")))

	for range scanner.Lines() {
	}

	require.Error(t, scanner.Err())
}
