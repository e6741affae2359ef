package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDecodeValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
		rest     string
	}{
		{`Smith^John`, `Smith^John`, ``},
		{`Smith^John  # trailing`, `Smith^John`, `  # trailing`},
		{``, ``, ``},
		{`"Smith John"`, `Smith John`, ``},
		{`"AB""CD"`, `AB"CD`, ``},
		{`"ABC`, `ABC`, ``},
		{`""`, ``, ``},
		{`""""`, `"`, ``},
		{`"AB""`, `AB"`, ``},
		{`"A" tail`, `A`, ` tail`},
		{`A"B"`, `A"B"`, ``},
	}

	for _, testCase := range testCases {
		value, cur := decodeValue(newCursor(testCase.input))
		assert.Equal(t, testCase.expected, value, "value of %s", testCase.input)
		assert.Equal(t, testCase.rest, testCase.input[cur.offset():], "rest of %s", testCase.input)
	}
}

func TestDecodeValueQuotedRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[ -~]*`).Draw(t, "text")
		encoded := `"` + strings.ReplaceAll(text, `"`, `""`) + `"`

		value, cur := decodeValue(newCursor(encoded))
		if value != text {
			t.Fatalf("decodeValue(%q) = %q, want %q", encoded, value, text)
		}

		if !cur.done() {
			t.Fatalf("decodeValue(%q) left %q", encoded, encoded[cur.offset():])
		}
	})
}

func TestDecodeValueTokenStopsAtSpace(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		token := rapid.StringMatching(`[!#-~][!-~]*`).Draw(t, "token")
		tail := rapid.StringMatching(`[ \t][ -~]*`).Draw(t, "tail")

		value, _ := decodeValue(newCursor(token + tail))
		if value != token {
			t.Fatalf("decodeValue(%q) = %q, want %q", token+tail, value, token)
		}
	})
}
