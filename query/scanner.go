package query

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/dcmtools/dcmquery/internal/errors"
)

const commentChar byte = '#'

// Scanner splits query file content into lines.
type Scanner struct {
	reader *bufio.Reader
	number int
	err    error
}

// NewScanner returns a scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// Lines yields every line with its 1-based number, without the line terminator.
// A final line without terminator is yielded too. The sequence can be consumed once.
func (scanner *Scanner) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for {
			line, err := scanner.reader.ReadString('\n')
			if line != "" {
				scanner.number++

				if !yield(scanner.number, trimLineEnd(line)) {
					return
				}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					scanner.err = errors.New(err)
				}

				return
			}
		}
	}
}

// QueryLines is Lines with leading whitespace stripped and blank and comment lines skipped.
func (scanner *Scanner) QueryLines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for number, line := range scanner.Lines() {
			content, ok := queryContent(line)
			if !ok {
				continue
			}

			if !yield(number, content) {
				return
			}
		}
	}
}

// Err returns the first read error other than io.EOF.
func (scanner *Scanner) Err() error {
	return scanner.err
}

// queryContent strips leading whitespace, false for blank and comment lines.
func queryContent(line string) (string, bool) {
	_, cur := newCursor(line).takeWhile(isSpace)

	if cur.done() || cur.at(commentChar) {
		return "", false
	}

	return line[cur.offset():], true
}

func trimLineEnd(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
