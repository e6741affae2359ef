package query

import "strings"

const quoteChar byte = '"'

// decodeValue reads the value that follows '='. A value starting with a double quote runs to the next
// lone quote, a doubled quote standing for a literal one. Without a closing quote the value runs to the
// end of the line. An unquoted value ends at the first whitespace.
func decodeValue(cur cursor) (string, cursor) {
	if !cur.at(quoteChar) {
		return cur.takeWhile(not(isSpace))
	}

	delim := quoteChar
	cur = cur.advance(1)

	var sb strings.Builder

	for {
		b, ok := cur.peek()
		if !ok {
			return sb.String(), cur
		}

		cur = cur.advance(1)

		if b != delim {
			sb.WriteByte(b)
			continue
		}

		if !cur.at(delim) {
			return sb.String(), cur
		}

		sb.WriteByte(delim)
		cur = cur.advance(1)
	}
}
