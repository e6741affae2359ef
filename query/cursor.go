package query

// cursor is a read position inside one line. Methods return a new cursor instead of moving the receiver,
// so a caller can keep an earlier position around to slice diagnostics out of the line.
type cursor struct {
	line string
	pos  int
}

func newCursor(line string) cursor {
	return cursor{line: line}
}

// done reports whether the cursor is at the end of the line.
func (cur cursor) done() bool {
	return cur.pos >= len(cur.line)
}

// peek returns the byte under the cursor, false at the end of the line.
func (cur cursor) peek() (byte, bool) {
	if cur.done() {
		return 0, false
	}

	return cur.line[cur.pos], true
}

// at reports whether the byte under the cursor is ch.
func (cur cursor) at(ch byte) bool {
	b, ok := cur.peek()
	return ok && b == ch
}

// remaining returns the number of bytes left on the line.
func (cur cursor) remaining() int {
	return len(cur.line) - cur.pos
}

// advance moves n bytes forward, stopping at the end of the line.
func (cur cursor) advance(n int) cursor {
	cur.pos = min(cur.pos+n, len(cur.line))
	return cur
}

// takeWhile consumes bytes as long as pred holds and returns them.
func (cur cursor) takeWhile(pred func(byte) bool) (string, cursor) {
	end := cur.pos
	for end < len(cur.line) && pred(cur.line[end]) {
		end++
	}

	return cur.line[cur.pos:end], cursor{line: cur.line, pos: end}
}

// take consumes up to n bytes and returns them.
func (cur cursor) take(n int) (string, cursor) {
	next := cur.advance(n)
	return cur.line[cur.pos:next.pos], next
}

// offset returns the byte offset within the line.
func (cur cursor) offset() int {
	return cur.pos
}

// between returns the text from cur up to end, at most limit bytes long.
func (cur cursor) between(end cursor, limit int) string {
	stop := min(end.pos, cur.pos+limit)
	if stop < cur.pos {
		return ""
	}

	return cur.line[cur.pos:stop]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func not(pred func(byte) bool) func(byte) bool {
	return func(b byte) bool { return !pred(b) }
}

func isByte(ch byte) func(byte) bool {
	return func(b byte) bool { return b == ch }
}
