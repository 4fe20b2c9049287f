package wavefront

import (
	"strconv"
	"strings"
)

// cursor walks an in-memory buffer token by token. It keeps track of the
// current line so errors can point at the offending record.
type cursor struct {
	data   []byte
	offset int
	line   int

	// base is added to offset when reporting positions. It is non-zero for
	// cursors created over a single line of a larger buffer.
	base int

	// The last token returned by next() and its position.
	tok       string
	tokLine   int
	tokOffset int

	// Position of the keyword of the record being processed.
	recLine   int
	recOffset int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data, line: 1}
}

// Only ASCII whitespace acts as a delimiter.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (c *cursor) skipSpace() {
	for c.offset < len(c.data) && isSpace(c.data[c.offset]) {
		if c.data[c.offset] == '\n' {
			c.line++
		}
		c.offset++
	}
}

// Read the next whitespace-delimited token. Newlines are skipped like any
// other whitespace. Returns false once the buffer is exhausted.
func (c *cursor) next() (string, bool) {
	c.skipSpace()
	c.tokLine, c.tokOffset = c.line, c.base+c.offset
	if c.offset == len(c.data) {
		return "", false
	}

	start := c.offset
	for c.offset < len(c.data) && !isSpace(c.data[c.offset]) {
		c.offset++
	}
	c.tok = string(c.data[start:c.offset])
	return c.tok, true
}

// Return the last token read by next().
func (c *cursor) last() string {
	return c.tok
}

// Consume everything up to and including the next newline and return a cursor
// over the consumed bytes (newline excluded).
func (c *cursor) lineCursor() *cursor {
	start := c.offset
	for c.offset < len(c.data) && c.data[c.offset] != '\n' {
		c.offset++
	}

	sub := &cursor{
		data: c.data[start:c.offset],
		line: c.line,
		base: c.base + start,
	}
	sub.tokLine, sub.tokOffset = sub.line, sub.base

	if c.offset < len(c.data) {
		c.offset++
		c.line++
	}
	return sub
}

// Return the remainder of the current line with surrounding whitespace removed.
func (c *cursor) restOfLine() string {
	return strings.TrimSpace(string(c.lineCursor().data))
}

// Discard the remainder of the current line.
func (c *cursor) skipLine() {
	c.lineCursor()
}

// Mark the last token as the keyword of the record being processed.
func (c *cursor) beginRecord() {
	c.recLine, c.recOffset = c.tokLine, c.tokOffset
}

// Truncated records are reported at their keyword; everything else at the
// offending token.
func (c *cursor) errorf(kind error, keyword, token string) error {
	line, offset := c.tokLine, c.tokOffset
	if kind == ErrUnexpectedEnd {
		line, offset = c.recLine, c.recOffset
	}

	return &ParseError{
		Kind:    kind,
		Keyword: keyword,
		Token:   token,
		Line:    line,
		Offset:  offset,
	}
}

// Only plain decimal notation is accepted; nan, inf and hex floats are not.
func isDecimal(tok string) bool {
	return tok != "" && strings.Trim(tok, "0123456789+-.eE") == ""
}

// Decode len(dst) float fields into dst.
func (c *cursor) floats(keyword string, dst []float32) error {
	for i := range dst {
		tok, ok := c.next()
		if !ok {
			return c.errorf(ErrUnexpectedEnd, keyword, "")
		}

		if !isDecimal(tok) {
			return c.errorf(ErrMalformedNumber, keyword, tok)
		}
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return c.errorf(ErrMalformedNumber, keyword, tok)
		}
		dst[i] = float32(v)
	}
	return nil
}

// Decode a single float field.
func (c *cursor) float(keyword string) (float32, error) {
	var v [1]float32
	err := c.floats(keyword, v[:])
	return v[0], err
}

// Decode a single unsigned integer field.
func (c *cursor) uint(keyword string) (uint32, error) {
	tok, ok := c.next()
	if !ok {
		return 0, c.errorf(ErrUnexpectedEnd, keyword, "")
	}

	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, c.errorf(ErrMalformedNumber, keyword, tok)
	}
	return uint32(v), nil
}
