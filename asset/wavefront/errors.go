package wavefront

import (
	"errors"
	"fmt"
)

// The kinds of errors reported by the obj and mtl parsers. Use errors.Is to
// match a *ParseError against one of them.
var (
	ErrMalformedNumber  = errors.New("malformed number")
	ErrOutOfOrderRecord = errors.New("out of order record")
	ErrUnexpectedEnd    = errors.New("unexpected end of data")
)

// ParseError describes why and where a parse failed.
type ParseError struct {
	// One of the Err* kinds.
	Kind error

	// The record keyword being processed.
	Keyword string

	// The offending token; empty when the data ended before a token could
	// be read.
	Token string

	// 1-based line number and 0-based byte offset of the offending token.
	Line   int
	Offset int
}

func (e *ParseError) Error() string {
	var detail string
	switch {
	case e.Kind == ErrOutOfOrderRecord:
		detail = fmt.Sprintf(`"%s" appears before the record that opens its target`, e.Keyword)
	case e.Token != "":
		detail = fmt.Sprintf(`%s for "%s": %q`, e.Kind, e.Keyword, e.Token)
	default:
		detail = fmt.Sprintf(`%s for "%s"`, e.Kind, e.Keyword)
	}
	return fmt.Sprintf("wavefront: [line %d, offset %d] %s", e.Line, e.Offset, detail)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
