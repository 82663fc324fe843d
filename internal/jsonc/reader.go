package jsonc

import (
	"io"
)

// Reader replaces comments read from an underlying io.Reader with spaces.
// Every byte is either returned unchanged or as ' ' in its original
// position, so the output has exactly the length of the input.
//
// Lexical state carries across calls to Read, so comments and strings may
// span chunk boundaries. Once Read has returned a *SyntaxError the Reader
// is failed and keeps returning that error until Reset. Errors from the
// underlying reader are passed through unchanged.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src   io.Reader
	state lexState
	err   *SyntaxError

	blanked int64
	offset  int64
	line    int
	col     int
}

// NewReader returns a Reader that strips comments from r.
func NewReader(r io.Reader) *Reader {
	cr := &Reader{}
	cr.Reset(r)
	return cr
}

// Reset discards all state and makes cr read from r.
func (cr *Reader) Reset(r io.Reader) {
	*cr = Reader{src: r, line: 1, col: 1}
}

// Read implements io.Reader.
//
// If a comment-opening '/' is followed by anything other than '*' or '/',
// Read returns the number of bytes before the offending byte together with
// a *SyntaxError wrapping ErrUnexpectedForwardSlash. When the underlying
// reader returns io.EOF inside a string or block comment, Read returns a
// *SyntaxError in place of io.EOF. A lexical error takes precedence over
// any other error the underlying reader returned with the same chunk.
func (cr *Reader) Read(p []byte) (int, error) {
	if cr.err != nil {
		return 0, cr.err
	}

	n, err := cr.src.Read(p)
	for i := 0; i < n; i++ {
		c := p[i]
		next, blank, lexErr := transition(cr.state, c)
		if lexErr != nil {
			return i, cr.fail(lexErr)
		}
		if blank {
			p[i] = ' '
			cr.blanked++
		}
		cr.state = next
		cr.advance(c)
	}

	if err == io.EOF {
		if lexErr := atEOF(cr.state); lexErr != nil {
			return n, cr.fail(lexErr)
		}
	}
	return n, err
}

// Offset returns the number of bytes processed so far.
func (cr *Reader) Offset() int64 {
	return cr.offset
}

// Blanked returns how many of the processed bytes were replaced with spaces.
func (cr *Reader) Blanked() int64 {
	return cr.blanked
}

func (cr *Reader) advance(c byte) {
	cr.offset++
	if c == '\n' {
		cr.line++
		cr.col = 1
	} else {
		cr.col++
	}
}

func (cr *Reader) fail(err error) *SyntaxError {
	cr.err = &SyntaxError{
		Err:    err,
		Offset: cr.offset,
		Line:   cr.line,
		Column: cr.col,
	}
	return cr.err
}
