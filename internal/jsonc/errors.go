package jsonc

import (
	"errors"
	"fmt"
)

// ErrInvalidData is the category shared by every lexical error the filter
// reports. Match it with errors.Is when the specific kind does not matter.
var ErrInvalidData = errors.New("invalid data")

// Lexical errors. Each wraps ErrInvalidData.
var (
	// ErrIncompleteString means the input ended inside a string literal.
	ErrIncompleteString = fmt.Errorf("%w: incomplete string", ErrInvalidData)
	// ErrIncompleteComment means the input ended inside a block comment.
	ErrIncompleteComment = fmt.Errorf("%w: incomplete comment", ErrInvalidData)
	// ErrUnexpectedForwardSlash means a '/' outside a string was not
	// followed by '*' or '/'.
	ErrUnexpectedForwardSlash = fmt.Errorf("%w: unexpected forward slash", ErrInvalidData)
)

// SyntaxError describes where a lexical error was found.
type SyntaxError struct {
	Err    error // one of the lexical sentinels above
	Offset int64 // byte offset of the offending byte, or input length at EOF
	Line   int   // 1-based
	Column int   // 1-based, in bytes
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("jsonc: %v at line %d, column %d (offset %d)", e.Err, e.Line, e.Column, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
