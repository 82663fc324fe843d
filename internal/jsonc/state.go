package jsonc

// lexState is the lexical context of the next byte.
type lexState uint8

const (
	stateTop lexState = iota
	stateInString
	stateStringEscape
	stateInComment
	stateInBlockComment
	stateMaybeCommentEnd
	stateInLineComment
)

var stateNames = [...]string{
	stateTop:             "top",
	stateInString:        "in string",
	stateStringEscape:    "string escape",
	stateInComment:       "in comment",
	stateInBlockComment:  "in block comment",
	stateMaybeCommentEnd: "maybe comment end",
	stateInLineComment:   "in line comment",
}

func (s lexState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// transition returns the state after c and whether c must be replaced
// with a space. It never allocates.
func transition(s lexState, c byte) (next lexState, blank bool, err error) {
	switch s {
	case stateTop:
		switch c {
		case '"':
			return stateInString, false, nil
		case '/':
			return stateInComment, true, nil
		case '#':
			return stateInLineComment, true, nil
		}
		return stateTop, false, nil

	case stateInString:
		switch c {
		case '"':
			return stateTop, false, nil
		case '\\':
			return stateStringEscape, false, nil
		}
		return stateInString, false, nil

	case stateStringEscape:
		// The escaped byte is never interpreted, so \" does not close the string.
		return stateInString, false, nil

	case stateInComment:
		switch c {
		case '*':
			return stateInBlockComment, true, nil
		case '/':
			return stateInLineComment, true, nil
		}
		return s, false, ErrUnexpectedForwardSlash

	case stateInBlockComment:
		if c == '*' {
			return stateMaybeCommentEnd, true, nil
		}
		return stateInBlockComment, true, nil

	case stateMaybeCommentEnd:
		if c == '/' {
			return stateTop, true, nil
		}
		// Any other byte, '*' included, reopens the comment body.
		return stateInBlockComment, true, nil

	case stateInLineComment:
		if c == '\n' {
			return stateTop, false, nil
		}
		return stateInLineComment, true, nil
	}
	panic("jsonc: invalid lexical state " + s.String())
}

// atEOF reports whether input may end in state s.
// A line comment is closed by end of input as well as by a newline.
func atEOF(s lexState) error {
	switch s {
	case stateTop, stateInLineComment:
		return nil
	case stateInString, stateStringEscape:
		return ErrIncompleteString
	default:
		return ErrIncompleteComment
	}
}
