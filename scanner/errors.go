package scanner

import (
	"errors"
	"fmt"
)

// Lexical errors. Only ErrEndOfInput is returned as is; all the others are
// returned wrapped into a *SyntaxError. Use errors.Is to test for them.
var (
	// ErrEndOfInput signals that the input is exhausted. It is the normal end
	// of a token stream.
	ErrEndOfInput = errors.New("end of input")
	// ErrNoTokenMatch is returned if no matcher recognizes a token at the
	// current position.
	ErrNoTokenMatch = errors.New("no token matches input")
	// ErrUnterminatedString is returned if the input ends within a quoted string.
	ErrUnterminatedString = errors.New("unterminated string")
	// ErrUnknownEscape is returned for escape sequences other than
	// \n, \t, \\, \" and \' (in strict mode).
	ErrUnknownEscape = errors.New("unknown escape sequence")
	// ErrIntegerOverflow is returned for digit runs which do not fit into an int64.
	ErrIntegerOverflow = errors.New("integer overflow")
)

// SyntaxError is an error at a position of the input.
type SyntaxError struct {
	Source  string // name of the input, may be empty
	Offset  uint64 // byte position in the input
	Context string // snippet of input around Offset
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("syntax error at offset %d near %q: %v", e.Offset, e.Context, e.Err)
	}
	return fmt.Sprintf("%s: syntax error at offset %d near %q: %v", e.Source, e.Offset, e.Context, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
