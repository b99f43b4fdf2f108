package scanner

import (
	"fmt"
	"math"

	"github.com/npillmayer/gamedef"
)

// Matcher tries to recognize a token of one kind at the cursor position.
//
// Match either returns a token, with the cursor advanced behind it, or an
// error. ErrNoTokenMatch means the input at the cursor does not start a token
// of this kind. Other errors mean the input starts such a token, but it is
// malformed. The tokenizer resets the cursor after every failed attempt, so
// Match may leave it anywhere when failing.
type Matcher struct {
	Name  string
	Match func(c *Cursor) (Token, error)
}

// DefaultMatchers returns the matchers of the declaration format, in order of
// precedence:
//
//    1. identifier
//    2. quoted string
//    3. integer
//
// The order is part of the contract of PopToken: the first matcher to succeed
// wins. Currently the first bytes of the three token kinds are disjoint, so
// the order does not resolve any ambiguity. Clients adding matchers with
// WithMatchers have to keep this in mind.
func DefaultMatchers(strictEscapes bool) []Matcher {
	return []Matcher{
		{Name: "identifier", Match: MatchIdentifier},
		{Name: "string", Match: QuotedStringMatcher(strictEscapes)},
		{Name: "integer", Match: MatchInteger},
	}
}

// MatchIdentifier recognizes the longest run of letters at the cursor. The token's
// text shares its bytes with the input.
func MatchIdentifier(c *Cursor) (Token, error) {
	start := c.Pos()
	for b, ok := c.Peek(); ok && IsAlpha(b); b, ok = c.Peek() {
		c.Advance()
	}
	if c.Pos() == start {
		return Token{}, ErrNoTokenMatch
	}
	return MakeIdentToken(c.Since(start), span(start, c.Pos())), nil
}

// MatchInteger recognizes the longest run of decimal digits at the cursor.
// Runs exceeding the range of int64 are rejected with ErrIntegerOverflow.
func MatchInteger(c *Cursor) (Token, error) {
	start := c.Pos()
	for b, ok := c.Peek(); ok && IsDigit(b); b, ok = c.Peek() {
		c.Advance()
	}
	if c.Pos() == start {
		return Token{}, ErrNoTokenMatch
	}
	digits := c.Since(start)
	n, err := ParseDecimal(digits.data)
	if err != nil {
		return Token{}, err
	}
	return MakeIntToken(n, digits, span(start, c.Pos())), nil
}

// QuotedStringMatcher returns a matcher for strings in double or single quotes.
// The opening quote determines the closing one. Within the string, the escape
// sequences \n, \t, \\, \" and \' are recognized. What happens with other
// escapes depends on strictEscapes: if set, they are an error, otherwise
// they are kept as they are.
func QuotedStringMatcher(strictEscapes bool) func(*Cursor) (Token, error) {
	return func(c *Cursor) (Token, error) {
		return matchQuoted(c, strictEscapes)
	}
}

func matchQuoted(c *Cursor, strict bool) (Token, error) {
	start := c.Pos()
	quote, ok := c.Peek()
	if !ok || !IsQuote(quote) {
		return Token{}, ErrNoTokenMatch
	}
	c.Advance()
	buf := make([]byte, 0, 32)
	for {
		b, ok := c.Peek()
		if !ok {
			return Token{}, ErrUnterminatedString
		}
		c.Advance()
		switch b {
		case quote:
			return MakeStringToken(buf, c.Since(start), span(start, c.Pos())), nil
		case '\\':
			e, ok := c.Peek()
			if !ok {
				return Token{}, ErrUnterminatedString
			}
			c.Advance()
			var err error
			if buf, err = appendEscape(buf, e, strict); err != nil {
				return Token{}, err
			}
		default:
			buf = append(buf, b)
		}
	}
}

func appendEscape(buf []byte, e byte, strict bool) ([]byte, error) {
	switch e {
	case 'n':
		return append(buf, '\n'), nil
	case 't':
		return append(buf, '\t'), nil
	case '\\', '"', '\'':
		return append(buf, e), nil
	}
	if strict {
		return buf, fmt.Errorf("%w: \\%c", ErrUnknownEscape, e)
	}
	return append(buf, '\\', e), nil
}

// --- Utilities -------------------------------------------------------------

// ParseDecimal converts a run of decimal digits to an int64. An empty run is
// ErrNoTokenMatch, a run too large for int64 is ErrIntegerOverflow.
func ParseDecimal(digits []byte) (int64, error) {
	if len(digits) == 0 {
		return 0, ErrNoTokenMatch
	}
	var n int64
	for _, d := range digits {
		if !IsDigit(d) {
			return 0, ErrNoTokenMatch
		}
		v := int64(d - '0')
		if n > (math.MaxInt64-v)/10 {
			return 0, fmt.Errorf("%w: %s", ErrIntegerOverflow, digits)
		}
		n = n*10 + v
	}
	return n, nil
}

// Unquote decodes a quoted string, including its quotes, the same way the
// string matcher of a tokenizer does.
func Unquote(lexeme []byte, strictEscapes bool) ([]byte, error) {
	c := &Cursor{input: NewByteView(lexeme)}
	tok, err := matchQuoted(c, strictEscapes)
	if err != nil {
		return nil, err
	}
	if !c.AtEnd() {
		return nil, fmt.Errorf("input after closing quote: %w", ErrNoTokenMatch)
	}
	return tok.text.Bytes(), nil
}

func span(from, to int) gamedef.Span {
	return gamedef.Span{uint64(from), uint64(to)}
}
