/*
Package scanner implements the tokenizer for game data declarations.

Input is a byte buffer held in memory. The tokenizer moves a cursor over it and
produces tokens on demand. Three kinds of tokens are recognized: identifiers
(runs of ASCII letters), quoted strings (in double or single quotes, with
escape sequences) and unsigned decimal integers.

A token is recognized by trying an ordered list of matchers at the current
cursor position, see type Matcher. The tokenizer keeps one slot of pushback,
which lets declaration readers look ahead one token and give it back if it does
not fit their grammar rule.

Two implementations of interface Tokenizer are provided: (1) DefaultTokenizer,
a hand-written cursor-based tokenizer, and (2) an adapter for lexmachine,
living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"errors"

	"github.com/npillmayer/gamedef"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gamedef.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gamedef.scanner")
}

// Token categories of the declaration format.
const (
	Identifier   gamedef.TokType = iota + 1 // abc
	QuotedString                            // "abc" or 'abc'
	Integer                                 // 123
)

// KindString is a gamedef.TokTypeStringer for the token categories of this package.
func KindString(t gamedef.TokType) string {
	switch t {
	case Identifier:
		return "IDENT"
	case QuotedString:
		return "STRING"
	case Integer:
		return "INTEGER"
	}
	return "UNKNOWN"
}

var _ gamedef.TokTypeStringer = KindString

// Tokenizer is a scanner interface. Readers for declarations consume tokens
// through it.
//
// PopToken returns ErrEndOfInput when the input is exhausted. Other lexical
// errors are returned as *SyntaxError.
//
// PushBack gives a token back to the tokenizer; the next call to PopToken will
// return it unchanged. Only one token may be pushed back at a time.
type Tokenizer interface {
	PopToken() (Token, error)
	PushBack(Token)
	Offset() uint64
	SyntaxErrorAt(offset uint64, err error) *SyntaxError
	SetErrorHandler(func(error))
}

// Peek returns the next token without consuming it.
func Peek(t Tokenizer) (Token, error) {
	tok, err := t.PopToken()
	if err != nil {
		return tok, err
	}
	t.PushBack(tok)
	return tok, nil
}

// DefaultTokenizer is the default implementation of Tokenizer, backed by a
// cursor over a ByteView.
// Create one with NewTokenizer.
type DefaultTokenizer struct {
	cursor   Cursor
	pending  PushbackSlot
	matchers []Matcher
	strict   bool        // unknown escapes in strings are errors
	sourceID string      // name of the input, for diagnostics
	Error    func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NewTokenizer creates a tokenizer for an input buffer. The buffer must not be
// modified as long as tokens from the tokenizer are in use, as identifier
// tokens share their bytes with it.
func NewTokenizer(input []byte, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{
		cursor: Cursor{input: NewByteView(input)},
		strict: true,
		Error:  logError,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.matchers == nil {
		t.matchers = DefaultMatchers(t.strict)
	}
	return t
}

// SetErrorHandler sets an error handler for the tokenizer. It is called for
// every lexical error except end of input.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// Offset returns the byte position of the next token. If a token has been
// pushed back, this is the start of that token.
func (t *DefaultTokenizer) Offset() uint64 {
	if tok, ok := t.pending.Peek(); ok {
		return tok.Span().From()
	}
	return uint64(t.cursor.pos)
}

// Input returns the input buffer of the tokenizer.
func (t *DefaultTokenizer) Input() ByteView {
	return t.cursor.input
}

// SkipWhitespace advances the cursor past a run of whitespace. It returns
// ErrEndOfInput if no input is left after the run.
func (t *DefaultTokenizer) SkipWhitespace() error {
	c := &t.cursor
	for {
		b, ok := c.Peek()
		if !ok {
			return ErrEndOfInput
		}
		if !IsWhitespace(b) {
			return nil
		}
		c.Advance()
	}
}

// PopToken is part of the Tokenizer interface.
//
// If a token has been pushed back, it is returned without scanning. Otherwise
// whitespace is skipped and the matchers are tried in order, all starting at the
// same position. The first matcher to succeed wins. If none succeeds, the cursor
// is left at the start position and the error of the first matcher which
// recognized the start of its token kind is reported. If no matcher did,
// ErrNoTokenMatch is reported.
func (t *DefaultTokenizer) PopToken() (Token, error) {
	if tok, ok := t.pending.Pop(); ok {
		return tok, nil
	}
	if err := t.SkipWhitespace(); err != nil {
		tracer().Debugf("DefaultTokenizer reached end of input")
		return Token{}, err
	}
	start := t.cursor.pos
	var failure error
	for _, m := range t.matchers {
		tok, err := t.attempt(m)
		if err == nil {
			tracer().Debugf("matched %s at %d", tok, start)
			return tok, nil
		}
		if failure == nil && !errors.Is(err, ErrNoTokenMatch) {
			failure = err
		}
	}
	if failure == nil {
		failure = ErrNoTokenMatch
	}
	serr := t.SyntaxErrorAt(uint64(start), failure)
	t.Error(serr)
	return Token{}, serr
}

// attempt runs a single matcher. On failure the cursor is reset to where it was
// before the attempt.
func (t *DefaultTokenizer) attempt(m Matcher) (Token, error) {
	saved := t.cursor.pos
	tok, err := m.Match(&t.cursor)
	if err != nil {
		tracer().Debugf("matcher %s failed at %d: %v", m.Name, saved, err)
		t.cursor.pos = saved
	}
	return tok, err
}

// PushBack is part of the Tokenizer interface. Pushing back a second token
// before the first one has been popped again is a logic error and panics.
func (t *DefaultTokenizer) PushBack(tok Token) {
	t.pending.Push(tok)
}

// SyntaxErrorAt creates a syntax error for a position of the input, including a
// snippet of the input around it.
func (t *DefaultTokenizer) SyntaxErrorAt(offset uint64, err error) *SyntaxError {
	return &SyntaxError{
		Source:  t.sourceID,
		Offset:  offset,
		Context: t.cursor.input.Context(offset),
		Err:     err,
	}
}

// --- Tokenizer options -----------------------------------------------------

// Option configures a default tokenizer.
type Option func(t *DefaultTokenizer)

// WithMatchers replaces the matchers of a tokenizer. Matchers will be tried in
// the order given.
func WithMatchers(m ...Matcher) Option {
	return func(t *DefaultTokenizer) {
		t.matchers = append([]Matcher{}, m...)
	}
}

// StrictEscapes sets or clears mode-flag StrictEscapes (default is set).
// If set, an unknown escape sequence within a quoted string is an error.
// If cleared, the backslash and the character following it are kept as they are.
//
// StrictEscapes has no effect on matchers set with WithMatchers.
func StrictEscapes(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.strict = b
	}
}

// SourceID names the input in error messages, e.g. with a file name.
func SourceID(id string) Option {
	return func(t *DefaultTokenizer) {
		t.sourceID = id
	}
}
