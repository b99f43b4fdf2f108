package lexmach

import (
	"errors"
	"sync"

	"github.com/npillmayer/gamedef"
	"github.com/npillmayer/gamedef/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'gamedef.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gamedef.scanner")
}

// Regular expressions for the tokens of the declaration format.
const (
	identRegex   = `([a-z]|[A-Z])+`
	integerRegex = `[0-9]+`
	dquoteRegex  = `"([^"\\]|\\[nt\\"'])*"`
	squoteRegex  = `'([^'\\]|\\[nt\\"'])*'`
	quoteRegex   = `"|'` // start of a malformed string
	spaceRegex   = `( |\t|\n)+`
)

// LMAdapter is a lexmachine adapter to use lexmachine as a tokenizer for
// game data declarations.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an optional init
// function, which is called before the rules for the declaration format are
// added. Clients may use it to add rules of their own, e.g. for comments,
// which will take precedence for matches of equal length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer)) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	adapter.Lexer.Add([]byte(identRegex), identToken)
	adapter.Lexer.Add([]byte(dquoteRegex), stringToken)
	adapter.Lexer.Add([]byte(squoteRegex), stringToken)
	adapter.Lexer.Add([]byte(quoteRegex), malformedString)
	adapter.Lexer.Add([]byte(integerRegex), integerToken)
	adapter.Lexer.Add([]byte(spaceRegex), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

var defaultAdapter *LMAdapter
var defaultErr error
var initOnce sync.Once // monitors one-time creation of the default adapter

// Default returns an adapter without additional rules. The DFA is compiled
// only once.
func Default() (*LMAdapter, error) {
	initOnce.Do(func() {
		defaultAdapter, defaultErr = NewLMAdapter(nil)
	})
	return defaultAdapter, defaultErr
}

// Scanner creates a scanner for a given input. The scanner will implement the
// scanner.Tokenizer interface. sourceID names the input in error messages
// and may be empty.
func (lm *LMAdapter) Scanner(input []byte, sourceID string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner(input)
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{
		scanner:  s,
		input:    scanner.NewByteView(input),
		sourceID: sourceID,
		Error:    logError,
	}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// scanner.Tokenizer interface. Unknown escape sequences within strings are
// always an error.
type LMScanner struct {
	scanner  *lexmachine.Scanner
	input    scanner.ByteView
	pending  scanner.PushbackSlot
	sourceID string
	Error    func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// PopToken is part of the scanner.Tokenizer interface.
//
// After an error the scanner stays at the position of the error.
func (lms *LMScanner) PopToken() (scanner.Token, error) {
	if tok, ok := lms.pending.Pop(); ok {
		return tok, nil
	}
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		var serr *scanner.SyntaxError
		var ui *machines.UnconsumedInput
		var me matchError
		if errors.As(err, &ui) {
			lms.scanner.TC = ui.StartTC
			serr = lms.SyntaxErrorAt(uint64(ui.StartTC), scanner.ErrNoTokenMatch)
		} else if errors.As(err, &me) {
			lms.scanner.TC = me.tc
			serr = lms.SyntaxErrorAt(uint64(me.tc), me.err)
		} else {
			serr = lms.SyntaxErrorAt(uint64(lms.scanner.TC), err)
		}
		lms.Error(serr)
		return scanner.Token{}, serr
	}
	if eof {
		tracer().Debugf("LMScanner reached end of input")
		return scanner.Token{}, scanner.ErrEndOfInput
	}
	token := tok.(scanner.Token)
	tracer().Debugf("matched %s at %d", token, token.Span().From())
	return token, nil
}

// PushBack is part of the scanner.Tokenizer interface.
func (lms *LMScanner) PushBack(tok scanner.Token) {
	lms.pending.Push(tok)
}

// Offset is part of the scanner.Tokenizer interface.
func (lms *LMScanner) Offset() uint64 {
	if tok, ok := lms.pending.Peek(); ok {
		return tok.Span().From()
	}
	return uint64(lms.scanner.TC)
}

// SyntaxErrorAt is part of the scanner.Tokenizer interface.
func (lms *LMScanner) SyntaxErrorAt(offset uint64, err error) *scanner.SyntaxError {
	return &scanner.SyntaxError{
		Source:  lms.sourceID,
		Offset:  offset,
		Context: lms.input.Context(offset),
		Err:     err,
	}
}

// --- Actions ---------------------------------------------------------------

// matchError is an error of an action for a match starting at tc.
type matchError struct {
	tc  int
	err error
}

func (e matchError) Error() string {
	return e.err.Error()
}

func (e matchError) Unwrap() error {
	return e.err
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func lexeme(s *lexmachine.Scanner, m *machines.Match) scanner.ByteView {
	return scanner.NewByteView(s.Text).Slice(m.TC, len(m.Bytes))
}

func span(m *machines.Match) gamedef.Span {
	return gamedef.Span{uint64(m.TC), uint64(m.TC + len(m.Bytes))}
}

func identToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return scanner.MakeIdentToken(lexeme(s, m), span(m)), nil
}

func integerToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	n, err := scanner.ParseDecimal(m.Bytes)
	if err != nil {
		return nil, matchError{tc: m.TC, err: err}
	}
	return scanner.MakeIntToken(n, lexeme(s, m), span(m)), nil
}

func stringToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	decoded, err := scanner.Unquote(m.Bytes, true)
	if err != nil {
		return nil, matchError{tc: m.TC, err: err}
	}
	return scanner.MakeStringToken(decoded, lexeme(s, m), span(m)), nil
}

// malformedString is called for a quote which does not start a well-formed
// string. We let the string matcher of package scanner find out what is wrong.
func malformedString(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	c := scanner.NewCursor(scanner.NewByteView(s.Text), m.TC)
	_, err := scanner.QuotedStringMatcher(true)(c)
	if err == nil {
		err = scanner.ErrUnterminatedString
	}
	return nil, matchError{tc: m.TC, err: err}
}
