package decl

import (
	"errors"
	"fmt"

	"github.com/npillmayer/gamedef/gamedata"
	"github.com/npillmayer/gamedef/scanner"
)

// ErrUnknownDeclaration is returned if no reader accepts the input at the
// start of a declaration.
var ErrUnknownDeclaration = errors.New("unknown declaration")

// Parser reads declarations with a table of readers.
type Parser struct {
	readers []Reader
}

// Option configures a parser.
type Option func(p *Parser)

// WithReaders sets the table of readers. Readers are tried in the order given,
// the first one to accept a declaration wins.
func WithReaders(r ...Reader) Option {
	return func(p *Parser) {
		p.readers = append([]Reader{}, r...)
	}
}

// DefaultReaders returns the readers for all kinds of declarations of package
// gamedata.
func DefaultReaders() []Reader {
	return []Reader{MonsterTypes, ItemTypes}
}

// NewParser creates a parser. Without options, it uses DefaultReaders.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.readers == nil {
		p.readers = DefaultReaders()
	}
	return p
}

// Parse reads declarations until the input is exhausted, registering the records
// in gd. It stops at the first error, which is a *scanner.SyntaxError for errors
// in the input. Records read before the error remain registered.
func (p *Parser) Parse(tz scanner.Tokenizer, gd *gamedata.GameData) error {
	for {
		tok, err := scanner.Peek(tz)
		if err == scanner.ErrEndOfInput {
			return nil
		} else if err != nil {
			return err
		}
		rec, err := p.read(tz)
		if err != nil {
			tracer().Errorf("%v", err)
			return err
		}
		if rec == nil {
			err = fmt.Errorf("%w starting with %s", ErrUnknownDeclaration, tok)
			return tz.SyntaxErrorAt(tok.Span().From(), err)
		}
		if _, err = gd.Register(rec); err != nil {
			return err
		}
		tracer().Infof("read %s", rec)
	}
}

func (p *Parser) read(tz scanner.Tokenizer) (gamedata.Record, error) {
	for _, r := range p.readers {
		rec, ok, err := r.TryParse(tz)
		if ok || err != nil {
			return rec, err
		}
	}
	return nil, nil
}

// Parse reads declarations with the default readers.
func Parse(tz scanner.Tokenizer, gd *gamedata.GameData) error {
	return NewParser().Parse(tz, gd)
}

// ReadGameData tokenizes an input buffer and reads all its declarations into a
// new game data collection. sourceID names the input in error messages.
func ReadGameData(input []byte, sourceID string, opts ...scanner.Option) (*gamedata.GameData, error) {
	opts = append([]scanner.Option{scanner.SourceID(sourceID)}, opts...)
	tz := scanner.NewTokenizer(input, opts...)
	gd := gamedata.New()
	if err := Parse(tz, gd); err != nil {
		return gd, err
	}
	return gd, nil
}
