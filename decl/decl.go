package decl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/gamedef"
	"github.com/npillmayer/gamedef/gamedata"
	"github.com/npillmayer/gamedef/scanner"
)

// ErrMissingRequiredValue is returned for a field name which is not followed
// by a value of the required kind. The declaration cannot be continued.
var ErrMissingRequiredValue = errors.New("missing required value")

// Reader tries to read a declaration of one kind.
//
// TryParse returns false if the input does not start with a declaration of
// the reader's kind; it then leaves the tokenizer as it was. Otherwise it returns
// the record and true, or an error if the declaration is malformed.
type Reader interface {
	TryParse(tz scanner.Tokenizer) (gamedata.Record, bool, error)
}

// --- Declarations ----------------------------------------------------------

// Field describes a `name value` clause of a declaration.
type Field struct {
	Name   string            // case-sensitive
	Accept []gamedef.TokType // kinds of tokens accepted as value
	Set    func(rec gamedata.Record, value scanner.Token)
}

func (f Field) accepts(tok scanner.Token) bool {
	for _, k := range f.Accept {
		if tok.Is(k) {
			return true
		}
	}
	return false
}

func (f Field) expected() string {
	kinds := make([]string, len(f.Accept))
	for i, k := range f.Accept {
		kinds[i] = scanner.KindString(k)
	}
	return strings.Join(kinds, " or ")
}

// Declaration describes the shape of a declaration: a keyword followed by
// fields in any order. Fields may be repeated; the last value wins.
// Declaration implements Reader.
type Declaration struct {
	Keyword string // case-sensitive
	Fields  []Field
	Make    func() gamedata.Record // creates an empty record
}

var _ Reader = (*Declaration)(nil)

func (d *Declaration) field(name scanner.ByteView) *Field {
	for i := range d.Fields {
		if name.Equals(d.Fields[i].Name) {
			return &d.Fields[i]
		}
	}
	return nil
}

// TryParse is part of interface Reader.
func (d *Declaration) TryParse(tz scanner.Tokenizer) (gamedata.Record, bool, error) {
	tok, err := tz.PopToken()
	if err != nil {
		return nil, false, nil
	}
	if !tok.IsIdent(d.Keyword) {
		tz.PushBack(tok)
		return nil, false, nil
	}
	rec := d.Make()
	for {
		key, err := tz.PopToken()
		if err != nil {
			// end of input or no recognizable token: the declaration is complete
			return rec, true, nil
		}
		var f *Field
		if key.Is(scanner.Identifier) {
			f = d.field(key.Text())
		}
		if f == nil {
			tracer().Debugf("%s declaration ends before %s", d.Keyword, key)
			tz.PushBack(key)
			return rec, true, nil
		}
		value, err := tz.PopToken()
		if err != nil && err != scanner.ErrEndOfInput {
			return rec, true, err
		}
		if err != nil || !f.accepts(value) {
			err = fmt.Errorf("%w: field %s of %s expects %s", ErrMissingRequiredValue,
				f.Name, d.Keyword, f.expected())
			return rec, true, tz.SyntaxErrorAt(key.Span().To(), err)
		}
		f.Set(rec, value)
	}
}

// --- Monster types ---------------------------------------------------------

// MonsterTypes reads declarations of monster types:
//
//    MONSTER [name STRING|IDENT] [maxhp INTEGER]
//
var MonsterTypes = &Declaration{
	Keyword: gamedata.MonsterKind,
	Fields: []Field{
		{
			Name:   "name",
			Accept: []gamedef.TokType{scanner.QuotedString, scanner.Identifier},
			Set: func(rec gamedata.Record, value scanner.Token) {
				rec.(*gamedata.MonsterType).Name = value.Text().String()
			},
		},
		{
			Name:   "maxhp",
			Accept: []gamedef.TokType{scanner.Integer},
			Set: func(rec gamedata.Record, value scanner.Token) {
				rec.(*gamedata.MonsterType).MaxHP = value.Int()
			},
		},
	},
	Make: func() gamedata.Record { return &gamedata.MonsterType{} },
}

// TryParseMonsterType reads a monster type declaration.
func TryParseMonsterType(tz scanner.Tokenizer) (*gamedata.MonsterType, bool, error) {
	rec, ok, err := MonsterTypes.TryParse(tz)
	if !ok {
		return nil, false, err
	}
	return rec.(*gamedata.MonsterType), true, err
}

// --- Item types ------------------------------------------------------------

// ItemTypes reads declarations of item types:
//
//    ITEM [name STRING|IDENT]
//
var ItemTypes = &Declaration{
	Keyword: gamedata.ItemKind,
	Fields: []Field{
		{
			Name:   "name",
			Accept: []gamedef.TokType{scanner.QuotedString, scanner.Identifier},
			Set: func(rec gamedata.Record, value scanner.Token) {
				rec.(*gamedata.ItemType).Name = value.Text().String()
			},
		},
	},
	Make: func() gamedata.Record { return &gamedata.ItemType{} },
}

// TryParseItemType reads an item type declaration.
func TryParseItemType(tz scanner.Tokenizer) (*gamedata.ItemType, bool, error) {
	rec, ok, err := ItemTypes.TryParse(tz)
	if !ok {
		return nil, false, err
	}
	return rec.(*gamedata.ItemType), true, err
}
