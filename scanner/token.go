package scanner

import (
	"fmt"

	"github.com/npillmayer/gamedef"
)

// Token is a token of the declaration format. The payload depends on the kind
// of the token: identifiers and quoted strings carry text, integers carry a
// number. Reading the payload of the wrong kind is a logic error and panics.
//
// The text of an identifier shares its bytes with the input. The text of a
// quoted string is decoded into a buffer of its own.
type Token struct {
	kind   gamedef.TokType
	text   ByteView // IDENT and STRING
	num    int64    // INTEGER
	lexeme ByteView // as it appeared in the input
	span   gamedef.Span
}

var _ gamedef.Token = Token{}

// MakeIdentToken creates an identifier token. lexeme is the identifier as it
// appeared in the input.
func MakeIdentToken(lexeme ByteView, span gamedef.Span) Token {
	return Token{kind: Identifier, text: lexeme, lexeme: lexeme, span: span}
}

// MakeStringToken creates a string token, with decoded being the content of the
// string after processing of quotes and escapes.
func MakeStringToken(decoded []byte, lexeme ByteView, span gamedef.Span) Token {
	return Token{kind: QuotedString, text: NewByteView(decoded), lexeme: lexeme, span: span}
}

// MakeIntToken creates an integer token.
func MakeIntToken(n int64, lexeme ByteView, span gamedef.Span) Token {
	return Token{kind: Integer, num: n, lexeme: lexeme, span: span}
}

// TokType is part of the gamedef.Token interface.
func (t Token) TokType() gamedef.TokType {
	return t.kind
}

// Is is true if the token is of kind k.
func (t Token) Is(k gamedef.TokType) bool {
	return t.kind == k
}

// IsIdent is true if the token is an identifier spelled exactly as s.
func (t Token) IsIdent(s string) bool {
	return t.kind == Identifier && t.text.Equals(s)
}

// Text returns the text of an identifier or string token.
func (t Token) Text() ByteView {
	if t.kind != Identifier && t.kind != QuotedString {
		panic(fmt.Sprintf("attempt to read text of %s token", KindString(t.kind)))
	}
	return t.text
}

// Int returns the value of an integer token.
func (t Token) Int() int64 {
	if t.kind != Integer {
		panic(fmt.Sprintf("attempt to read integer value of %s token", KindString(t.kind)))
	}
	return t.num
}

// Lexeme is part of the gamedef.Token interface.
func (t Token) Lexeme() string {
	return t.lexeme.String()
}

// Value is part of the gamedef.Token interface. It returns a string for
// identifiers and quoted strings, and an int64 for integers.
func (t Token) Value() interface{} {
	switch t.kind {
	case Identifier, QuotedString:
		return t.text.String()
	case Integer:
		return t.num
	}
	return nil
}

// Span is part of the gamedef.Token interface.
func (t Token) Span() gamedef.Span {
	return t.span
}

func (t Token) String() string {
	switch t.kind {
	case Identifier, QuotedString:
		return fmt.Sprintf("%s %q:%d", KindString(t.kind), t.text.String(), t.text.Len())
	case Integer:
		return fmt.Sprintf("%s %d", KindString(t.kind), t.num)
	}
	return "<no token>"
}
