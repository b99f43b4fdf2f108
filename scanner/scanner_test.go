package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/gamedef"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type tokenExpectation struct {
	kind  gamedef.TokType
	value interface{}
}

func TestScanSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	tz := NewTokenizer([]byte("these are 3 some 'lol string' tokens"))
	expected := []tokenExpectation{
		{Identifier, "these"},
		{Identifier, "are"},
		{Integer, int64(3)},
		{Identifier, "some"},
		{QuotedString, "lol string"},
		{Identifier, "tokens"},
	}
	for i, exp := range expected {
		tok, err := tz.PopToken()
		if err != nil {
			t.Fatalf("token #%d: unexpected error %v", i, err)
		}
		t.Logf(" %2d | %-22s | %s", i, tok, tok.Span())
		if tok.TokType() != exp.kind || tok.Value() != exp.value {
			t.Errorf("token #%d: expected %s %v, have %s", i, KindString(exp.kind), exp.value, tok)
		}
	}
	if _, err := tz.PopToken(); err != ErrEndOfInput {
		t.Errorf("expected end of input, have %v", err)
	}
}

func TestScanCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		count int
	}{
		{"1", 1},
		{"abc123", 2},
		{"  \t\n ", 0},
		{"", 0},
		{`MONSTER name "Orc" maxhp 7`, 5},
		{"a'b'c", 3},
		{"12 'x'34", 3},
	} {
		tz := NewTokenizer([]byte(test.input))
		count := 0
		for {
			_, err := tz.PopToken()
			if err == ErrEndOfInput {
				break
			} else if err != nil {
				t.Fatalf("test %d: unexpected error %v", i, err)
			}
			count++
		}
		if count != test.count {
			t.Errorf("test %d: expected token count for %q to be %d, is %d", i, test.input, test.count, count)
		}
	}
}

func TestMaximalMunch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	tz := NewTokenizer([]byte("abc123"))
	tok, _ := tz.PopToken()
	if !tok.IsIdent("abc") {
		t.Errorf("expected identifier 'abc', have %s", tok)
	}
	if tok.Span() != (gamedef.Span{0, 3}) {
		t.Errorf("expected identifier to span (0…3), is %s", tok.Span())
	}
	tok, _ = tz.PopToken()
	if !tok.Is(Integer) || tok.Int() != 123 {
		t.Errorf("expected integer 123, have %s", tok)
	}
}

func TestSkipWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	tz := NewTokenizer([]byte(" \t\n x"))
	if err := tz.SkipWhitespace(); err != nil {
		t.Fatal(err)
	}
	pos := tz.Offset()
	if pos != 4 {
		t.Errorf("expected cursor at 4, is at %d", pos)
	}
	if err := tz.SkipWhitespace(); err != nil || tz.Offset() != pos {
		t.Errorf("expected second skip to be a no-op, cursor moved to %d (%v)", tz.Offset(), err)
	}
	tz = NewTokenizer([]byte("   "))
	if err := tz.SkipWhitespace(); err != ErrEndOfInput {
		t.Errorf("expected end of input after trailing whitespace, have %v", err)
	}
	if err := tz.SkipWhitespace(); err != ErrEndOfInput {
		t.Errorf("expected end of input to be reported again, have %v", err)
	}
}

func TestPushBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	tz := NewTokenizer([]byte("MONSTER maxhp"))
	first, _ := tz.PopToken()
	tz.PushBack(first)
	if tz.Offset() != 0 {
		t.Errorf("expected offset of pushed back token to be 0, is %d", tz.Offset())
	}
	again, err := tz.PopToken()
	if err != nil || again.Span() != first.Span() || !again.IsIdent("MONSTER") {
		t.Errorf("expected pushed back token to be returned unchanged, have %s", again)
	}
	peeked, _ := Peek(tz)
	next, _ := tz.PopToken()
	if !peeked.IsIdent("maxhp") || !next.IsIdent("maxhp") {
		t.Errorf("expected peek and pop to return 'maxhp', have %s and %s", peeked, next)
	}
}

func TestPushBackTwicePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	tz := NewTokenizer([]byte("a b"))
	a, _ := tz.PopToken()
	b, _ := tz.PopToken()
	tz.PushBack(b)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected second push back to panic")
		}
	}()
	tz.PushBack(a)
}

func TestNoTokenMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	tz := NewTokenizer([]byte("maxhp # 10"), SourceID("test.gd"))
	var reported error
	tz.SetErrorHandler(func(e error) { reported = e })
	tz.PopToken()
	_, err := tz.PopToken()
	if !errors.Is(err, ErrNoTokenMatch) {
		t.Fatalf("expected no-match error, have %v", err)
	}
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected a syntax error, have %T", err)
	}
	if serr.Offset != 6 || serr.Source != "test.gd" || serr.Context != "maxhp # 10" {
		t.Errorf("unexpected diagnostics: %v", serr)
	}
	if reported != err {
		t.Errorf("expected error handler to receive the error")
	}
	t.Logf("error: %v", err)
	if _, err2 := tz.PopToken(); err2 == nil || serr.Offset != tz.Offset() {
		t.Errorf("expected cursor to stay at the unmatched byte")
	}
}

func TestUnterminatedString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		input  string
		offset uint64
	}{
		{`"abc`, 0},
		{`x 'abc"`, 2},
		{`x "abc\"`, 2},
		{`"abc\`, 0},
	} {
		tz := NewTokenizer([]byte(test.input))
		tz.SetErrorHandler(func(error) {})
		var err error
		for err == nil {
			_, err = tz.PopToken()
		}
		if !errors.Is(err, ErrUnterminatedString) {
			t.Errorf("test %d: expected unterminated string, have %v", i, err)
		}
		if tz.Offset() != test.offset {
			t.Errorf("test %d: expected cursor restored to %d, is %d", i, test.offset, tz.Offset())
		}
	}
}

func TestStrictEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	input := []byte(`"a\qb"`)
	tz := NewTokenizer(input)
	tz.SetErrorHandler(func(error) {})
	if _, err := tz.PopToken(); !errors.Is(err, ErrUnknownEscape) {
		t.Errorf("expected unknown escape error, have %v", err)
	}
	tz = NewTokenizer(input, StrictEscapes(false))
	tok, err := tz.PopToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Text().String() != `a\qb` {
		t.Errorf("expected escape to pass through, have %q", tok.Text().String())
	}
}

func TestIntegerOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	tz := NewTokenizer([]byte("9223372036854775807"))
	tok, err := tz.PopToken()
	if err != nil || tok.Int() != 9223372036854775807 {
		t.Errorf("expected max int64, have %s (%v)", tok, err)
	}
	tz = NewTokenizer([]byte("9223372036854775808"))
	tz.SetErrorHandler(func(error) {})
	if _, err = tz.PopToken(); !errors.Is(err, ErrIntegerOverflow) {
		t.Errorf("expected integer overflow, have %v", err)
	}
	if tz.Offset() != 0 {
		t.Errorf("expected cursor to be restored, is at %d", tz.Offset())
	}
}

func TestWithMatchers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	tz := NewTokenizer([]byte("abc 12"), WithMatchers(Matcher{Name: "integer", Match: MatchInteger}))
	tz.SetErrorHandler(func(error) {})
	if _, err := tz.PopToken(); !errors.Is(err, ErrNoTokenMatch) {
		t.Errorf("expected identifiers not to be recognized, have %v", err)
	}
}

func TestTokenPayloadOfWrongKindPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.scanner")
	defer teardown()
	//
	tz := NewTokenizer([]byte("7"))
	tok, _ := tz.PopToken()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected reading text of an integer token to panic")
		}
	}()
	_ = tok.Text()
}
