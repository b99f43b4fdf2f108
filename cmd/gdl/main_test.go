package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/gamedef/gamedata"
	"github.com/npillmayer/gamedef/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEvalAccumulatesRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.cli")
	defer teardown()
	//
	for _, useLM := range []bool{false, true} {
		intp := &Intp{gd: gamedata.New(), useLM: useLM, strict: true}
		if err := intp.Eval([]byte("MONSTER name orc maxhp 7"), ""); err != nil {
			t.Fatal(err)
		}
		if err := intp.Eval([]byte("ITEM name 'club'"), ""); err != nil {
			t.Fatal(err)
		}
		if intp.gd.MonsterTypes.Size() != 1 || intp.gd.ItemTypes.Size() != 1 {
			t.Errorf("expected records of both lines to be kept (lexmachine=%v)", useLM)
		}
		if err := intp.Eval([]byte("MONSTER maxhp"), ""); err == nil {
			t.Errorf("expected error for missing value (lexmachine=%v)", useLM)
		}
	}
}

func TestTokenString(t *testing.T) {
	tz := scanner.NewTokenizer([]byte(" 'lol string'"))
	tok, _ := tz.PopToken()
	s := tokenString(tok)
	if !strings.HasPrefix(s, "STRING") || !strings.Contains(s, "(1…13)") {
		t.Errorf("unexpected token dump %q", s)
	}
}

func TestExecuteQuit(t *testing.T) {
	intp := &Intp{gd: gamedata.New()}
	if !intp.Execute(":quit") || intp.Execute(":digest") {
		t.Errorf("expected only :quit to end the session")
	}
}
