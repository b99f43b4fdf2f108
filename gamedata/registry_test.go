package gamedata

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry(MonsterKind)
	if r == nil || r.Size() != 0 {
		t.Error("no empty registry created")
	}
}

func TestAppendRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.data")
	defer teardown()
	//
	r := NewRegistry(MonsterKind)
	h, old := r.Append(&MonsterType{Name: "orc", MaxHP: 7})
	if h != 0 || old != nil {
		t.Errorf("expected first handle to be 0, is %d", h)
	}
	h, _ = r.Append(&MonsterType{MaxHP: 3})
	if h != 1 || r.Size() != 2 {
		t.Errorf("expected second handle to be 1, is %d", h)
	}
	if mt := r.At(1).(*MonsterType); mt.MaxHP != 3 {
		t.Errorf("expected record #1 to have maxhp 3, is %d", mt.MaxHP)
	}
}

func TestResolveRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.data")
	defer teardown()
	//
	r := NewRegistry(ItemKind)
	r.Append(&ItemType{Name: "sword"})
	if rec, h, found := r.Resolve("sword"); !found || h != 0 || rec.RecordName() != "sword" {
		t.Error("cannot find stored record in registry")
	}
	if _, h, found := r.Resolve("shield"); found || h != NoHandle {
		t.Error("expected unknown name not to be found")
	}
}

func TestRedeclaredRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gamedef.data")
	defer teardown()
	//
	r := NewRegistry(MonsterKind)
	first := &MonsterType{Name: "orc", MaxHP: 7}
	r.Append(first)
	h, old := r.Append(&MonsterType{Name: "orc", MaxHP: 9})
	if old != first {
		t.Error("record should have been replaced in index")
	}
	if _, hh, _ := r.Resolve("orc"); hh != h {
		t.Errorf("expected name to resolve to latest record #%d, is #%d", h, hh)
	}
	if r.Size() != 2 {
		t.Errorf("expected both records to stay in registry")
	}
}

func TestAppendWrongKindPanics(t *testing.T) {
	r := NewRegistry(MonsterKind)
	defer func() {
		if recover() == nil {
			t.Error("expected appending an item to a monster registry to panic")
		}
	}()
	r.Append(&ItemType{Name: "sword"})
}

func TestAccessInvalidHandlePanics(t *testing.T) {
	r := NewRegistry(MonsterKind)
	defer func() {
		if recover() == nil {
			t.Error("expected access to invalid handle to panic")
		}
	}()
	r.At(3)
}

func TestEachInOrder(t *testing.T) {
	r := NewRegistry(ItemKind)
	for _, name := range []string{"a", "b", "c"} {
		r.Append(&ItemType{Name: name})
	}
	names := ""
	r.Each(func(h Handle, rec Record) {
		names += rec.RecordName()
	})
	if names != "abc" {
		t.Errorf("expected records in order of appending, have %q", names)
	}
}
