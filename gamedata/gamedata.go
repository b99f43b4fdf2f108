/*
Package gamedata holds the records produced by reading game data declarations.

Records

Records describe types of game entities, currently monster types and item types.
Only the fields set by declarations are held here; the game world itself is
built from them elsewhere.

Registries

Records of one kind are collected in a registry. Registries are append-only;
records are referenced by handles, which stay valid for the lifetime of the
registry.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package gamedata

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gamedef.data'.
func tracer() tracing.Trace {
	return tracing.Select("gamedef.data")
}

// Record kinds, identical to the keywords of their declarations.
const (
	MonsterKind = "MONSTER"
	ItemKind    = "ITEM"
)

// MonsterType describes a kind of monster.
type MonsterType struct {
	Name  string
	MaxHP int64
}

// RecordKind is part of interface Record.
func (mt *MonsterType) RecordKind() string { return MonsterKind }

// RecordName is part of interface Record.
func (mt *MonsterType) RecordName() string { return mt.Name }

func (mt *MonsterType) String() string {
	return fmt.Sprintf("<monster %q maxhp=%d>", mt.Name, mt.MaxHP)
}

// ItemType describes a kind of item.
type ItemType struct {
	Name string
}

// RecordKind is part of interface Record.
func (it *ItemType) RecordKind() string { return ItemKind }

// RecordName is part of interface Record.
func (it *ItemType) RecordName() string { return it.Name }

func (it *ItemType) String() string {
	return fmt.Sprintf("<item %q>", it.Name)
}

// ---------------------------------------------------------------------------

// GameData is the registry of registries: it owns a registry for each kind
// of record.
type GameData struct {
	MonsterTypes *Registry
	ItemTypes    *Registry
	registries   map[string]*Registry
	UData        interface{} // extension point
}

// New constructs an empty game data collection.
func New() *GameData {
	gd := &GameData{
		MonsterTypes: NewRegistry(MonsterKind),
		ItemTypes:    NewRegistry(ItemKind),
	}
	gd.registries = map[string]*Registry{
		MonsterKind: gd.MonsterTypes,
		ItemKind:    gd.ItemTypes,
	}
	return gd
}

// Registry returns the registry for a kind of record, or nil.
func (gd *GameData) Registry(kind string) *Registry {
	return gd.registries[kind]
}

// Register appends a record to the registry for its kind.
func (gd *GameData) Register(rec Record) (Handle, error) {
	r := gd.Registry(rec.RecordKind())
	if r == nil {
		return NoHandle, fmt.Errorf("no registry for records of kind %s", rec.RecordKind())
	}
	h, old := r.Append(rec)
	if old != nil {
		tracer().Infof("%s %q re-declared, replacing record in index", r.Kind, rec.RecordName())
	}
	return h, nil
}

// Monster returns the monster type for a handle.
func (gd *GameData) Monster(h Handle) *MonsterType {
	return gd.MonsterTypes.At(h).(*MonsterType)
}

// Item returns the item type for a handle.
func (gd *GameData) Item(h Handle) *ItemType {
	return gd.ItemTypes.At(h).(*ItemType)
}

// Monsters returns all monster types, in the order of declaration.
func (gd *GameData) Monsters() []*MonsterType {
	mts := make([]*MonsterType, 0, gd.MonsterTypes.Size())
	gd.MonsterTypes.Each(func(_ Handle, rec Record) {
		mts = append(mts, rec.(*MonsterType))
	})
	return mts
}

// Items returns all item types, in the order of declaration.
func (gd *GameData) Items() []*ItemType {
	its := make([]*ItemType, 0, gd.ItemTypes.Size())
	gd.ItemTypes.Each(func(_ Handle, rec Record) {
		its = append(its, rec.(*ItemType))
	})
	return its
}

// snapshot is the hashable content of a GameData.
type snapshot struct {
	Monsters []MonsterType
	Items    []ItemType
}

// Digest returns a fingerprint of all records. Two collections with equal
// records in equal order have equal digests. Tools may use it to detect
// changes in game data files.
func (gd *GameData) Digest() (string, error) {
	var snap snapshot
	for _, mt := range gd.Monsters() {
		snap.Monsters = append(snap.Monsters, *mt)
	}
	for _, it := range gd.Items() {
		snap.Items = append(snap.Items, *it)
	}
	return structhash.Hash(snap, 1)
}
