package gamedata

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Registries for records. Records are stored in an arena, in the order they
// are appended, and are never removed. Named records are indexed by name.

// --- Records ---------------------------------------------------------------

// Record is the type of entries of a registry: a monster type, an item type, etc.
type Record interface {
	RecordKind() string // e.g. "MONSTER"
	RecordName() string // may be empty
}

// Handle refers to a record within its registry.
type Handle int

// NoHandle is returned for lookups which have not found a record.
const NoHandle Handle = -1

// === Registries ============================================================

// Registry is a collection of records of one kind.
type Registry struct {
	Kind  string
	arena *arraylist.List
	index map[string]Handle
}

// NewRegistry creates an empty registry for records of a kind.
func NewRegistry(kind string) *Registry {
	return &Registry{
		Kind:  kind,
		arena: arraylist.New(),
		index: make(map[string]Handle),
	}
}

// Append stores a record and returns its handle.
// If the record has a name, it is indexed by it, replacing a record
// previously indexed under the same name. The replaced record (or nil) is
// returned as well; it remains in the arena.
//
func (r *Registry) Append(rec Record) (Handle, Record) {
	if rec.RecordKind() != r.Kind {
		panic(fmt.Sprintf("attempt to append %s record to %s registry", rec.RecordKind(), r.Kind))
	}
	h := Handle(r.arena.Size())
	r.arena.Add(rec)
	var old Record
	if name := rec.RecordName(); name != "" {
		old, _, _ = r.Resolve(name)
		r.index[name] = h
	}
	tracer().P("kind", r.Kind).Debugf("appended record #%d %q", h, rec.RecordName())
	return h, old
}

// At returns the record for a handle. It panics for a handle not created by
// this registry.
func (r *Registry) At(h Handle) Record {
	rec, ok := r.arena.Get(int(h))
	if !ok {
		panic(fmt.Sprintf("attempt to access record #%d of %s registry of size %d", h, r.Kind, r.Size()))
	}
	return rec.(Record)
}

// Resolve finds the record most recently appended under a name.
// Returns the record (or nil), its handle and a flag, signalling whether
// the record has been found.
//
func (r *Registry) Resolve(name string) (Record, Handle, bool) {
	h, ok := r.index[name]
	if !ok {
		return nil, NoHandle, false
	}
	return r.At(h), h, true
}

// Size counts the records in a registry.
func (r *Registry) Size() int {
	return r.arena.Size()
}

// Each iterates over the records in the order they have been appended,
// executing a mapper function.
func (r *Registry) Each(mapper func(Handle, Record)) {
	it := r.arena.Iterator()
	for it.Next() {
		mapper(Handle(it.Index()), it.Value().(Record))
	}
}

// Prettyfied Stringer.
func (r *Registry) String() string {
	return fmt.Sprintf("<registry %s:%d>", r.Kind, r.Size())
}
