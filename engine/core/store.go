package core

import (
	"fmt"
	"iter"

	"github.com/1siamBot/tactics-engine/engine/grid"
)

// ActorID is a generation-checked handle into a Store. A handle stays valid
// until its actor is removed; a reused slot never answers to an old handle.
type ActorID struct {
	index uint32
	gen   uint32
}

// Valid reports whether the handle was ever issued
func (id ActorID) Valid() bool { return id.gen != 0 }

// Uint64 packs the handle for logs and replay files
func (id ActorID) Uint64() uint64 { return uint64(id.gen)<<32 | uint64(id.index) }

// ActorIDFromUint64 reverses Uint64
func ActorIDFromUint64(v uint64) ActorID {
	return ActorID{index: uint32(v), gen: uint32(v >> 32)}
}

func (id ActorID) String() string { return fmt.Sprintf("actor#%dv%d", id.index, id.gen) }

type slot struct {
	gen   uint32
	alive bool
	actor Actor
}

// Store holds all actors: a dense slot array plus a free list
type Store struct {
	slots []slot
	free  []uint32
	count int
}

// NewStore creates an empty actor store
func NewStore() *Store {
	return &Store{}
}

// Insert adds an actor and returns its handle
func (s *Store) Insert(a Actor) ActorID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.alive = true
	sl.actor = a
	s.count++
	return ActorID{index: idx, gen: sl.gen}
}

func (s *Store) live(id ActorID) *slot {
	if !id.Valid() || int(id.index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[id.index]
	if !sl.alive || sl.gen != id.gen {
		return nil
	}
	return sl
}

// Get returns the actor for id, or false if it was removed
func (s *Store) Get(id ActorID) (*Actor, bool) {
	sl := s.live(id)
	if sl == nil {
		return nil, false
	}
	return &sl.actor, true
}

// MustGet is Get for handles the caller knows are alive. Panics otherwise.
func (s *Store) MustGet(id ActorID) *Actor {
	a, ok := s.Get(id)
	if !ok {
		panic(fmt.Sprintf("core: stale actor handle %v", id))
	}
	return a
}

// Contains reports whether id refers to a live actor
func (s *Store) Contains(id ActorID) bool { return s.live(id) != nil }

// Remove deletes the actor. Returns false for stale handles.
func (s *Store) Remove(id ActorID) bool {
	sl := s.live(id)
	if sl == nil {
		return false
	}
	sl.alive = false
	sl.actor = Actor{}
	s.free = append(s.free, id.index)
	s.count--
	return true
}

// Len returns the number of live actors
func (s *Store) Len() int { return s.count }

// All yields live actors in slot order
func (s *Store) All() iter.Seq2[ActorID, *Actor] {
	return func(yield func(ActorID, *Actor) bool) {
		for i := range s.slots {
			sl := &s.slots[i]
			if !sl.alive {
				continue
			}
			if !yield(ActorID{index: uint32(i), gen: sl.gen}, &sl.actor) {
				return
			}
		}
	}
}

// ByTeam yields live actors of one team in slot order
func (s *Store) ByTeam(team Team) iter.Seq2[ActorID, *Actor] {
	return func(yield func(ActorID, *Actor) bool) {
		for id, a := range s.All() {
			if a.Team != team {
				continue
			}
			if !yield(id, a) {
				return
			}
		}
	}
}

// IDs returns a snapshot of live handles of one team
func (s *Store) IDs(team Team) []ActorID {
	var ids []ActorID
	for id := range s.ByTeam(team) {
		ids = append(ids, id)
	}
	return ids
}

// AtPos returns the first actor standing on p
func (s *Store) AtPos(p grid.Pos) (ActorID, bool) {
	for id, a := range s.All() {
		if a.Pos == p {
			return id, true
		}
	}
	return ActorID{}, false
}

// Positions returns the cells occupied by actors accepted by keep
func (s *Store) Positions(keep func(*Actor) bool) []grid.Pos {
	var out []grid.Pos
	for _, a := range s.All() {
		if keep == nil || keep(a) {
			out = append(out, a.Pos)
		}
	}
	return out
}

// ResetMoved clears HasMoved on every actor
func (s *Store) ResetMoved() {
	for _, a := range s.All() {
		a.HasMoved = false
	}
}
