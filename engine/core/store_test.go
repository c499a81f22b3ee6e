package core

import (
	"testing"

	"github.com/1siamBot/tactics-engine/engine/grid"
)

func TestStore_InsertGetRemove(t *testing.T) {
	s := NewStore()
	a := s.Insert(NewActor(grid.Pos{X: 1, Y: 2}, TeamBlue, UnitInfantry, "inf", 16))
	b := s.Insert(NewActor(grid.Pos{X: 3, Y: 4}, TeamRed, UnitTank, "tank", 16))
	if s.Len() != 2 {
		t.Fatalf("expected 2 actors, got %d", s.Len())
	}
	got, ok := s.Get(a)
	if !ok || got.Pos != (grid.Pos{X: 1, Y: 2}) || got.HP != HPMax {
		t.Fatalf("unexpected actor %+v ok=%v", got, ok)
	}
	if got.DrawPos != (Vec2{16, 32}) {
		t.Fatalf("draw pos should start on the cell, got %+v", got.DrawPos)
	}
	if !s.Remove(a) {
		t.Fatal("remove of live actor should succeed")
	}
	if s.Remove(a) {
		t.Fatal("second remove should fail")
	}
	if _, ok := s.Get(a); ok {
		t.Fatal("removed actor should not resolve")
	}
	if _, ok := s.Get(b); !ok {
		t.Fatal("other actor should survive removal")
	}
}

func TestStore_ReusedSlotRejectsStaleHandle(t *testing.T) {
	s := NewStore()
	old := s.Insert(Actor{Team: TeamBlue})
	s.Remove(old)
	fresh := s.Insert(Actor{Team: TeamRed})
	if old.index != fresh.index {
		t.Fatalf("expected slot reuse, got %v and %v", old, fresh)
	}
	if _, ok := s.Get(old); ok {
		t.Fatal("stale handle must not resolve to the new occupant")
	}
	if a, ok := s.Get(fresh); !ok || a.Team != TeamRed {
		t.Fatal("fresh handle should resolve")
	}
	if ActorIDFromUint64(fresh.Uint64()) != fresh {
		t.Fatal("packed handle should round trip")
	}
}

func TestStore_MustGetPanicsOnStale(t *testing.T) {
	s := NewStore()
	id := s.Insert(Actor{})
	s.Remove(id)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	s.MustGet(id)
}

func TestStore_QueriesAndOrder(t *testing.T) {
	s := NewStore()
	b1 := s.Insert(Actor{Team: TeamBlue, Pos: grid.Pos{X: 0, Y: 0}})
	r1 := s.Insert(Actor{Team: TeamRed, Pos: grid.Pos{X: 1, Y: 0}})
	b2 := s.Insert(Actor{Team: TeamBlue, Pos: grid.Pos{X: 2, Y: 0}})

	ids := s.IDs(TeamBlue)
	if len(ids) != 2 || ids[0] != b1 || ids[1] != b2 {
		t.Fatalf("blue ids = %v", ids)
	}
	if id, ok := s.AtPos(grid.Pos{X: 1, Y: 0}); !ok || id != r1 {
		t.Fatalf("AtPos = %v,%v want %v", id, ok, r1)
	}
	if _, ok := s.AtPos(grid.Pos{X: 5, Y: 5}); ok {
		t.Fatal("empty cell should report no actor")
	}
	foes := s.Positions(func(a *Actor) bool { return a.Team.IsFoe(TeamBlue) })
	if len(foes) != 1 || foes[0] != (grid.Pos{X: 1, Y: 0}) {
		t.Fatalf("foe positions = %v", foes)
	}

	for _, a := range s.All() {
		a.HasMoved = true
	}
	s.ResetMoved()
	for id, a := range s.All() {
		if a.HasMoved {
			t.Fatalf("%v still marked moved", id)
		}
	}
}

func TestTeam_UnmarshalText(t *testing.T) {
	var team Team
	if err := team.UnmarshalText([]byte("Red")); err != nil || team != TeamRed {
		t.Fatalf("got %v err=%v", team, err)
	}
	if err := team.UnmarshalText([]byte("green")); err == nil {
		t.Fatal("expected error for unknown team")
	}
	var u UnitType
	if err := u.UnmarshalText([]byte("tank")); err != nil || u != UnitTank {
		t.Fatalf("got %v err=%v", u, err)
	}
	if TeamBlue.Opponent() != TeamRed || !TeamBlue.IsFoe(TeamRed) || TeamRed.IsFoe(TeamRed) {
		t.Fatal("team predicates wrong")
	}
}
