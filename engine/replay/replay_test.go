package replay

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
)

func TestRecorder_ListensToCommittedOrders(t *testing.T) {
	store := core.NewStore()
	id := store.Insert(core.NewActor(grid.Pos{}, core.TeamBlue, core.UnitInfantry, "u", 16))

	var buf bytes.Buffer
	rec, err := NewRecorder(&buf)
	if err != nil {
		t.Fatal(err)
	}
	bus := core.NewEventBus()
	rec.Listen(bus)

	bus.Emit(core.Event{Tick: 3, Type: core.EvtUnitMoved, Payload: core.UnitMoved{Actor: id, Team: core.TeamBlue, To: grid.Pos{X: 4, Y: 1}}})
	bus.Emit(core.Event{Tick: 3, Type: core.EvtUnitDamaged, Payload: core.UnitDamaged{Actor: id, HP: 9}})
	bus.Emit(core.Event{Tick: 7, Type: core.EvtUnitAttack, Payload: core.UnitAttack{Attacker: id, Team: core.TeamBlue, TargetPos: grid.Pos{X: 5, Y: 1}}})
	bus.Emit(core.Event{Tick: 9, Type: core.EvtPhaseChanged, Payload: core.PhaseChanged{Acting: core.TeamRed}})
	bus.Dispatch()
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	cmds, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3: %v", len(cmds), cmds)
	}
	if cmds[0].Type != CmdMove || cmds[0].Target() != (grid.Pos{X: 4, Y: 1}) || core.ActorIDFromUint64(cmds[0].Actor) != id {
		t.Fatalf("move = %+v", cmds[0])
	}
	if cmds[1].Type != CmdAttack || cmds[1].Target() != (grid.Pos{X: 5, Y: 1}) {
		t.Fatalf("attack = %+v", cmds[1])
	}
	if cmds[2].Type != CmdEndPhase || cmds[2].Team != core.TeamBlue {
		t.Fatalf("end phase = %+v, want blue ending its phase", cmds[2])
	}
	if got := ForTick(cmds, 3); len(got) != 1 {
		t.Fatalf("tick 3 has %d commands", len(got))
	}
}

func TestRead_Errors(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("nope"))); !errors.Is(err, ErrBadHeader) {
		t.Fatalf("err = %v, want ErrBadHeader", err)
	}

	var buf bytes.Buffer
	rec, _ := NewRecorder(&buf)
	rec.Record(Command{Tick: 1, Type: CmdWait})
	rec.Record(Command{Tick: 2, Type: CmdWait})
	rec.Close()
	data := buf.Bytes()

	cmds, err := Read(bytes.NewReader(data[:len(data)-3]))
	if !errors.Is(err, io.ErrUnexpectedEOF) || len(cmds) != 1 {
		t.Fatalf("truncated log: cmds=%d err=%v", len(cmds), err)
	}
}

func TestCreateAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.replay")
	rec, err := Create(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Command{Tick: 42, Team: core.TeamRed, Type: CmdMove, Actor: 7, TargetX: -1, TargetY: 12}
	if err := rec.Record(want); err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	cmds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 1 || cmds[0] != want {
		t.Fatalf("loaded %+v, want %+v", cmds, want)
	}
}
