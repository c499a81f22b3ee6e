// Package replay records the commands committed during a game in a compact
// binary log and reads them back.
package replay

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
)

// CmdType identifies a committed command
type CmdType uint8

const (
	CmdMove CmdType = iota
	CmdWait
	CmdAttack
	CmdEndPhase
)

var cmdNames = [...]string{
	CmdMove:     "move",
	CmdWait:     "wait",
	CmdAttack:   "attack",
	CmdEndPhase: "end_phase",
}

func (t CmdType) String() string {
	if int(t) < len(cmdNames) {
		return cmdNames[t]
	}
	return fmt.Sprintf("cmd(%d)", uint8(t))
}

// Command is one committed order. Actor is the acting unit's handle packed
// with core.ActorID.Uint64; the target cell is the move destination, the
// waiting cell or the attacked cell.
type Command struct {
	Tick    uint64
	Team    core.Team
	Type    CmdType
	Actor   uint64
	TargetX int32
	TargetY int32
}

// Target returns the command's cell
func (c Command) Target() grid.Pos {
	return grid.Pos{X: int(c.TargetX), Y: int(c.TargetY)}
}

func (c Command) String() string {
	return fmt.Sprintf("T=%d %s %s %v", c.Tick, c.Team, c.Type, c.Target())
}

// wire is the fixed-size on-disk record
type wire struct {
	Tick    uint64
	Actor   uint64
	TargetX int32
	TargetY int32
	Team    uint8
	Type    uint8
}

// Encode writes the command in little-endian binary
func (c *Command) Encode(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, wire{
		Tick:    c.Tick,
		Actor:   c.Actor,
		TargetX: c.TargetX,
		TargetY: c.TargetY,
		Team:    uint8(c.Team),
		Type:    uint8(c.Type),
	})
}

// Decode reads one command. It returns io.EOF only when r is exhausted
// before the record starts.
func (c *Command) Decode(r io.Reader) error {
	var rec wire
	if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
		return err
	}
	if rec.Type > uint8(CmdEndPhase) {
		return fmt.Errorf("unknown command type %d", rec.Type)
	}
	*c = Command{
		Tick:    rec.Tick,
		Team:    core.Team(rec.Team),
		Type:    CmdType(rec.Type),
		Actor:   rec.Actor,
		TargetX: rec.TargetX,
		TargetY: rec.TargetY,
	}
	return nil
}

// FromEvent converts a committed-order event into a command. Animation
// and damage events are not commands.
func FromEvent(e core.Event) (Command, bool) {
	c := Command{Tick: e.Tick}
	var at grid.Pos
	switch p := e.Payload.(type) {
	case core.UnitMoved:
		c.Type, c.Team, c.Actor, at = CmdMove, p.Team, p.Actor.Uint64(), p.To
	case core.UnitWaited:
		c.Type, c.Team, c.Actor, at = CmdWait, p.Team, p.Actor.Uint64(), p.At
	case core.UnitAttack:
		c.Type, c.Team, c.Actor, at = CmdAttack, p.Team, p.Attacker.Uint64(), p.TargetPos
	case core.PhaseChanged:
		// the team that just finished ends its phase
		c.Type, c.Team = CmdEndPhase, p.Acting.Opponent()
	default:
		return Command{}, false
	}
	c.TargetX, c.TargetY = int32(at.X), int32(at.Y)
	return c, true
}
