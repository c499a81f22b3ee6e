package core

import (
	"fmt"

	"github.com/1siamBot/tactics-engine/engine/grid"
)

// HPMax is the hit points of a fresh unit
const HPMax = 10

// Vec2 is a continuous world position in pixels
type Vec2 struct {
	X, Y float64
}

// Lerp moves t of the way from v to o
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// CellToWorld returns the top-left pixel of cell p
func CellToWorld(p grid.Pos, gridSize int) Vec2 {
	return Vec2{float64(p.X * gridSize), float64(p.Y * gridSize)}
}

// Actor is one unit on the board.
// Pos is the logical cell; DrawPos only follows it for animation.
type Actor struct {
	Pos      grid.Pos
	DrawPos  Vec2
	Sprite   string
	Team     Team
	Unit     UnitType
	HP       int
	HasMoved bool
}

// NewActor creates a full-health actor drawn at its cell
func NewActor(pos grid.Pos, team Team, unit UnitType, sprite string, gridSize int) Actor {
	return Actor{
		Pos:     pos,
		DrawPos: CellToWorld(pos, gridSize),
		Sprite:  sprite,
		Team:    team,
		Unit:    unit,
		HP:      HPMax,
	}
}

func (a *Actor) String() string {
	return fmt.Sprintf("%s %s at %v hp=%d moved=%t", a.Team, a.Unit, a.Pos, a.HP, a.HasMoved)
}
