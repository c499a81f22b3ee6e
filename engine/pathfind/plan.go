package pathfind

import (
	"log/slog"

	"github.com/1siamBot/tactics-engine/engine/config"
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
)

// Board is everything move planning reads
type Board struct {
	Terrain Terrain
	Actors  *core.Store
	Rules   config.Rules
}

// Plan is the outcome of planning one unit's move
type Plan struct {
	Mover     core.ActorID
	Start     grid.Pos
	MoveRange *grid.Grid[int] // 1 where the unit can reach, else 0
	Field     *grid.Grid[int] // field the path was climbed on
	Target    grid.Pos        // best reachable cell
	Path      []grid.Pos      // starts at Start, empty when nothing is reachable
}

// Destination returns the last path cell, or Start for an empty path
func (p Plan) Destination() grid.Pos {
	if len(p.Path) == 0 {
		return p.Start
	}
	return p.Path[len(p.Path)-1]
}

// MoveRange returns the 0/1 mask of cells team can reach from start
func (b Board) MoveRange(start grid.Pos, cost CostFunc) *grid.Grid[int] {
	r := Reach(b.Terrain.Width(), b.Terrain.Height(), start, b.Rules.MoveBudget, cost)
	grid.ClampValues(r, 0, 1)
	return r
}

// reachableMax returns the first highest field cell inside moveRange
func reachableMax(field, moveRange *grid.Grid[int]) (grid.Pos, bool) {
	return grid.MaxPos(field, func(p grid.Pos) bool { return moveRange.At(p) > 0 })
}

// blockFoes marks every cell held by a foe of team so paths cannot cross it
func (b Board) blockFoes(field *grid.Grid[int], team core.Team) {
	for _, a := range b.Actors.All() {
		if a.Team.IsFoe(team) && field.Contains(a.Pos) {
			field.SetAt(a.Pos, b.Rules.BlockSentinel)
		}
	}
}

// PlanToward plans a player move toward the cursor cell. Allies can be
// passed through but never stopped on; foes are never entered.
func (b Board) PlanToward(mover core.ActorID, cursor grid.Pos) Plan {
	actor := b.Actors.MustGet(mover)
	team, start := actor.Team, actor.Pos
	w, h := b.Terrain.Width(), b.Terrain.Height()
	cost := MovementCost(b.Terrain, b.Actors, team, b.Rules)

	moveRange := b.MoveRange(start, cost)

	field, seeds := SeedField(w, h, []grid.Pos{cursor}, b.Rules.CursorSeed)
	Relax(field, seeds, cost)
	grid.Mul(field, moveRange)

	// occupied cells may be crossed but never end a path: push them down and
	// let the second pass raise them to just below their best neighbor
	var work []grid.Pos
	for _, a := range b.Actors.All() {
		field.SetAt(a.Pos, b.Rules.BlockSentinel)
		work = append(work, a.Pos)
	}
	target, ok := reachableMax(field, moveRange)
	if !ok {
		target = start
	}
	work = append(work, field.Neighbors(target)...)
	RelaxFrom(field, work, cost)
	grid.Mul(field, moveRange)

	b.blockFoes(field, team)

	return Plan{
		Mover:     mover,
		Start:     start,
		MoveRange: moveRange,
		Field:     field,
		Target:    target,
		Path:      ClimbPath(field, start),
	}
}

// PlanAI plans a scripted move toward the nearest reachable cell from which
// foes can be approached. The unit stays put when its own cell is as good as
// any other.
func (b Board) PlanAI(mover core.ActorID) Plan {
	actor := b.Actors.MustGet(mover)
	team, start := actor.Team, actor.Pos
	w, h := b.Terrain.Width(), b.Terrain.Height()
	cost := MovementCost(b.Terrain, b.Actors, team, b.Rules)

	moveRange := b.MoveRange(start, cost)

	foes := b.Actors.Positions(func(a *core.Actor) bool { return a.Team.IsFoe(team) })
	goal, seeds := SeedField(w, h, foes, b.Rules.AISeed)
	Relax(goal, seeds, cost)
	grid.Mul(goal, moveRange)

	for id, a := range b.Actors.All() {
		if id != mover {
			goal.SetAt(a.Pos, b.Rules.BlockSentinel)
		}
	}
	target, ok := reachableMax(goal, moveRange)
	// ties with the current cell resolve to staying, otherwise the choice
	// would depend on grid iteration order
	if !ok || goal.At(target) == goal.At(start) {
		target = start
	}

	field, seeds := SeedField(w, h, []grid.Pos{target}, b.Rules.AISeed)
	Relax(field, seeds, cost)
	grid.Mul(field, moveRange)
	b.blockFoes(field, team)

	path := ClimbPath(field, start)
	slog.Debug("ai plan", "actor", mover, "start", start, "target", target, "steps", len(path))
	return Plan{
		Mover:     mover,
		Start:     start,
		MoveRange: moveRange,
		Field:     field,
		Target:    target,
		Path:      path,
	}
}
