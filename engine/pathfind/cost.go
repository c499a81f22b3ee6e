package pathfind

import (
	"github.com/1siamBot/tactics-engine/engine/config"
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
	"github.com/1siamBot/tactics-engine/engine/maplib"
)

// Terrain is the static board the cost function reads
type Terrain interface {
	Width() int
	Height() int
	GroundAt(p grid.Pos) maplib.GroundType
	TerrainAt(p grid.Pos) maplib.TerrainType
}

// CostFunc maps a cell to the cost of entering it
type CostFunc func(p grid.Pos) int

// MovementCost builds the cost function of team. Cells held by a foe are
// impassable, then water, then the terrain overlay decides. Foe positions
// are captured now; later moves do not affect the returned function.
func MovementCost(t Terrain, actors *core.Store, team core.Team, rules config.Rules) CostFunc {
	blocked := make(map[grid.Pos]struct{})
	for _, a := range actors.All() {
		if a.Team.IsFoe(team) {
			blocked[a.Pos] = struct{}{}
		}
	}
	return costFunc(t, blocked, rules)
}

func costFunc(t Terrain, blocked map[grid.Pos]struct{}, rules config.Rules) CostFunc {
	impassable := rules.ImpassableCost
	tc := rules.TerrainCost
	return func(p grid.Pos) int {
		if _, ok := blocked[p]; ok {
			return impassable
		}
		if t.GroundAt(p) == maplib.GroundWater {
			return impassable
		}
		switch t.TerrainAt(p) {
		case maplib.TerrainStreet:
			return tc.Street
		case maplib.TerrainForest:
			return tc.Forest
		default:
			return tc.None
		}
	}
}

// Uniform returns a cost function with the same cost everywhere
func Uniform(cost int) CostFunc {
	return func(grid.Pos) int { return cost }
}
