package pathfind

import (
	"testing"

	"github.com/1siamBot/tactics-engine/engine/config"
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
	"github.com/1siamBot/tactics-engine/engine/maplib"
)

func costLevel() *maplib.Level {
	l := maplib.NewLevel("cost", 5, 2)
	l.SetGround(4, 0, 4, 1, maplib.GroundWater)
	l.SetTerrain(1, 0, 1, 1, maplib.TerrainStreet)
	l.SetTerrain(2, 0, 2, 1, maplib.TerrainForest)
	// street laid over water is still water
	l.SetTerrain(4, 1, 4, 1, maplib.TerrainStreet)
	return l
}

func TestMovementCost_TerrainAndWater(t *testing.T) {
	rules := config.Default()
	cost := MovementCost(costLevel(), core.NewStore(), core.TeamBlue, rules)

	cases := []struct {
		p    grid.Pos
		want int
	}{
		{grid.Pos{X: 0, Y: 0}, 2},
		{grid.Pos{X: 1, Y: 0}, 1},
		{grid.Pos{X: 2, Y: 1}, 3},
		{grid.Pos{X: 4, Y: 0}, rules.ImpassableCost},
		{grid.Pos{X: 4, Y: 1}, rules.ImpassableCost},
	}
	for _, c := range cases {
		if got := cost(c.p); got != c.want {
			t.Fatalf("cost(%v) = %d, want %d", c.p, got, c.want)
		}
	}
}

func TestMovementCost_FoesBlockAlliesDoNot(t *testing.T) {
	rules := config.Default()
	store := core.NewStore()
	store.Insert(core.NewActor(grid.Pos{X: 0, Y: 0}, core.TeamRed, core.UnitTank, "red_tank", rules.GridSize))
	store.Insert(core.NewActor(grid.Pos{X: 1, Y: 1}, core.TeamBlue, core.UnitInfantry, "blue_infantry", rules.GridSize))

	blue := MovementCost(costLevel(), store, core.TeamBlue, rules)
	if got := blue(grid.Pos{X: 0, Y: 0}); got < rules.ImpassableCost {
		t.Fatalf("foe cell cost = %d, want >= %d", got, rules.ImpassableCost)
	}
	if got := blue(grid.Pos{X: 1, Y: 1}); got != 1 {
		t.Fatalf("ally on street should cost 1, got %d", got)
	}

	red := MovementCost(costLevel(), store, core.TeamRed, rules)
	if got := red(grid.Pos{X: 0, Y: 0}); got != 2 {
		t.Fatalf("own cell should cost the terrain, got %d", got)
	}
	if got := red(grid.Pos{X: 1, Y: 1}); got < rules.ImpassableCost {
		t.Fatalf("blue cell should block red, got %d", got)
	}
}

func TestMovementCost_SnapshotsFoePositions(t *testing.T) {
	rules := config.Default()
	store := core.NewStore()
	id := store.Insert(core.NewActor(grid.Pos{X: 0, Y: 0}, core.TeamRed, core.UnitTank, "red_tank", rules.GridSize))

	cost := MovementCost(costLevel(), store, core.TeamBlue, rules)
	store.MustGet(id).Pos = grid.Pos{X: 0, Y: 1}

	if got := cost(grid.Pos{X: 0, Y: 0}); got < rules.ImpassableCost {
		t.Fatalf("old foe cell should stay blocked, got %d", got)
	}
	if got := cost(grid.Pos{X: 0, Y: 1}); got != 2 {
		t.Fatalf("new foe cell should not be blocked yet, got %d", got)
	}
}

func TestMovementCost_OffBoardUsesNearestCell(t *testing.T) {
	rules := config.Default()
	cost := MovementCost(costLevel(), core.NewStore(), core.TeamBlue, rules)
	if got := cost(grid.Pos{X: 9, Y: 0}); got != rules.ImpassableCost {
		t.Fatalf("off-board east should clamp to water, got %d", got)
	}
}
