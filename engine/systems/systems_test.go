package systems

import (
	"testing"

	"github.com/1siamBot/tactics-engine/engine/config"
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
)

const dt = 1.0 / 60

func spawn(store *core.Store, team core.Team, x, y int) core.ActorID {
	return store.Insert(core.NewActor(grid.Pos{X: x, Y: y}, team, core.UnitInfantry, "unit", config.Default().GridSize))
}

// runTask steps t until it finishes and returns the number of steps taken
func runTask(t *testing.T, task core.Task, onStep func()) int {
	t.Helper()
	for i := 1; i <= 10000; i++ {
		if task.Step(dt) == core.Done {
			return i
		}
		if onStep != nil {
			onStep()
		}
	}
	t.Fatal("task never finished")
	return 0
}

func TestEnemiesInRange(t *testing.T) {
	store := core.NewStore()
	me := spawn(store, core.TeamBlue, 2, 2)
	up := spawn(store, core.TeamRed, 2, 1)
	left := spawn(store, core.TeamRed, 1, 2)
	spawn(store, core.TeamBlue, 3, 2) // ally
	spawn(store, core.TeamRed, 3, 3)  // diagonal

	got := EnemiesInRange(store, me)
	if len(got) != 2 {
		t.Fatalf("got %d targets, want 2: %v", len(got), got)
	}
	if got[0].ID != left || got[0].Pos != (grid.Pos{X: 1, Y: 2}) {
		t.Fatalf("first target = %+v, want the left neighbor", got[0])
	}
	if got[1].ID != up {
		t.Fatalf("second target = %+v, want the upper neighbor", got[1])
	}
}

func TestEnemiesInRange_NoneAround(t *testing.T) {
	store := core.NewStore()
	me := spawn(store, core.TeamBlue, 0, 0)
	spawn(store, core.TeamRed, 5, 5)
	if got := EnemiesInRange(store, me); len(got) != 0 {
		t.Fatalf("expected no targets, got %v", got)
	}
	if got := EnemiesInRange(store, core.ActorID{}); got != nil {
		t.Fatalf("invalid id should give nil, got %v", got)
	}
}

func TestMoveAlong_SnapsAtTheEnd(t *testing.T) {
	rules := config.Default()
	store := core.NewStore()
	bus := core.NewEventBus()
	id := spawn(store, core.TeamBlue, 0, 0)
	sys := &MovementSystem{Actors: store, EventBus: bus, Rules: rules}

	path := []grid.Pos{{0, 0}, {1, 0}, {2, 0}, {2, 1}}
	arrived := false
	task := sys.MoveAlong(id, path, func() { arrived = true })
	runTask(t, task, func() {
		if a := store.MustGet(id); a.Pos != (grid.Pos{}) {
			t.Fatalf("logical cell changed mid-walk to %v", a.Pos)
		}
	})

	a := store.MustGet(id)
	if a.Pos != (grid.Pos{X: 2, Y: 1}) {
		t.Fatalf("pos = %v, want (2,1)", a.Pos)
	}
	if a.DrawPos != core.CellToWorld(a.Pos, rules.GridSize) {
		t.Fatalf("draw pos = %v, want snapped to the cell", a.DrawPos)
	}
	if !arrived {
		t.Fatal("onArrive not called")
	}
	if bus.Pending() != 1 {
		t.Fatalf("expected one moved event, got %d", bus.Pending())
	}
}

func TestMoveAlong_ActorRemovedMidWalk(t *testing.T) {
	store := core.NewStore()
	id := spawn(store, core.TeamBlue, 0, 0)
	sys := &MovementSystem{Actors: store, Rules: config.Default()}
	task := sys.MoveAlong(id, []grid.Pos{{0, 0}, {1, 0}}, func() { t.Fatal("should not arrive") })
	task.Step(dt)
	store.Remove(id)
	if task.Step(dt) != core.Done {
		t.Fatal("task should end once its actor is gone")
	}
}

func TestLunge_ReturnsToStart(t *testing.T) {
	rules := config.Default()
	store := core.NewStore()
	id := spawn(store, core.TeamBlue, 1, 1)
	start := store.MustGet(id).DrawPos
	target := core.CellToWorld(grid.Pos{X: 2, Y: 1}, rules.GridSize)

	furthest := 0.0
	runTask(t, Lunge(store, id, target, rules.AttackSpeed), func() {
		furthest = max(furthest, store.MustGet(id).DrawPos.X-start.X)
	})
	if store.MustGet(id).DrawPos != start {
		t.Fatalf("draw pos = %v, want back at %v", store.MustGet(id).DrawPos, start)
	}
	half := float64(rules.GridSize) / 2
	if furthest <= 0 || furthest > half {
		t.Fatalf("lunge reached %v, want within (0, %v]", furthest, half)
	}
}

func TestAttack_DealsDamageOnePointAtATime(t *testing.T) {
	rules := config.Default()
	store := core.NewStore()
	bus := core.NewEventBus()
	attacker := spawn(store, core.TeamBlue, 0, 0)
	defender := spawn(store, core.TeamRed, 1, 0)
	sys := &CombatSystem{Actors: store, EventBus: bus, Rules: rules}

	var seen []int
	runTask(t, sys.Attack(attacker, Target{ID: defender, Pos: grid.Pos{X: 1, Y: 0}}), func() {
		hp := store.MustGet(defender).HP
		if len(seen) == 0 || seen[len(seen)-1] != hp {
			seen = append(seen, hp)
		}
	})

	if got := store.MustGet(defender).HP; got != core.HPMax-rules.AttackDamage {
		t.Fatalf("hp = %d, want %d", got, core.HPMax-rules.AttackDamage)
	}
	want := []int{10, 9, 8, 7, 6, 5}
	if len(seen) != len(want) {
		t.Fatalf("hp steps = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("hp steps = %v, want %v", seen, want)
		}
	}
	if store.MustGet(attacker).HP != core.HPMax {
		t.Fatal("defender must not strike back")
	}

	counts := map[core.EventType]int{}
	bus.OnAny(func(e core.Event) { counts[e.Type]++ })
	bus.Dispatch()
	if counts[core.EvtUnitAttack] != 1 || counts[core.EvtUnitDamaged] != 5 || counts[core.EvtUnitDestroyed] != 0 {
		t.Fatalf("unexpected events %v", counts)
	}
}

func TestAttack_RemovesDefenderAtZeroHP(t *testing.T) {
	rules := config.Default()
	store := core.NewStore()
	attacker := spawn(store, core.TeamBlue, 0, 0)
	defender := spawn(store, core.TeamRed, 0, 1)
	store.MustGet(defender).HP = 1
	sys := &CombatSystem{Actors: store, Rules: rules}

	hits := 0
	dmg := sys.damage(defender, rules.AttackDamage)
	for dmg.Step(dt) != core.Done {
		hits++
		if hits > rules.AttackDamage*rules.DamageTickWait {
			t.Fatal("damage never finished")
		}
	}
	if store.Contains(defender) {
		t.Fatal("defender with hp 1 should be removed")
	}
	if hits > rules.AttackDamage*rules.DamageTickWait {
		t.Fatalf("removal took %d steps", hits)
	}

	// a full attack against a removed defender is harmless
	runTask(t, sys.Attack(attacker, Target{ID: defender, Pos: grid.Pos{X: 0, Y: 1}}), nil)
	if store.Len() != 1 {
		t.Fatalf("store has %d actors, want 1", store.Len())
	}
}
