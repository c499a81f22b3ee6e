package systems

import (
	"log/slog"

	"github.com/1siamBot/tactics-engine/engine/config"
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
)

// Target is an enemy next to an attacker
type Target struct {
	ID  core.ActorID
	Pos grid.Pos
}

// EnemiesInRange returns every foe of id standing on one of its four
// neighbor cells, in grid.NeighborOrder
func EnemiesInRange(store *core.Store, id core.ActorID) []Target {
	me, ok := store.Get(id)
	if !ok {
		return nil
	}
	var out []Target
	for _, d := range grid.NeighborOrder {
		p := me.Pos.Add(d)
		other, ok := store.AtPos(p)
		if !ok {
			continue
		}
		if store.MustGet(other).Team.IsFoe(me.Team) {
			out = append(out, Target{ID: other, Pos: p})
		}
	}
	return out
}

// CombatSystem resolves attacks as scheduler tasks
type CombatSystem struct {
	Actors   *core.Store
	EventBus *core.EventBus
	Rules    config.Rules
}

// Attack lunges the attacker toward the target cell and back, then deals
// Rules.AttackDamage one point at a time. The defender is removed as soon
// as its hp reaches zero. Defenders do not strike back.
func (s *CombatSystem) Attack(attacker core.ActorID, target Target) core.Task {
	return core.Sequence(
		core.Do(func() {
			a, ok := s.Actors.Get(attacker)
			if !ok {
				return
			}
			slog.Debug("attack", "attacker", attacker, "target", target.ID, "at", target.Pos)
			s.emit(core.EvtUnitAttack, core.UnitAttack{
				Attacker:  attacker,
				Target:    target.ID,
				Team:      a.Team,
				TargetPos: target.Pos,
			})
		}),
		Lunge(s.Actors, attacker, core.CellToWorld(target.Pos, s.Rules.GridSize), s.Rules.AttackSpeed),
		s.damage(target.ID, s.Rules.AttackDamage),
	)
}

// damage removes hp one point per step with Rules.DamageTickWait frames
// between points
func (s *CombatSystem) damage(id core.ActorID, amount int) core.Task {
	dealt, wait := 0, 0
	return core.TaskFunc(func(float64) core.Status {
		if wait > 0 {
			wait--
			return core.Yield
		}
		if dealt >= amount {
			return core.Done
		}
		t, ok := s.Actors.Get(id)
		if !ok {
			return core.Done
		}
		t.HP--
		dealt++
		s.emit(core.EvtUnitDamaged, core.UnitDamaged{Actor: id, HP: t.HP})
		if t.HP <= 0 {
			ApplyDestroy(s.Actors, id, s.EventBus)
			return core.Done
		}
		wait = s.Rules.DamageTickWait - 1
		return core.Yield
	})
}

func (s *CombatSystem) emit(t core.EventType, payload any) {
	if s.EventBus != nil {
		s.EventBus.Emit(core.Event{Type: t, Payload: payload})
	}
}

// ApplyDestroy removes an actor and announces it
func ApplyDestroy(store *core.Store, id core.ActorID, bus *core.EventBus) {
	a, ok := store.Get(id)
	if !ok {
		return
	}
	team, at := a.Team, a.Pos
	store.Remove(id)
	slog.Info("unit destroyed", "actor", id, "team", team, "at", at)
	if bus != nil {
		bus.Emit(core.Event{Type: core.EvtUnitDestroyed, Payload: core.UnitDestroyed{Actor: id, Team: team, At: at}})
	}
}
