package turn

import (
	"log/slog"

	"github.com/1siamBot/tactics-engine/engine/core"
)

// enemyPhase moves every enemy unit in turn, then gives control back to
// the player. Units are listed when the phase starts; each one plans only
// when its own turn comes so it sees the moves made before it.
func (s *State) enemyPhase() core.Task {
	return core.Sequence(
		core.Do(s.Actors.ResetMoved),
		core.Defer(func() core.Task {
			return core.Each(s.ai.Units(), s.aiTurn)
		}),
		core.Do(func() {
			s.UI.AI = nil
			s.setPhase(PlayerPhase)
			s.Actors.ResetMoved()
		}),
	)
}

// aiTurn is one enemy unit's full order: show the plan, walk, look for a
// target, attack, done
func (s *State) aiTurn(id core.ActorID) core.Task {
	if !s.Actors.Contains(id) {
		return nil
	}
	plan := s.ai.Plan(id)
	view := &AIView{Unit: id, Plan: plan, Highlight: true, Cursor: plan.Start, ShowCursor: true}
	slog.Debug("enemy unit acts", "actor", id, "from", plan.Start, "to", plan.Destination())

	var walk core.Task = core.Do(func() {})
	if len(plan.Path) > 0 {
		walk = s.moves.MoveAlong(id, plan.Path, nil)
	}
	return core.Sequence(
		core.Do(func() { s.UI.AI = view }),
		core.Wait(s.Rules.AIHighlightTicks),
		core.Do(func() { view.Highlight, view.ShowCursor = false, false }),
		walk,
		core.Wait(s.Rules.AIPauseTicks),
		core.Ticks(s.Rules.AITargetTicks, func(int) {
			if t, ok := s.ai.ChooseTarget(id); ok {
				view.Cursor, view.ShowCursor = t.Pos, true
			}
		}),
		core.Defer(func() core.Task {
			t, ok := s.ai.ChooseTarget(id)
			if !ok {
				return nil
			}
			return s.combat.Attack(id, t)
		}),
		core.Do(func() {
			if a, ok := s.Actors.Get(id); ok {
				a.HasMoved = true
			}
			s.UI.AI = nil
		}),
	)
}
