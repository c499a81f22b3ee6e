package turn

import (
	"log/slog"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/systems"
)

func (s *State) handleInput(in Input) {
	ui := &s.UI

	if in.Release && ui.MoveState == MoveNone {
		ui.Selected = core.ActorID{}
		for id, a := range s.Actors.ByTeam(core.PlayerTeam) {
			if a.Pos == in.Cursor && !a.HasMoved {
				ui.Selected = id
			}
		}
		ui.Plan = nil
	}

	if in.EndPhase && ui.MoveState == MoveNone {
		s.EndPlayerPhase()
		return
	}

	ui.ShowCursor = false
	if !ui.Selected.Valid() {
		ui.Cursor, ui.ShowCursor = in.Cursor, true
		return
	}
	id := ui.Selected
	actor, ok := s.Actors.Get(id)
	if !ok {
		s.deselect()
		return
	}

	switch ui.MoveState {
	case MoveNone:
		plan := s.Board().PlanToward(id, in.Cursor)
		ui.Plan = &plan
		s.drawMoveRange(plan.MoveRange)
		s.drawMovePath(plan.Path)
		if ui.ShowField {
			s.drawField(plan.Field)
		}
		ui.Cursor, ui.ShowCursor = in.Cursor, true

		switch {
		case in.Press && len(plan.Path) > 0:
			ui.MoveState = MoveMoving
			ui.Plan = nil
			s.Loop.Tasks.Queue(s.moves.MoveAlong(id, plan.Path, func() {
				s.UI.MoveState = MoveConfirm
			}))
		case in.Confirm:
			ui.MoveState = MoveConfirm
			ui.Plan = nil
		}

	case MoveConfirm:
		enemies := systems.EnemiesInRange(s.Actors, id)
		s.drawConfirmMenu(actor, len(enemies) > 0)
		switch {
		case in.Wait:
			actor.HasMoved = true
			s.Loop.Events.Emit(core.Event{
				Type:    core.EvtUnitWaited,
				Payload: core.UnitWaited{Actor: id, Team: actor.Team, At: actor.Pos},
			})
			s.deselect()
		case in.Attack && len(enemies) > 0:
			ui.MoveState = MoveChooseAttack
			ui.ChosenEnemy = 0
			ui.Cursor, ui.ShowCursor = enemies[0].Pos, true
		}

	case MoveChooseAttack:
		enemies := systems.EnemiesInRange(s.Actors, id)
		if len(enemies) == 0 {
			ui.MoveState = MoveConfirm
			return
		}
		chosen := ui.ChosenEnemy % len(enemies)
		switch {
		case in.Cancel:
			s.deselect()
			return
		case in.Attack:
			chosen = (chosen + 1) % len(enemies)
			ui.ChosenEnemy = chosen
			slog.Debug("switch attack target", "index", chosen, "of", len(enemies))
		case in.Confirm:
			target := enemies[chosen]
			ui.MoveState = MoveAttacking
			ui.ChosenEnemy = 0
			s.Loop.Tasks.Queue(core.Sequence(
				s.combat.Attack(id, target),
				core.Do(func() {
					if a, ok := s.Actors.Get(id); ok {
						a.HasMoved = true
					}
					s.deselect()
				}),
			))
		}
		ui.Cursor, ui.ShowCursor = enemies[chosen].Pos, true
	}
}

// EndPlayerPhase hands the turn to the enemy and queues its sequence
func (s *State) EndPlayerPhase() {
	if s.Phase != PlayerPhase {
		return
	}
	s.deselect()
	s.UI.ShowCursor = false
	s.setPhase(EnemyPhase)
	s.Loop.Tasks.Queue(s.enemyPhase())
}
