// Package turn runs the tactics game frame by frame: the player's selection
// and move-order state machine, the scripted enemy phase and the per-frame
// draw commands.
package turn

import (
	"fmt"
	"log/slog"

	"github.com/1siamBot/tactics-engine/engine/ai"
	"github.com/1siamBot/tactics-engine/engine/config"
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/debug"
	"github.com/1siamBot/tactics-engine/engine/draw"
	"github.com/1siamBot/tactics-engine/engine/grid"
	"github.com/1siamBot/tactics-engine/engine/maplib"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
	"github.com/1siamBot/tactics-engine/engine/systems"
)

// Phase is whose turn it is
type Phase uint8

const (
	PlayerPhase Phase = iota
	EnemyPhase
)

func (p Phase) String() string {
	if p == EnemyPhase {
		return "enemy"
	}
	return "player"
}

// MoveState is where the selected unit is in its move order
type MoveState uint8

const (
	MoveNone MoveState = iota
	MoveMoving
	MoveConfirm
	MoveChooseAttack
	MoveAttacking
)

var moveStateNames = [...]string{
	MoveNone:         "None",
	MoveMoving:       "Moving",
	MoveConfirm:      "Confirm",
	MoveChooseAttack: "ChooseAttack",
	MoveAttacking:    "Attacking",
}

func (m MoveState) String() string {
	if int(m) < len(moveStateNames) {
		return moveStateNames[m]
	}
	return fmt.Sprintf("MoveState(%d)", uint8(m))
}

// AIView is what the enemy phase shows while a unit acts
type AIView struct {
	Unit       core.ActorID
	Plan       pathfind.Plan
	Highlight  bool // draw move range and path
	Cursor     grid.Pos
	ShowCursor bool
}

// UI is the player-facing selection state
type UI struct {
	Selected    core.ActorID // zero when nothing is selected
	MoveState   MoveState
	ChosenEnemy int
	Plan        *pathfind.Plan // plan toward the cursor, nil unless MoveNone with a selection
	Cursor      grid.Pos
	ShowCursor  bool
	ShowField   bool // potential field overlay of the player's plan
	ShowAIField bool // potential field overlay of the acting AI unit
	AI          *AIView
}

// State is the whole running game
type State struct {
	Level  *maplib.Level
	Actors *core.Store
	Rules  config.Rules
	Loop   *core.GameLoop
	Phase  Phase
	UI     UI
	Draw   draw.Buffer
	Debug  *debug.Log

	moves  *systems.MovementSystem
	combat *systems.CombatSystem
	ai     *ai.Controller
}

// New spawns the level's units and wires the systems. tickRate is the
// expected frame rate.
func New(level *maplib.Level, rules config.Rules, tickRate float64) (*State, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		Level:  level,
		Actors: core.NewStore(),
		Rules:  rules,
		Loop:   core.NewGameLoop(tickRate),
		Debug:  debug.NewLog(),
	}
	if _, err := level.Spawn(s.Actors, rules.GridSize); err != nil {
		return nil, fmt.Errorf("spawn %q: %w", level.Name, err)
	}
	s.moves = &systems.MovementSystem{Actors: s.Actors, EventBus: s.Loop.Events, Rules: rules}
	s.combat = &systems.CombatSystem{Actors: s.Actors, EventBus: s.Loop.Events, Rules: rules}

	ctl, err := ai.NewController(core.EnemyTeam, s.Board())
	if err != nil {
		return nil, err
	}
	s.ai = ctl
	s.Loop.Events.OnAny(s.recordEvent)
	return s, nil
}

// Board is the planning view of the current state
func (s *State) Board() pathfind.Board {
	return pathfind.Board{Terrain: s.Level, Actors: s.Actors, Rules: s.Rules}
}

// Busy reports whether an animation or the enemy phase is running
func (s *State) Busy() bool { return s.Loop.Tasks.Busy() }

// Update runs one frame: one step of the task queue, then input handling
// and drawing. Events raised during the frame are dispatched at its end.
func (s *State) Update(in Input, dt float64) {
	s.Loop.Advance(dt)
	s.Draw.Reset()
	s.Debug.Drain()

	s.drawTiles()
	if s.Phase == PlayerPhase {
		s.handleInput(in)
	}
	s.handleDebugInput(in)
	s.drawAIView()
	s.drawActors()
	if s.UI.ShowCursor {
		s.drawCursor(s.UI.Cursor)
	}
	s.Debug.Printf("draw calls buffered: %d", s.Draw.Len())

	s.Loop.EndFrame()
}

func (s *State) setPhase(p Phase) {
	s.Phase = p
	acting := core.PlayerTeam
	if p == EnemyPhase {
		acting = core.EnemyTeam
	}
	slog.Info("phase changed", "phase", p, "acting", acting)
	s.Loop.Events.Emit(core.Event{Type: core.EvtPhaseChanged, Payload: core.PhaseChanged{Acting: acting}})
}

func (s *State) deselect() {
	s.UI.Selected = core.ActorID{}
	s.UI.MoveState = MoveNone
	s.UI.ChosenEnemy = 0
	s.UI.Plan = nil
}

func (s *State) recordEvent(e core.Event) {
	switch p := e.Payload.(type) {
	case core.UnitMoved:
		s.Debug.Add(e.Tick, "move", "%s %v -> %v", p.Team, p.From, p.To)
	case core.UnitWaited:
		s.Debug.Add(e.Tick, "wait", "%s waits at %v", p.Team, p.At)
	case core.UnitAttack:
		s.Debug.Add(e.Tick, "attack", "%s attacks %v", p.Team, p.TargetPos)
	case core.UnitDamaged:
		s.Debug.Add(e.Tick, "damage", "%v hp=%d", p.Actor, p.HP)
	case core.UnitDestroyed:
		s.Debug.Add(e.Tick, "destroy", "%s unit lost at %v", p.Team, p.At)
	case core.PhaseChanged:
		s.Debug.Add(e.Tick, "phase", "%s acts", p.Acting)
	}
}
