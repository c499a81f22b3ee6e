package systems

import (
	"log/slog"

	"github.com/1siamBot/tactics-engine/engine/config"
	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
)

// MovementSystem walks units along planned paths
type MovementSystem struct {
	Actors   *core.Store
	EventBus *core.EventBus
	Rules    config.Rules
}

type moveTask struct {
	sys      *MovementSystem
	id       core.ActorID
	path     []grid.Pos
	onArrive func()
	idx      int
	t        float64
}

// MoveAlong returns a task that slides the actor's draw position through
// each path cell in turn at Rules.MoveSpeed. The logical cell only changes
// once, to the last path cell, when the walk is over. onArrive runs right
// after that, in the same step.
func (s *MovementSystem) MoveAlong(id core.ActorID, path []grid.Pos, onArrive func()) core.Task {
	return &moveTask{sys: s, id: id, path: path, onArrive: onArrive}
}

func (m *moveTask) Step(dt float64) core.Status {
	a, ok := m.sys.Actors.Get(m.id)
	if !ok {
		return core.Done
	}
	for m.idx < len(m.path) {
		if m.t < 1 {
			m.t += frameDelta(dt) * m.sys.Rules.MoveSpeed
			target := core.CellToWorld(m.path[m.idx], m.sys.Rules.GridSize)
			a.DrawPos = a.DrawPos.Lerp(target, min(m.t, 1))
			return core.Yield
		}
		m.idx++
		m.t = 0
	}
	if len(m.path) > 0 {
		from, last := a.Pos, m.path[len(m.path)-1]
		a.Pos = last
		a.DrawPos = core.CellToWorld(last, m.sys.Rules.GridSize)
		slog.Debug("unit moved", "actor", m.id, "from", from, "to", last)
		if m.sys.EventBus != nil {
			m.sys.EventBus.Emit(core.Event{
				Type:    core.EvtUnitMoved,
				Payload: core.UnitMoved{Actor: m.id, Team: a.Team, From: from, To: last},
			})
		}
	}
	if m.onArrive != nil {
		m.onArrive()
	}
	return core.Done
}
