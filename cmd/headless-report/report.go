package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/grid"
	"github.com/1siamBot/tactics-engine/engine/turn"
)

// UnitLine is one surviving unit at the end of a phase
type UnitLine struct {
	ID   core.ActorID
	Team core.Team
	Unit core.UnitType
	Pos  grid.Pos
	HP   int
}

// PhaseReport is the board after one enemy phase
type PhaseReport struct {
	Phase  int
	Frames int
	Units  []UnitLine
	Events map[core.EventType]int
}

// Simulate hands over to the enemy phases times with no player input and
// reports the board after each. It stops early once a side has no units
// left, and fails when a phase runs longer than maxFrames.
func Simulate(s *turn.State, phases, maxFrames int) ([]PhaseReport, error) {
	counts := make(map[core.EventType]int)
	s.Loop.Events.OnAny(func(e core.Event) { counts[e.Type]++ })
	dt := s.Loop.FixedDelta()

	var reports []PhaseReport
	for n := 1; n <= phases; n++ {
		if len(s.Actors.IDs(core.TeamBlue)) == 0 || len(s.Actors.IDs(core.TeamRed)) == 0 {
			break
		}
		clear(counts)
		s.EndPlayerPhase()
		frames := 0
		for s.Phase != turn.PlayerPhase || s.Busy() || s.Loop.Events.Pending() > 0 {
			if frames >= maxFrames {
				return reports, fmt.Errorf("phase %d still running after %d frames", n, maxFrames)
			}
			s.Update(turn.Input{}, dt)
			frames++
		}

		r := PhaseReport{Phase: n, Frames: frames, Events: make(map[core.EventType]int, len(counts))}
		for t, c := range counts {
			r.Events[t] = c
		}
		for id, a := range s.Actors.All() {
			r.Units = append(r.Units, UnitLine{ID: id, Team: a.Team, Unit: a.Unit, Pos: a.Pos, HP: a.HP})
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// WriteReport prints reports as one table per phase
func WriteReport(w io.Writer, reports []PhaseReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range reports {
		fmt.Fprintf(tw, "phase %d (%d frames, %d attacks, %d lost)\n",
			r.Phase, r.Frames, r.Events[core.EvtUnitAttack], r.Events[core.EvtUnitDestroyed])
		fmt.Fprintln(tw, "  id\tteam\tunit\tpos\thp")
		for _, u := range r.Units {
			fmt.Fprintf(tw, "  %v\t%s\t%s\t%d,%d\t%d\n", u.ID, u.Team, u.Unit, u.Pos.X, u.Pos.Y, u.HP)
		}
	}
	return tw.Flush()
}
