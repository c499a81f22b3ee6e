package systems

import "github.com/1siamBot/tactics-engine/engine/core"

// fallbackDelta is used when a frame reports no elapsed time, so
// animations cannot stall
const fallbackDelta = 1.0 / 60

func frameDelta(dt float64) float64 {
	if dt <= 0 {
		return fallbackDelta
	}
	return dt
}

// Lunge moves the actor's draw position half way toward target and back at
// speed, one step per frame, then restores it. The logical cell is never
// touched.
func Lunge(store *core.Store, id core.ActorID, target core.Vec2, speed float64) core.Task {
	var (
		start   core.Vec2
		started bool
		back    bool
		t       float64
	)
	return core.TaskFunc(func(dt float64) core.Status {
		a, ok := store.Get(id)
		if !ok {
			return core.Done
		}
		if !started {
			start, started = a.DrawPos, true
		}
		step := frameDelta(dt) * speed
		switch {
		case !back && t < 0.5:
			t += step
			a.DrawPos = start.Lerp(target, min(t, 0.5))
			return core.Yield
		case t >= 0:
			back = true
			t -= step
			a.DrawPos = start.Lerp(target, max(t, 0))
			return core.Yield
		}
		a.DrawPos = start
		return core.Done
	})
}
