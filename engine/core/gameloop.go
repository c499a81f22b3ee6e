package core

// GameLoop drives the cooperative task queue once per frame. Sequences
// (move and attack animations, the enemy phase) live in Tasks; the
// synchronous frame code runs after Advance returns.
type GameLoop struct {
	Tasks    *Scheduler
	Events   *EventBus
	TickRate float64 // frames per second, used when no delta is supplied
	tick     uint64
}

// NewGameLoop creates a loop with an empty task queue
func NewGameLoop(tickRate float64) *GameLoop {
	gl := &GameLoop{
		Tasks:    NewScheduler(),
		Events:   NewEventBus(),
		TickRate: tickRate,
	}
	gl.Events.SetClock(gl.CurrentTick)
	return gl
}

// FixedDelta returns the frame duration implied by TickRate
func (gl *GameLoop) FixedDelta() float64 {
	if gl.TickRate <= 0 {
		return 0
	}
	return 1.0 / gl.TickRate
}

// Advance runs at most one task step for this frame
func (gl *GameLoop) Advance(dt float64) {
	gl.Tasks.Step(dt)
	gl.tick++
}

// EndFrame delivers the events queued during the frame
func (gl *GameLoop) EndFrame() {
	gl.Events.Dispatch()
}

// CurrentTick returns the number of frames advanced
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.tick
}
