package core

import "github.com/1siamBot/tactics-engine/engine/grid"

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtUnitMoved EventType = iota
	EvtUnitWaited
	EvtUnitAttack
	EvtUnitDamaged
	EvtUnitDestroyed
	EvtPhaseChanged
)

var eventNames = [...]string{
	EvtUnitMoved:     "unit_moved",
	EvtUnitWaited:    "unit_waited",
	EvtUnitAttack:    "unit_attack",
	EvtUnitDamaged:   "unit_damaged",
	EvtUnitDestroyed: "unit_destroyed",
	EvtPhaseChanged:  "phase_changed",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// UnitMoved is the payload of EvtUnitMoved
type UnitMoved struct {
	Actor    ActorID
	Team     Team
	From, To grid.Pos
}

// UnitWaited is the payload of EvtUnitWaited
type UnitWaited struct {
	Actor ActorID
	Team  Team
	At    grid.Pos
}

// UnitAttack is the payload of EvtUnitAttack
type UnitAttack struct {
	Attacker, Target ActorID
	Team             Team
	TargetPos        grid.Pos
}

// UnitDamaged is the payload of EvtUnitDamaged
type UnitDamaged struct {
	Actor ActorID
	HP    int
}

// UnitDestroyed is the payload of EvtUnitDestroyed
type UnitDestroyed struct {
	Actor ActorID
	Team  Team
	At    grid.Pos
}

// PhaseChanged is the payload of EvtPhaseChanged. Acting is the team
// whose turn starts.
type PhaseChanged struct {
	Acting Team
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	any       []EventHandler
	queue     []Event
	clock     func() uint64
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// OnAny registers a handler for every event type
func (eb *EventBus) OnAny(h EventHandler) {
	eb.any = append(eb.any, h)
}

// SetClock makes Emit stamp unstamped events with clock()
func (eb *EventBus) SetClock(clock func() uint64) {
	eb.clock = clock
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	if e.Tick == 0 && eb.clock != nil {
		e.Tick = eb.clock()
	}
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
		for _, h := range eb.any {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}
