package flappy

// Event is a player intent, decoupled from the device that produced it.
type Event int

const (
	EventNone    Event = iota
	EventPrimary       // Flap; also starts the run
	EventRestart       // Start over after death
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventPrimary:
		return "Primary"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Handle applies an input event. Flapping is ignored while dead and
// restarting is ignored while alive.
func (w *World) Handle(ev Event) {
	switch ev {
	case EventPrimary:
		if w.Dead {
			return
		}
		w.Player.Velocity = FlapImpulse
		w.Started = true
	case EventRestart:
		if w.Dead {
			w.Reset()
		}
	}
}

// TouchEvent returns the event a touch maps to in the current phase: a
// touch restarts a dead run and flaps otherwise.
func TouchEvent(w *World) Event {
	if w.Dead {
		return EventRestart
	}
	return EventPrimary
}
