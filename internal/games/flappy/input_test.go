package flappy

import "testing"

func TestHandlePrimary(t *testing.T) {
	w := newTestWorld(1)

	w.Handle(EventPrimary)

	if !w.Started {
		t.Error("primary action should start the run")
	}
	if w.Player.Velocity != FlapImpulse {
		t.Errorf("Velocity = %v, expected %v", w.Player.Velocity, FlapImpulse)
	}

	// Flapping again while running keeps the run going
	w.Player.Velocity = 300
	w.Handle(EventPrimary)
	if !w.Started || w.Player.Velocity != FlapImpulse {
		t.Errorf("second flap: Started=%v Velocity=%v, expected true and %v", w.Started, w.Player.Velocity, FlapImpulse)
	}
}

func TestHandlePrimaryWhileDeadIsIgnored(t *testing.T) {
	w := newTestWorld(1)
	w.Dead = true
	w.Player.Velocity = 123

	w.Handle(EventPrimary)

	if w.Player.Velocity != 123 {
		t.Errorf("Velocity = %v, expected primary action to be ignored while dead", w.Player.Velocity)
	}
	if w.Started {
		t.Error("primary action while dead should not set started")
	}
}

func TestHandleRestartWhileAliveIsIgnored(t *testing.T) {
	w := newTestWorld(1)
	w.Handle(EventPrimary)
	w.Score = 3

	w.Handle(EventRestart)

	if !w.Started || w.Score != 3 {
		t.Errorf("restart while alive should do nothing (Started=%v Score=%d)", w.Started, w.Score)
	}
}

func TestHandleRestartWhileDead(t *testing.T) {
	w := newTestWorld(1)
	w.Handle(EventPrimary)
	w.advanceClock(0)
	w.Step(w.advanceClock(500))
	w.Score = 4
	w.Dead = true

	w.Handle(EventRestart)

	if w.Dead || w.Started || w.Score != 0 {
		t.Errorf("after restart Dead=%v Started=%v Score=%d, expected false false 0", w.Dead, w.Started, w.Score)
	}
	if len(w.Obstacles) != 1 {
		t.Errorf("len(Obstacles) = %d, expected 1", len(w.Obstacles))
	}
	if w.Player.X != PlayerStartX || w.Player.Y != PlayerStartY || w.Player.Velocity != 0 {
		t.Errorf("player = %+v, expected start position at rest", w.Player)
	}
	if w.Speed != BaseSpeed || w.Distance != 0 {
		t.Errorf("Speed=%v Distance=%v, expected %v and 0", w.Speed, w.Distance, BaseSpeed)
	}
	if _, ok := w.LastFrame(); ok {
		t.Error("restart should unset the last frame timestamp")
	}
}

func TestHandleNoneIsIgnored(t *testing.T) {
	w := newTestWorld(1)
	before := snapshot(w)

	w.Handle(EventNone)
	w.Handle(Event(42))

	after := snapshot(w)
	if before.Started != after.Started || before.Player != after.Player {
		t.Error("unknown events should be ignored")
	}
}

func TestTouchEvent(t *testing.T) {
	w := newTestWorld(1)

	if ev := TouchEvent(w); ev != EventPrimary {
		t.Errorf("TouchEvent() alive = %v, expected %v", ev, EventPrimary)
	}

	w.Dead = true
	if ev := TouchEvent(w); ev != EventRestart {
		t.Errorf("TouchEvent() dead = %v, expected %v", ev, EventRestart)
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev       Event
		expected string
	}{
		{EventNone, "None"},
		{EventPrimary, "Primary"},
		{EventRestart, "Restart"},
		{Event(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.ev.String(); got != tc.expected {
			t.Errorf("Event(%d).String() = %q, expected %q", int(tc.ev), got, tc.expected)
		}
	}
}
