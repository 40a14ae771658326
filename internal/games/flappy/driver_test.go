package flappy

import "testing"

func TestDriverFirstFrameHasZeroDelta(t *testing.T) {
	w := newTestWorld(1)
	w.Handle(EventPrimary)
	s := &recordingSurface{}
	d := NewDriver(w, s, false)

	d.Frame(123456)

	if w.Elapsed != 0 {
		t.Errorf("Elapsed = %v, expected 0 on the first frame", w.Elapsed)
	}
	if w.Player.Y != PlayerStartY || w.Distance != 0 {
		t.Errorf("first frame should not move anything (Y=%v Distance=%v)", w.Player.Y, w.Distance)
	}
	if len(s.ops) == 0 {
		t.Error("every frame should render")
	}
}

func TestDriverFrameAdvancesWorld(t *testing.T) {
	w := newTestWorld(1)
	d := NewDriver(w, &recordingSurface{}, false)

	d.Frame(0)
	d.Handle(EventPrimary)
	d.Frame(16)

	if !approxEqual(w.Elapsed, 0.016) {
		t.Errorf("Elapsed = %v, expected 0.016", w.Elapsed)
	}
	if !approxEqual(w.Distance, BaseSpeed*0.016) {
		t.Errorf("Distance = %v, expected %v", w.Distance, BaseSpeed*0.016)
	}
	if !approxEqual(w.Player.Y, PlayerStartY+FlapImpulse*0.016) {
		t.Errorf("Y = %v, expected %v", w.Player.Y, PlayerStartY+FlapImpulse*0.016)
	}
}

func TestDriverClockRunsInEveryPhase(t *testing.T) {
	w := newTestWorld(1)
	d := NewDriver(w, &recordingSurface{}, false)

	d.Frame(0)
	d.Frame(100)

	if !approxEqual(w.Elapsed, 0.1) {
		t.Errorf("Elapsed before start = %v, expected 0.1", w.Elapsed)
	}
	if ts, _ := w.LastFrame(); ts != 100 {
		t.Errorf("LastFrame() = %v, expected 100", ts)
	}
	if w.Distance != 0 {
		t.Errorf("Distance = %v, expected nothing to move before start", w.Distance)
	}
}

func TestDriverRestartResetsClock(t *testing.T) {
	w := newTestWorld(1)
	d := NewDriver(w, &recordingSurface{}, true)

	d.Frame(0)
	d.Touch() // start
	d.Frame(16)
	w.Player.Y = testHeight + 100
	d.Frame(32)
	if !w.Dead {
		t.Fatal("bird below the play area should die")
	}

	d.Touch() // restart
	if w.Dead || w.Started {
		t.Fatal("touch while dead should restart")
	}

	d.Frame(10000)
	if w.Elapsed != 0 {
		t.Errorf("first frame after restart Elapsed = %v, expected 0", w.Elapsed)
	}
}

func TestDriverDeterminism(t *testing.T) {
	run := func() *World {
		w := newTestWorld(12345)
		d := NewDriver(w, &recordingSurface{}, false)
		for i := 0; i < 900; i++ {
			if i%25 == 0 {
				d.Handle(EventPrimary)
			}
			d.Frame(float64(i) * 16.6)
		}
		return w
	}

	w1, w2 := run(), run()

	if w1.Score != w2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", w1.Score, w2.Score)
	}
	if w1.Distance != w2.Distance {
		t.Errorf("Determinism failed: distance differs. Run1=%v, Run2=%v", w1.Distance, w2.Distance)
	}
	if w1.Dead != w2.Dead {
		t.Errorf("Determinism failed: dead differs. Run1=%v, Run2=%v", w1.Dead, w2.Dead)
	}
	if len(w1.Obstacles) != len(w2.Obstacles) {
		t.Fatalf("Determinism failed: obstacle counts differ. Run1=%d, Run2=%d", len(w1.Obstacles), len(w2.Obstacles))
	}
	for i := range w1.Obstacles {
		if w1.Obstacles[i] != w2.Obstacles[i] {
			t.Errorf("Determinism failed: obstacle %d differs: %+v vs %+v", i, w1.Obstacles[i], w2.Obstacles[i])
		}
	}
}
