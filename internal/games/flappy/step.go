package flappy

import "math"

// Step advances the physical simulation by dt seconds. Nothing moves until
// the run has started, after death, or for a zero delta.
func (w *World) Step(dt float64) {
	if !w.Started || w.Dead || dt <= 0 {
		return
	}

	w.Distance += w.Speed * dt
	w.Speed += SpeedRamp * w.Distance * dt

	w.stepPlayer(dt)
	w.stepObstacles(dt)
}

// stepPlayer integrates the bird. Position uses the old velocity, then
// gravity is applied.
func (w *World) stepPlayer(dt float64) {
	p := &w.Player
	p.Y += p.Velocity * dt
	p.Velocity += p.Gravity * dt

	if top := p.Height / 2; p.Y < top {
		p.Y = math.Floor(top)
		p.Velocity = 0
	}
}

// stepObstacles scrolls the obstacles, spawns at most one and culls at most one.
func (w *World) stepObstacles(dt float64) {
	shift := w.Speed * dt
	for i := range w.Obstacles {
		w.Obstacles[i].X -= shift
	}

	if tail := w.Obstacles[len(w.Obstacles)-1]; tail.X < w.Width/2 {
		w.Obstacles = append(w.Obstacles, w.SpawnObstacle())
	}

	if head := w.Obstacles[0]; head.X < -(head.Width / 2) {
		w.Obstacles = w.Obstacles[1:]
	}
}
