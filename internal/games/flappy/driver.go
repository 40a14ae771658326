package flappy

// Driver runs one frame of the game per call. The host is responsible for
// calling Frame once per display refresh with a monotonically increasing
// timestamp, and for delivering input through World.Handle between frames.
type Driver struct {
	world        *World
	surface      Surface
	touchPrimary bool
}

// NewDriver creates a frame driver that owns w and paints onto s.
func NewDriver(w *World, s Surface, touchPrimary bool) *Driver {
	return &Driver{
		world:        w,
		surface:      s,
		touchPrimary: touchPrimary,
	}
}

// World returns the world driven by d.
func (d *Driver) World() *World {
	return d.world
}

// Frame processes one frame: time bookkeeping, simulation, collision and
// scoring, then rendering.
func (d *Driver) Frame(timestampMS float64) {
	dt := d.world.advanceClock(timestampMS)
	d.world.Step(dt)
	d.world.Evaluate()
	Render(d.world, d.surface, d.touchPrimary)
}

// Handle forwards an input event to the world.
func (d *Driver) Handle(ev Event) {
	d.world.Handle(ev)
}

// Touch forwards a touch-start to the world.
func (d *Driver) Touch() {
	d.world.Handle(TouchEvent(d.world))
}

// Render repaints the current state without advancing time.
func (d *Driver) Render() {
	Render(d.world, d.surface, d.touchPrimary)
}
