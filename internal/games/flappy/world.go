// Package flappy implements a Flappy Bird-style game.
// The player flaps a square bird through an endless stream of blocks that
// drift in from the right, speeding up the further the bird travels.
//
// All positions are in play-area pixels with the origin at the top-left
// corner and y growing downwards. Entities are addressed by their centre.
package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Player constants.
const (
	PlayerStartX = 200.0
	PlayerStartY = 200.0
	PlayerSize   = 50.0
	Gravity      = 2000.0 // px/s², positive pulls down
	FlapImpulse  = -400.0 // px/s, velocity set on every flap
)

// Obstacle constants.
const (
	ObstacleSize        = 100.0
	ObstacleSpawnOffset = 50.0 // distance beyond the right edge at spawn
	ObstacleClearance   = 0.0  // extra vertical margin beyond half the obstacle height
)

// Smallest play area a run can start in: the bird starts above the ground
// and the first obstacle spawns clear of it.
const (
	MinPlayWidth  = PlayerStartX + ObstacleSize + PlayerSize
	MinPlayHeight = PlayerStartY + PlayerSize
)

// Travel constants.
const (
	BaseSpeed = 150.0  // px/s at the start of a run
	SpeedRamp = 0.0002 // speed gained per px travelled per second
)

// Player is the bird.
type Player struct {
	X, Y          float64 // Centre
	Width, Height float64
	Velocity      float64 // Vertical, negative is up
	Gravity       float64
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Obstacle is a block the player must avoid.
type Obstacle struct {
	X, Y          float64 // Centre
	Width, Height float64
	Passed        bool // Set once the player is fully past it
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Phase is the coarse game state derived from the started and dead flags.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseDead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// World is the whole session state. It is not safe for concurrent use; the
// frame driver and input handler must run on the same goroutine.
type World struct {
	Width, Height float64 // Play area in pixels

	Player    Player
	Obstacles []Obstacle // Spawn order, head has the lowest X

	Score    int
	Speed    float64 // Travel speed in px/s
	Distance float64 // Total px travelled this run
	Elapsed  float64 // Seconds covered by the last frame

	Started bool
	Dead    bool

	lastFrameMS  float64
	hasLastFrame bool

	rng *rand.Rand
}

// NewWorld creates a world for a play area of the given size and resets it.
// rng drives obstacle placement; pass a seeded source for reproducible runs.
func NewWorld(width, height float64, rng *rand.Rand) *World {
	w := &World{
		Width:     width,
		Height:    height,
		Obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
	}
	w.Reset()
	return w
}

// Reset returns the world to its start condition.
func (w *World) Reset() {
	w.Obstacles = append(w.Obstacles[:0], w.SpawnObstacle())
	w.Started = false
	w.Dead = false
	w.Score = 0

	w.Player = Player{
		X:       PlayerStartX,
		Y:       PlayerStartY,
		Width:   PlayerSize,
		Height:  PlayerSize,
		Gravity: Gravity,
	}

	w.Speed = BaseSpeed
	w.Distance = 0
	w.lastFrameMS = 0
	w.hasLastFrame = false
	w.Elapsed = 0
}

// SpawnObstacle returns a fresh obstacle just beyond the right edge with a
// random vertical centre that keeps it clear of the top and bottom edges.
func (w *World) SpawnObstacle() Obstacle {
	margin := ObstacleSize/2 + ObstacleClearance
	span := w.Height - 2*margin

	y := w.Height / 2
	if span > 0 {
		y = math.Floor(w.rng.Float64()*span) + margin
	}

	return Obstacle{
		X:      w.Width + ObstacleSpawnOffset,
		Y:      y,
		Width:  ObstacleSize,
		Height: ObstacleSize,
	}
}

// Phase reports the current phase.
func (w *World) Phase() Phase {
	switch {
	case w.Dead:
		return PhaseDead
	case w.Started:
		return PhaseRunning
	default:
		return PhaseNotStarted
	}
}

// LastFrame returns the timestamp of the previous frame in milliseconds and
// whether one has been recorded since the last reset.
func (w *World) LastFrame() (float64, bool) {
	return w.lastFrameMS, w.hasLastFrame
}

// advanceClock records a frame timestamp and returns the seconds elapsed
// since the previous one. The first frame after a reset yields zero.
func (w *World) advanceClock(timestampMS float64) float64 {
	if w.hasLastFrame {
		w.Elapsed = (timestampMS - w.lastFrameMS) / 1000.0
		if w.Elapsed < 0 {
			w.Elapsed = 0
		}
	} else {
		w.Elapsed = 0
	}
	w.lastFrameMS = timestampMS
	w.hasLastFrame = true
	return w.Elapsed
}
