package flappy

// Evaluate checks for game over and scores passed obstacles. It runs every
// frame; the two checks are independent so an obstacle passed in the frame
// of death still counts.
func (w *World) Evaluate() {
	w.checkCollisions()
	w.updateScore()
}

// checkCollisions latches Dead when the bird falls below the play area or
// touches an obstacle it has not yet passed.
func (w *World) checkCollisions() {
	if w.Player.Y > w.Height {
		w.Dead = true
	}

	bird := w.Player.Box()
	for _, o := range w.Obstacles {
		if !o.Passed && bird.Intersects(o.Box()) {
			w.Dead = true
			break
		}
	}
}

// updateScore marks obstacles whose right edge is behind the bird's left
// edge and adds a point for each.
func (w *World) updateScore() {
	birdLeft := w.Player.Box().Left()
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if !o.Passed && o.Box().Right() < birdLeft {
			o.Passed = true
			w.Score++
		}
	}
}
