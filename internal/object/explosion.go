package object

import "github.com/tomz197/orbit-arcade/internal/loop/config"

// Explosion is a short-lived effect left where an asteroid was destroyed or
// where the session ended. It removes itself once its progress passes 1.
type Explosion struct {
	ID       int
	X, Y     float64
	Progress float64 // 0 at creation, grows every frame
}

// NewExplosion creates an explosion at (x, y).
func NewExplosion(id int, x, y float64) *Explosion {
	return &Explosion{ID: id, X: x, Y: y}
}

func (e *Explosion) EntityID() int { return e.ID }

// Update advances the effect and reports removal once it has finished.
func (e *Explosion) Update() bool {
	e.Progress += config.ExplosionStep
	return e.Progress > 1
}
