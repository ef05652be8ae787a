package object

import (
	"time"

	"github.com/tomz197/orbit-arcade/internal/invariant"
	"github.com/tomz197/orbit-arcade/internal/loop/config"
)

// Asteroid is a destructible rock falling toward the ship.
type Asteroid struct {
	ID      int
	X, Y    float64
	Speed   float64   // Downward distance per frame, fixed at spawn
	Health  int       // Starts at AsteroidHealth, only decreases
	Color   int       // Palette index in [0, AsteroidColors), cosmetic
	lastHit time.Time // Start of the post-hit cooldown
}

// NewAsteroid creates a full-health asteroid.
func NewAsteroid(id int, x, y, speed float64, color int) *Asteroid {
	return &Asteroid{
		ID:     id,
		X:      x,
		Y:      y,
		Speed:  speed,
		Health: config.AsteroidHealth,
		Color:  color,
	}
}

func (a *Asteroid) EntityID() int { return a.ID }

// Update moves the asteroid down one frame step. Asteroids never remove
// themselves; leaving the playfield is a gameplay event handled by the
// session.
func (a *Asteroid) Update() bool {
	a.Y -= a.Speed
	return false
}

// Shielded reports whether the asteroid is still too high to be shot.
func (a *Asteroid) Shielded() bool {
	return a.Y >= config.AsteroidShieldY
}

// CoolingDown reports whether a hit landed less than HitCooldown before now.
func (a *Asteroid) CoolingDown(now time.Time) bool {
	return !a.lastHit.IsZero() && now.Sub(a.lastHit) < config.HitCooldown
}

// Hit applies one point of damage, starts the cooldown and reports whether
// the asteroid is destroyed.
func (a *Asteroid) Hit(now time.Time) (destroyed bool) {
	invariant.Check(a.Health > 0, "hit on asteroid %d with health %d", a.ID, a.Health)
	a.lastHit = now
	if a.Health > 0 {
		a.Health--
	}
	return a.Health <= 0
}

// Scale is the render scale communicating damage: 1 at full health shrinking
// toward AsteroidMinScale.
func (a *Asteroid) Scale() float64 {
	return config.AsteroidMinScale + float64(a.Health)/config.AsteroidHealth*(1-config.AsteroidMinScale)
}
