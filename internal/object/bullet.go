package object

import (
	"github.com/tomz197/orbit-arcade/internal/loop/config"
	"github.com/tomz197/orbit-arcade/internal/physics"
)

// Bullet is a shot travelling straight up from the ship.
type Bullet struct {
	ID   int
	X, Y float64
}

// NewBullet creates a bullet at the launch height under x.
func NewBullet(id int, x float64) *Bullet {
	return &Bullet{
		ID: id,
		X:  x,
		Y:  config.BulletLaunchY,
	}
}

func (b *Bullet) EntityID() int { return b.ID }

// Update moves the bullet up one frame step and reports removal once it has
// left the top of the playfield.
func (b *Bullet) Update() bool {
	b.Y += config.BulletStep
	return b.Y > config.BulletMaxY
}

// Active reports whether the bullet is inside the band where it can hit.
func (b *Bullet) Active() bool {
	return physics.Within(b.Y, config.BulletMinActiveY, config.BulletMaxActiveY)
}
