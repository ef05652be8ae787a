package object

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tomz197/orbit-arcade/internal/loop/config"
)

func TestShipClamping(t *testing.T) {
	ship := NewShip()
	for i := 0; i < 20; i++ {
		ship.MoveLeft()
		assert.GreaterOrEqual(t, ship.TargetX, config.ShipMinX)
	}
	assert.Equal(t, config.ShipMinX, ship.TargetX)

	for i := 0; i < 40; i++ {
		ship.MoveRight()
		assert.LessOrEqual(t, ship.TargetX, config.ShipMaxX)
	}
	assert.Equal(t, config.ShipMaxX, ship.TargetX)

	ship.MoveTo(-12)
	assert.Equal(t, config.ShipMinX, ship.TargetX)
	ship.MoveTo(1.25)
	assert.Equal(t, 1.25, ship.TargetX)

	ship.MoveTo(math.NaN())
	assert.Equal(t, 1.25, ship.TargetX, "NaN leaves the ship in place")
	ship.MoveTo(math.Inf(1))
	assert.Equal(t, config.ShipMaxX, ship.TargetX)
}

func TestShipEasesTowardTarget(t *testing.T) {
	ship := NewShip()
	ship.MoveTo(2)

	ship.Update()
	assert.InDelta(t, 0.3, ship.X, 1e-12)
	assert.Equal(t, 2.0, ship.TargetX, "easing never touches the authoritative position")

	ship.Reset()
	assert.Zero(t, ship.X)
	assert.Zero(t, ship.TargetX)
	assert.Equal(t, config.ShipY, ship.Y)
}

func TestBulletLifecycle(t *testing.T) {
	b := NewBullet(1, 2)
	assert.Equal(t, config.BulletLaunchY, b.Y)
	assert.False(t, b.Active(), "launch height sits on the band edge")

	assert.False(t, b.Update())
	assert.InDelta(t, -2.7, b.Y, 1e-9)
	assert.True(t, b.Active())

	frames := 1
	for !b.Update() {
		frames++
	}
	assert.Greater(t, b.Y, config.BulletMaxY)
	assert.Equal(t, 37, frames+1)
}

func TestAsteroidHitAndCooldown(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := NewAsteroid(1, 0, 1, 0.02, 3)

	assert.False(t, a.CoolingDown(now), "fresh asteroids are not cooling down")
	assert.InDelta(t, 1.0, a.Scale(), 1e-9)

	assert.False(t, a.Hit(now))
	assert.Equal(t, 2, a.Health)
	assert.InDelta(t, 0.9, a.Scale(), 1e-9)

	assert.True(t, a.CoolingDown(now.Add(99*time.Millisecond)))
	assert.False(t, a.CoolingDown(now.Add(100*time.Millisecond)))

	assert.False(t, a.Hit(now.Add(100*time.Millisecond)))
	assert.True(t, a.Hit(now.Add(200*time.Millisecond)))
	assert.Equal(t, 0, a.Health)
	assert.InDelta(t, 0.7, a.Scale(), 1e-9)
}

func TestAsteroidFallsAndShield(t *testing.T) {
	a := NewAsteroid(1, 0, 3.01, 0.02, 0)
	assert.True(t, a.Shielded())

	assert.False(t, a.Update())
	assert.InDelta(t, 2.99, a.Y, 1e-9)
	assert.False(t, a.Shielded())
}

func TestExplosionSelfTerminates(t *testing.T) {
	e := NewExplosion(1, 0, 0)
	frames := 0
	for !e.Update() {
		frames++
	}
	assert.Greater(t, e.Progress, 1.0)
	assert.InDelta(t, 1/config.ExplosionStep, float64(frames), 1)
}
