// Package config centralizes all tunable gameplay parameters.
//
// Distances are world units: the playfield is centred on x = 0 with the ship
// near the bottom (y = -3.5) and asteroids entering from the top (y = 8).
// Motion constants are per rendered frame, tuned for ~60 fps.
package config

import "time"

// Ship
const (
	ShipY        = -3.5
	ShipMinX     = -4.0
	ShipMaxX     = 4.0
	ShipStep     = 0.5  // Discrete move-left/move-right step
	ShipEasing   = 0.15 // Fraction of remaining distance covered per frame
	ShipHitRange = 0.5  // Axis-aligned proximity for asteroid vs ship
)

// Bullets
const (
	BulletLaunchY    = -3.0
	BulletStep       = 0.3 // Per frame
	BulletMaxY       = 8.0 // Removed above this
	BulletMinActiveY = -3.0
	BulletMaxActiveY = 6.0
	BulletHitRange   = 0.5
)

// Asteroids
const (
	AsteroidHealth      = 3
	AsteroidSpawnY      = 8.0
	AsteroidWaveSpacing = 2.0 // Vertical stagger between the initial wave's rocks
	AsteroidSpawnHalfX  = 4.0 // x drawn from [-AsteroidSpawnHalfX, AsteroidSpawnHalfX]
	AsteroidColors      = 8
	AsteroidShieldY     = 3.0 // Bullets only register below this height
	AsteroidPassY       = -4.5
	AsteroidMinScale    = 0.7
	InitialAsteroids    = 3
)

// Explosions
const (
	ExplosionStep = 0.05 // Progress per frame; removed once progress > 1
)

// Scoring
const (
	ScoreAsteroidHit       = 5
	ScoreAsteroidDestroyed = 30
)

// Timers
const (
	AutoFireInterval  = 250 * time.Millisecond
	GameClockInterval = time.Second
	HitCooldown       = 100 * time.Millisecond
)

// Difficulty
const (
	BaseSpeed          = 0.012
	BaseSpeedPerSecond = 0.0003
	BaseSpeedMaxBonus  = 0.015

	SpeedVariation          = 0.008
	SpeedVariationPerSecond = 0.0002
	SpeedVariationMaxBonus  = 0.007

	SpawnIntervalStart     = 1500 * time.Millisecond
	SpawnIntervalPerSecond = 30 * time.Millisecond
	SpawnIntervalFloor     = 600 * time.Millisecond
)

// Frame rate the per-frame motion constants are tuned for; hosts default to it.
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// View rectangle in world units, mapped onto the terminal canvas.
const (
	ViewMinX = -5.0
	ViewMaxX = 5.0
	ViewMinY = -5.0
	ViewMaxY = 8.5
)
