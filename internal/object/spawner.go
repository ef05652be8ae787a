package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/orbit-arcade/internal/loop/config"
)

// Spawner creates bullets and asteroids. Randomness comes from an injected
// source so a seeded session replays identically.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng. A nil rng is seeded from the
// wall clock.
func NewSpawner(rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Spawner{rng: rng}
}

// Bullet creates a bullet launched from the ship's x.
func (s *Spawner) Bullet(bullets *Store[*Bullet], shipX float64) *Bullet {
	b := NewBullet(bullets.NextID(), shipX)
	bullets.Add(b)
	return b
}

// Asteroid creates one asteroid at the top of the playfield with a speed drawn
// from the difficulty's range.
func (s *Spawner) Asteroid(asteroids *Store[*Asteroid], d Difficulty) *Asteroid {
	return s.asteroidAt(asteroids, d, config.AsteroidSpawnY)
}

// InitialWave creates the rocks present the moment a session starts, using
// the time-zero difficulty. They are staggered vertically so they arrive one
// after another.
func (s *Spawner) InitialWave(asteroids *Store[*Asteroid]) []*Asteroid {
	d := DifficultyAt(0)
	wave := make([]*Asteroid, 0, config.InitialAsteroids)
	for i := 0; i < config.InitialAsteroids; i++ {
		y := config.AsteroidSpawnY + float64(i)*config.AsteroidWaveSpacing
		wave = append(wave, s.asteroidAt(asteroids, d, y))
	}
	return wave
}

func (s *Spawner) asteroidAt(asteroids *Store[*Asteroid], d Difficulty, y float64) *Asteroid {
	x := (s.rng.Float64()*2 - 1) * config.AsteroidSpawnHalfX
	speed := d.BaseSpeed + s.rng.Float64()*d.SpeedVariation
	color := s.rng.Intn(config.AsteroidColors)

	a := NewAsteroid(asteroids.NextID(), x, y, speed, color)
	asteroids.Add(a)
	return a
}
