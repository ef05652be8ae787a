package session

import (
	"time"

	"github.com/tomz197/orbit-arcade/internal/invariant"
	"github.com/tomz197/orbit-arcade/internal/loop/config"
	"github.com/tomz197/orbit-arcade/internal/object"
	"github.com/tomz197/orbit-arcade/internal/physics"
)

// resolveCollisions runs the per-frame hit, ship and pass-through tests over
// every live asteroid. It must run after this frame's movement.
func (s *Session) resolveCollisions(now time.Time) {
	// Iterate a copy: hits remove asteroids and game over clears the store.
	s.scratch = append(s.scratch[:0], s.asteroids.All()...)
	defer clear(s.scratch)

	for _, a := range s.scratch {
		if s.state != StatePlaying {
			return
		}
		if s.resolveBulletHit(a, now) {
			continue
		}
		switch {
		case physics.Near(a.X, a.Y, s.ship.TargetX, config.ShipY, config.ShipHitRange, config.ShipHitRange):
			s.gameOver(a, ReasonShipCollision)
		case a.Y < config.AsteroidPassY:
			s.gameOver(a, ReasonPassThrough)
		}
	}
}

// resolveBulletHit applies at most one bullet hit to a. It returns true if
// the asteroid was destroyed.
func (s *Session) resolveBulletHit(a *object.Asteroid, now time.Time) bool {
	if a.Shielded() || a.CoolingDown(now) {
		return false
	}

	var hit *object.Bullet
	for _, b := range s.bullets.All() {
		if !b.Active() {
			continue
		}
		if physics.Near(a.X, a.Y, b.X, b.Y, config.BulletHitRange, config.BulletHitRange) {
			hit = b
			break
		}
	}
	if hit == nil {
		return false
	}
	s.bullets.Remove(hit.ID)

	if a.Hit(now) {
		s.asteroids.Remove(a.ID)
		s.explode(a.X, a.Y)
		s.destroys++
		s.award(config.ScoreAsteroidDestroyed, Event{
			Type:       EventAsteroidDestroyed,
			AsteroidID: a.ID,
			X:          a.X,
			Y:          a.Y,
		})
		return true
	}

	invariant.Check(a.Health > 0, "asteroid %d kept with health %d", a.ID, a.Health)
	s.hits++
	s.award(config.ScoreAsteroidHit, Event{
		Type:       EventAsteroidHit,
		AsteroidID: a.ID,
		X:          a.X,
		Y:          a.Y,
	})
	return false
}

// award is the only place the score changes.
func (s *Session) award(points int, ev Event) {
	s.score += points
	ev.ScoreAdd = points
	ev.Score = s.score
	s.emit(ev)
}

// gameOver ends the session because of a. Timers stop before anything else
// so none of them can observe the cleared stores.
func (s *Session) gameOver(a *object.Asteroid, reason GameOverReason) {
	s.stopTimers()

	x, y := a.X, a.Y
	s.asteroids.Clear()
	s.bullets.Clear()
	s.explode(x, y)
	s.state = StateGameOver

	s.log.Debug("game over", "reason", reason, "score", s.score, "elapsed", s.elapsed)
	s.emit(Event{
		Type:       EventGameOver,
		AsteroidID: a.ID,
		X:          x,
		Y:          y,
		Score:      s.score,
		Reason:     reason,
	})
}

func (s *Session) explode(x, y float64) {
	s.explosions.Add(object.NewExplosion(s.explosions.NextID(), x, y))
}
