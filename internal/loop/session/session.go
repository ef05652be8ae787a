// Package session implements one player's arcade game: the lifecycle state
// machine, the per-frame simulation step and the timers that feed it.
//
// A Session is not safe for concurrent use. The host confines it to a single
// goroutine that both delivers input and calls Tick once per rendered frame;
// timers fire from inside Tick on that same goroutine.
package session

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/orbit-arcade/internal/invariant"
	"github.com/tomz197/orbit-arcade/internal/logging"
	"github.com/tomz197/orbit-arcade/internal/loop/config"
	"github.com/tomz197/orbit-arcade/internal/object"
	"github.com/tomz197/orbit-arcade/internal/timer"
)

// Options configures a Session. Zero values pick the wall clock, a
// time-seeded random source and a discarding logger.
type Options struct {
	Clock   timer.Clock
	Rand    *rand.Rand
	Logger  *log.Logger
	OnEvent func(Event)
}

// Session owns the ship, the entity stores, the score and the timers of one
// game.
type Session struct {
	state    State
	score    int
	elapsed  int // Whole seconds of play, drives difficulty
	frame    uint64
	hits     int
	destroys int
	closed   bool

	ship       *object.Ship
	bullets    *object.Store[*object.Bullet]
	asteroids  *object.Store[*object.Asteroid]
	explosions *object.Store[*object.Explosion]
	spawner    *object.Spawner

	clock  timer.Clock
	sched  *timer.Scheduler
	timers []*timer.Timer // Non-nil exactly while playing

	scratch []*object.Asteroid // Reused by the collision pass

	log     *log.Logger
	onEvent func(Event)
}

// New creates an idle session.
func New(opts Options) *Session {
	clock := opts.Clock
	if clock == nil {
		clock = timer.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Session{
		state:      StateIdle,
		ship:       object.NewShip(),
		bullets:    object.NewStore[*object.Bullet](),
		asteroids:  object.NewStore[*object.Asteroid](),
		explosions: object.NewStore[*object.Explosion](),
		spawner:    object.NewSpawner(opts.Rand),
		clock:      clock,
		sched:      timer.NewScheduler(),
		log:        logger,
		onEvent:    opts.OnEvent,
	}
}

// State returns the lifecycle phase.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Elapsed returns whole seconds of play in the current session.
func (s *Session) Elapsed() int { return s.elapsed }

// Start begins the first game. Only accepted while idle.
func (s *Session) Start() bool {
	if s.closed || s.state != StateIdle {
		return false
	}
	s.reset()
	return true
}

// Restart begins a new game after a game over. Only accepted in that state.
func (s *Session) Restart() bool {
	if s.closed || s.state != StateGameOver {
		return false
	}
	s.reset()
	return true
}

// MoveLeft steps the ship left. Ignored unless playing.
func (s *Session) MoveLeft() {
	if s.playing() {
		s.ship.MoveLeft()
	}
}

// MoveRight steps the ship right. Ignored unless playing.
func (s *Session) MoveRight() {
	if s.playing() {
		s.ship.MoveRight()
	}
}

// MoveTo moves the ship toward x from pointer input. Ignored unless playing.
func (s *Session) MoveTo(x float64) {
	if s.playing() {
		s.ship.MoveTo(x)
	}
}

// Fire shoots once from the ship's current position, on top of the
// automatic fire cadence. Ignored unless playing.
func (s *Session) Fire() {
	if s.playing() {
		s.shoot()
	}
}

// Tick runs one frame: due timers, movement, collision resolution and
// explosion aging. Movement and collisions only run while playing; the
// explosions of a finished game keep animating.
func (s *Session) Tick() {
	if s.closed {
		return
	}
	s.frame++
	now := s.clock.Now()
	s.sched.Advance(now)

	s.ship.Update()
	if s.state == StatePlaying {
		object.UpdateAll(s.bullets)
		object.UpdateAll(s.asteroids)
		s.resolveCollisions(now)
	}
	object.UpdateAll(s.explosions)
}

// Close tears the session down when its view is exited. Timers stop and every
// later call is ignored.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.stopTimers()
	s.closed = true
	s.log.Debug("session closed", "state", s.state, "score", s.score)
}

// reset performs the start/restart transition.
func (s *Session) reset() {
	s.stopTimers()

	s.score = 0
	s.elapsed = 0
	s.hits = 0
	s.destroys = 0
	s.bullets.Clear()
	s.asteroids.Clear()
	s.explosions.Clear()
	s.ship.Reset()
	s.spawner.InitialWave(s.asteroids)

	s.state = StatePlaying
	s.startTimers()

	s.log.Debug("session started", "asteroids", s.asteroids.Len())
	s.emit(Event{Type: EventSessionStarted})
}

func (s *Session) startTimers() {
	invariant.Check(s.timers == nil, "timers started twice")
	now := s.clock.Now()
	s.timers = []*timer.Timer{
		s.sched.Every(now, config.AutoFireInterval, s.autoFire),
		s.sched.EveryFunc(now, s.spawnInterval, s.spawnAsteroid),
		s.sched.Every(now, config.GameClockInterval, s.advanceClock),
	}
}

// stopTimers cancels the session timers. Safe to call when none run. The
// session is the scheduler's only user.
func (s *Session) stopTimers() {
	if s.timers == nil {
		return
	}
	live := s.sched.StopAll()
	invariant.Check(live == len(s.timers), "%d of %d session timers live at stop", live, len(s.timers))
	s.timers = nil
}

func (s *Session) playing() bool {
	return !s.closed && s.state == StatePlaying
}

// active guards timer callbacks against firing into a session that already
// left the playing state.
func (s *Session) active(timerName string) bool {
	return invariant.Check(s.state == StatePlaying, "%s timer fired while %s", timerName, s.state)
}

func (s *Session) autoFire() {
	if s.active("auto-fire") {
		s.shoot()
	}
}

func (s *Session) spawnAsteroid() {
	if s.active("spawn") {
		s.spawner.Asteroid(s.asteroids, object.DifficultyAt(s.elapsed))
	}
}

func (s *Session) advanceClock() {
	if s.active("game clock") {
		s.elapsed++
	}
}

func (s *Session) spawnInterval() time.Duration {
	return object.SpawnInterval(s.elapsed)
}

func (s *Session) shoot() {
	s.spawner.Bullet(s.bullets, s.ship.TargetX)
}

func (s *Session) emit(ev Event) {
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}
