package session

import "fmt"

// State is the lifecycle phase of a session.
type State int

const (
	StateIdle     State = iota // Before the first start
	StatePlaying               // Timers running, input accepted
	StateGameOver              // Score frozen, waiting for restart
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// EventType identifies a gameplay event reported to the host.
type EventType int

const (
	EventSessionStarted EventType = iota
	EventAsteroidHit
	EventAsteroidDestroyed
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventSessionStarted:
		return "session_started"
	case EventAsteroidHit:
		return "asteroid_hit"
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("event(%d)", int(t))
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// GameOverReason says how an asteroid ended the session.
type GameOverReason int

const (
	ReasonNone          GameOverReason = iota
	ReasonShipCollision                // Asteroid touched the ship
	ReasonPassThrough                  // Asteroid got past the ship
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonShipCollision:
		return "ship_collision"
	case ReasonPassThrough:
		return "pass_through"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

func (r GameOverReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Event is emitted synchronously through Options.OnEvent. Hosts use events
// for cosmetic reactions only; the simulation never depends on them.
type Event struct {
	Type       EventType      `json:"type"`
	AsteroidID int            `json:"asteroid_id,omitempty"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	ScoreAdd   int            `json:"score_add,omitempty"`
	Score      int            `json:"score"`
	Reason     GameOverReason `json:"reason,omitempty"`
}
