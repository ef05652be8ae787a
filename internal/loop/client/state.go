package client

import (
	"time"

	"github.com/tomz197/orbit-arcade/internal/input"
	"github.com/tomz197/orbit-arcade/internal/loop/session"
)

// popupFrames is how long a score popup stays on screen.
const popupFrames = 45

// popup is a floating "+5" / "+30" label left where an asteroid was hit.
type popup struct {
	x, y   float64
	text   string
	frames int
}

// ClientState holds per-connection UI state around the game session.
type ClientState struct {
	Input    input.Input
	Running  bool
	Snapshot session.Snapshot // Rendered this frame

	lastInput     time.Time
	isInactive    bool
	shuttingDown  bool
	shutdownTimer time.Duration // Countdown before auto-disconnect on shutdown
	lastReason    session.GameOverReason
	popups        []popup

	// Previous frame's screen, to detect transitions needing a full clear.
	prevState   session.State
	wasInactive bool
	wasShutdown bool
}

// NewClientState creates a new initialized client state.
func NewClientState(now time.Time) *ClientState {
	return &ClientState{
		Running:   true,
		lastInput: now,
		prevState: session.StateIdle,
	}
}

// screenChanged reports whether the screen layout differs from the previous
// frame and records the new one.
func (s *ClientState) screenChanged() bool {
	changed := s.Snapshot.State != s.prevState ||
		s.isInactive != s.wasInactive ||
		s.shuttingDown != s.wasShutdown
	s.prevState = s.Snapshot.State
	s.wasInactive = s.isInactive
	s.wasShutdown = s.shuttingDown
	return changed
}

// agePopups advances popups by one frame and drops expired ones.
func (s *ClientState) agePopups() {
	kept := s.popups[:0]
	for _, p := range s.popups {
		p.frames--
		p.y += 0.02
		if p.frames > 0 {
			kept = append(kept, p)
		}
	}
	s.popups = kept
}
