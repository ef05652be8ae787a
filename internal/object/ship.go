package object

import (
	"math"

	"github.com/tomz197/orbit-arcade/internal/loop/config"
	"github.com/tomz197/orbit-arcade/internal/physics"
)

// Ship is the player-controlled spaceship. It only moves horizontally.
//
// TargetX is authoritative: input updates it synchronously and gameplay
// (firing, ship collision) reads it. X trails behind for smooth rendering.
type Ship struct {
	TargetX float64 // Input-driven position, clamped to [ShipMinX, ShipMaxX]
	X       float64 // Eased render position
	Y       float64 // Fixed height
}

// NewShip creates a ship centred at x = 0.
func NewShip() *Ship {
	return &Ship{Y: config.ShipY}
}

// Reset recentres the ship for a new session.
func (s *Ship) Reset() {
	s.TargetX = 0
	s.X = 0
	s.Y = config.ShipY
}

// MoveLeft steps the ship left by one discrete step.
func (s *Ship) MoveLeft() {
	s.MoveTo(s.TargetX - config.ShipStep)
}

// MoveRight steps the ship right by one discrete step.
func (s *Ship) MoveRight() {
	s.MoveTo(s.TargetX + config.ShipStep)
}

// MoveTo sets the target position from continuous (pointer) input. NaN is
// ignored.
func (s *Ship) MoveTo(x float64) {
	if math.IsNaN(x) {
		return
	}
	s.TargetX = physics.Clamp(x, config.ShipMinX, config.ShipMaxX)
}

// Update eases the render position toward the target.
func (s *Ship) Update() {
	s.X = physics.Ease(s.X, s.TargetX, config.ShipEasing)
}
