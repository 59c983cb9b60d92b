package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Avatar is the player-controlled body. X and Y are the center of its hitbox.
// Velocity changes only through gravity in Update and through Flap.
type Avatar struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Velocity float64 // Units per tick, positive is down

	gravity   float64
	impulse   float64
	floorLine float64
	startY    float64
}

// NewAvatar creates an avatar in its reset position.
func NewAvatar(cfg config.FlappyConfig) Avatar {
	a := Avatar{
		X:         cfg.Avatar.X,
		Width:     cfg.Avatar.Width,
		Height:    cfg.Avatar.Height,
		gravity:   cfg.Physics.Gravity,
		impulse:   cfg.Physics.FlapImpulse,
		floorLine: cfg.FloorLine(),
		startY:    cfg.Playfield.Height / 3,
	}
	a.Reset()
	return a
}

// Left returns the x-coordinate of the left edge.
func (a Avatar) Left() float64 { return a.X - a.Width/2 }

// Right returns the x-coordinate of the right edge.
func (a Avatar) Right() float64 { return a.X + a.Width/2 }

// Top returns the y-coordinate of the upper edge.
func (a Avatar) Top() float64 { return a.Y - a.Height/2 }

// Bottom returns the y-coordinate of the lower edge.
func (a Avatar) Bottom() float64 { return a.Y + a.Height/2 }

// Update applies one tick of physics while the session is active.
// It returns true when the avatar reached the ground, which ends the session.
// Touching the ceiling only stops upward motion.
func (a *Avatar) Update(active bool) (grounded bool) {
	if !active {
		return false
	}

	a.Velocity += a.gravity
	a.Y += a.Velocity

	if a.Bottom() >= a.floorLine {
		a.Y = a.floorLine - a.Height/2
		grounded = true
	}

	if a.Top() <= 0 {
		a.Y = a.Height / 2
		a.Velocity = 0
	}

	return grounded
}

// Flap replaces the current velocity with the upward impulse.
func (a *Avatar) Flap() {
	a.Velocity = a.impulse
}

// Reset puts the avatar at one third of the playfield height, at rest.
func (a *Avatar) Reset() {
	a.Y = a.startY
	a.Velocity = 0
}
