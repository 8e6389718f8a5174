package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Avatar is the player-controlled body.
type Avatar struct {
	box   core.Box
	speed float64 // Vertical speed, positive = down
	dead  bool

	start     core.Box
	gravity   float64
	jumpSpeed float64
	floor     float64 // Fly area height; the ceiling is y = 0
}

// NewAvatar creates an avatar at the configured start position.
func NewAvatar(cfg config.FlappyConfig) Avatar {
	start := core.NewBox(cfg.Avatar.X, cfg.Avatar.Y, cfg.Avatar.Width, cfg.Avatar.Height)
	return Avatar{
		box:       start,
		start:     start,
		gravity:   cfg.Physics.Gravity,
		jumpSpeed: cfg.Physics.JumpSpeed,
		floor:     cfg.Field.FlyAreaHeight,
	}
}

// Reset returns the avatar to its construction-time values.
func (a *Avatar) Reset() {
	a.box = a.start
	a.speed = 0
	a.dead = false
}

// Jump sets the vertical speed to the jump speed. Successive jumps do not stack.
func (a *Avatar) Jump() {
	a.speed = a.jumpSpeed
}

// Update integrates one tick of gravity.
// Crossing the floor stops the avatar on it and kills it; crossing the
// ceiling only clamps the position.
func (a *Avatar) Update() {
	a.speed += a.gravity
	a.box.Y += a.speed

	if a.box.Top() < 0 {
		a.box.Y = 0
	}
	if a.box.Bottom() > a.floor {
		a.box.Y = a.floor - a.box.H
		a.dead = true
	}
}

// Box returns the avatar's hitbox.
func (a Avatar) Box() core.Box {
	return a.box
}

// Speed returns the current vertical speed.
func (a Avatar) Speed() float64 {
	return a.speed
}

// Dead reports whether the avatar has hit the floor.
func (a Avatar) Dead() bool {
	return a.dead
}
