// Package pong implements the pong simulation: ball physics, paddle
// movement, the CPU opponent, scoring, and the per-tick match
// orchestrator. All state lives in arena units; rendering scales it to
// the terminal.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball owns its position, size, and velocity. The start position is
// fixed at construction and used by Reset after each point.
type Ball struct {
	Rect core.Rect
	Vel  core.Vec

	start    core.Vec
	flipAxis string
}

// NewBall creates the ball centered in the arena with the configured
// size and velocity. flipAxis selects which velocity component Reset
// negates ("x" or "y").
func NewBall(cfg config.BallConfig, arena config.ArenaConfig, flipAxis string) *Ball {
	start := core.Vec{X: arena.Width / 2, Y: arena.Height / 2}
	return &Ball{
		Rect:     core.NewRect(start.X, start.Y, cfg.Width, cfg.Height),
		Vel:      core.Vec{X: cfg.SpeedX, Y: cfg.SpeedY},
		start:    start,
		flipAxis: flipAxis,
	}
}

// Advance moves the ball by its velocity. Called once per tick,
// unconditionally, before any collision checks.
func (b *Ball) Advance() {
	b.Rect.X += b.Vel.X
	b.Rect.Y += b.Vel.Y
}

// BounceX negates the horizontal velocity component.
func (b *Ball) BounceX() {
	b.Vel.X = -b.Vel.X
}

// BounceY negates the vertical velocity component.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}

// Reset returns the ball to its start position and flips the serve
// axis velocity component, so serves alternate direction each point.
// Speed magnitude never changes.
func (b *Ball) Reset() {
	b.Rect.X = b.start.X
	b.Rect.Y = b.start.Y
	if b.flipAxis == config.FlipAxisX {
		b.BounceX()
	} else {
		b.BounceY()
	}
}

// CollideWalls bounces the ball off the arena edges. Comparisons are
// inclusive: a ball sitting exactly on a boundary bounces every tick
// until it moves off. The x-axis walls reflect too; scoring is the
// judge's concern, not an exit check here.
func (b *Ball) CollideWalls(arenaW, arenaH int) {
	if b.Rect.X <= 0 || b.Rect.Right() >= arenaW {
		b.BounceX()
	}
	if b.Rect.Y <= 0 || b.Rect.Bottom() >= arenaH {
		b.BounceY()
	}
}

// CollidePaddles bounces the ball off every paddle whose bounding box
// intersects it. Returns true if any paddle was hit this tick.
func (b *Ball) CollidePaddles(paddles ...*Paddle) bool {
	hit := false
	for _, p := range paddles {
		if b.Rect.Intersects(p.Rect) {
			b.BounceX()
			hit = true
		}
	}
	return hit
}

// Start returns the configured start position.
func (b *Ball) Start() core.Vec {
	return b.start
}
