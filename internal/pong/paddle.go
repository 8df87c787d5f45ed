package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies who controls a paddle.
type Side int

const (
	SidePlayer Side = iota
	SideCPU
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideCPU:
		return "Computer"
	default:
		return "Unknown"
	}
}

// Paddle moves on the y-axis with a per-tick speed cap and is clamped
// to the arena after every move.
type Paddle struct {
	Rect     core.Rect
	MaxSpeed int
	Side     Side
	Color    core.Color
}

// NewPaddle creates a paddle at the given position.
func NewPaddle(side Side, x, y, w, h, maxSpeed int, color core.Color) *Paddle {
	return &Paddle{
		Rect:     core.NewRect(x, y, w, h),
		MaxSpeed: maxSpeed,
		Side:     side,
		Color:    color,
	}
}

// StepToward returns the paddle's next Y position when tracking
// targetY: the full delta if within MaxSpeed, otherwise capped at
// MaxSpeed in the delta's direction. Pure; does not move the paddle.
func (p *Paddle) StepToward(targetY int) int {
	delta := targetY - p.Rect.Y
	if core.Abs(delta) > p.MaxSpeed {
		if delta > 0 {
			delta = p.MaxSpeed
		} else {
			delta = -p.MaxSpeed
		}
	}
	return p.Rect.Y + delta
}

// MoveTo moves the paddle toward targetY, capped at MaxSpeed per call.
// This yields bounded proportional tracking: it is used both by the
// CPU pursuit and by pointer-driven human control.
func (p *Paddle) MoveTo(targetY int) {
	p.Rect.Y = p.StepToward(targetY)
}

// ClampToArena keeps the paddle's bounding box inside the arena's
// vertical bounds. Applied every tick regardless of who moved it.
func (p *Paddle) ClampToArena(arenaH int) {
	if p.Rect.Y < 0 {
		p.Rect.Y = 0
	}
	if p.Rect.Bottom() > arenaH {
		p.Rect.Y = arenaH - p.Rect.H
	}
}
