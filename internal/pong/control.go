package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// ControlScheme computes the human paddle's next Y position from this
// tick's input frame. The match applies the returned position and then
// clamps the paddle to the arena.
//
// Two schemes exist because the collected variants of this game shipped
// two incompatible control models: continuous pointer-follow and
// discrete accelerate-while-held keys. The configuration picks one.
type ControlScheme interface {
	NextY(p *Paddle, in core.InputFrame) int
}

// NewControlScheme builds the scheme named by the configuration.
func NewControlScheme(cfg config.ControlConfig) (ControlScheme, error) {
	switch cfg.Scheme {
	case config.SchemePointer:
		return &TargetFollow{}, nil
	case config.SchemeKeyHold:
		return &AcceleratingKeyHold{accel: cfg.Accel}, nil
	default:
		return nil, fmt.Errorf("pong: unknown control scheme %q", cfg.Scheme)
	}
}

// TargetFollow centers the paddle on the pointer's row, capped at the
// paddle's MaxSpeed per tick. With no pointer motion this frame the
// paddle holds position; the previous pointer target is not retained
// because the platform re-reports position while the pointer moves.
type TargetFollow struct{}

// NextY implements ControlScheme.
func (t *TargetFollow) NextY(p *Paddle, in core.InputFrame) int {
	target, ok := in.Pointer()
	if !ok {
		return p.Rect.Y
	}
	return p.StepToward(target - p.Rect.H/2)
}

// AcceleratingKeyHold drives the paddle by a velocity that gains a
// fixed increment while a directional action is held and reverts on
// release. Terminals deliver no key-up events, so "held" means the
// action was seen in this tick's frame; key repeat sustains it.
// This is deliberately not routed through MoveTo: the velocity is its
// own state and is not capped by the paddle's MaxSpeed.
type AcceleratingKeyHold struct {
	accel int
	vel   int
}

// NextY implements ControlScheme.
func (a *AcceleratingKeyHold) NextY(p *Paddle, in core.InputFrame) int {
	down := in.Has(core.ActionDown)
	up := in.Has(core.ActionUp)

	switch {
	case down && up:
		a.vel = 0 // opposing increments cancel
	case down:
		a.vel = a.accel
	case up:
		a.vel = -a.accel
	default:
		a.vel = 0 // release reverts the increment
	}

	return p.Rect.Y + a.vel
}

// Velocity returns the current accumulated velocity.
func (a *AcceleratingKeyHold) Velocity() int {
	return a.vel
}
