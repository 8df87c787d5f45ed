// Package config provides YAML-based configuration loading and
// validation for the pong match.
package config

import (
	"errors"
	"fmt"
)

// Control scheme identifiers for Config.Control.Scheme.
const (
	SchemeKeyHold = "keyhold" // accelerate while a directional key is held
	SchemePointer = "pointer" // paddle follows the mouse pointer
)

// Serve flip axis identifiers for Config.Serve.FlipAxis.
const (
	FlipAxisX = "x"
	FlipAxisY = "y"
)

// Config contains all tunables for a pong match.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Ball    BallConfig    `yaml:"ball"`
	Paddles PaddlesConfig `yaml:"paddles"`
	Control ControlConfig `yaml:"control"`
	Serve   ServeConfig   `yaml:"serve"`
	Game    GameConfig    `yaml:"game"`
}

// ArenaConfig defines the logical playing field dimensions.
// All simulation coordinates are in these units; the platform scales
// them onto the terminal.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines the ball's size and per-tick speed components.
type BallConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpeedX int `yaml:"speed_x"`
	SpeedY int `yaml:"speed_y"`
}

// PaddlesConfig defines both paddles.
type PaddlesConfig struct {
	Player PaddleConfig `yaml:"player"`
	CPU    PaddleConfig `yaml:"cpu"`
}

// PaddleConfig defines a single paddle's geometry and speed cap.
// Offset is the distance from the owning player's wall.
type PaddleConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Offset   int `yaml:"offset"`
	MaxSpeed int `yaml:"max_speed"`
}

// ControlConfig selects the human control scheme.
type ControlConfig struct {
	Scheme string `yaml:"scheme"` // "keyhold" or "pointer"
	Accel  int    `yaml:"accel"`  // speed increment per held tick (keyhold)
}

// ServeConfig defines serve behavior after a point.
type ServeConfig struct {
	// FlipAxis is the velocity component negated on ball reset: "x" or "y".
	// Variants of this game disagree here; "y" is the canonical choice.
	FlipAxis string `yaml:"flip_axis"`
}

// GameConfig defines loop-level settings.
type GameConfig struct {
	TickRate int `yaml:"tick_rate"` // simulation ticks per second
}

// Validate checks the configuration for values that would corrupt the
// simulation. Called at match construction so bad configs fail fast
// instead of producing degenerate gameplay.
func (c Config) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena dimensions must be positive, got %dx%d", c.Arena.Width, c.Arena.Height))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, fmt.Errorf("ball dimensions must be positive, got %dx%d", c.Ball.Width, c.Ball.Height))
	}
	if c.Ball.SpeedX == 0 {
		errs = append(errs, errors.New("ball speed_x must be non-zero, the ball could never reach a scoring edge"))
	}
	for name, p := range map[string]PaddleConfig{"player": c.Paddles.Player, "cpu": c.Paddles.CPU} {
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s paddle dimensions must be positive, got %dx%d", name, p.Width, p.Height))
		}
		if p.MaxSpeed < 0 {
			errs = append(errs, fmt.Errorf("%s paddle max_speed must be non-negative, got %d", name, p.MaxSpeed))
		}
		if p.Offset < 0 {
			errs = append(errs, fmt.Errorf("%s paddle offset must be non-negative, got %d", name, p.Offset))
		}
	}
	switch c.Control.Scheme {
	case SchemeKeyHold, SchemePointer:
	default:
		errs = append(errs, fmt.Errorf("control scheme must be %q or %q, got %q", SchemeKeyHold, SchemePointer, c.Control.Scheme))
	}
	if c.Control.Scheme == SchemeKeyHold && c.Control.Accel <= 0 {
		errs = append(errs, fmt.Errorf("control accel must be positive for %q, got %d", SchemeKeyHold, c.Control.Accel))
	}
	switch c.Serve.FlipAxis {
	case FlipAxisX, FlipAxisY:
	default:
		errs = append(errs, fmt.Errorf("serve flip_axis must be %q or %q, got %q", FlipAxisX, FlipAxisY, c.Serve.FlipAxis))
	}
	if c.Game.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Game.TickRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
