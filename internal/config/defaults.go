package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in match configuration: an 800x500 arena,
// a 20x20 ball moving 5 units per tick on each axis, and 10x80 paddles
// capped at 10 units per tick, simulated at 30 ticks per second.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  800,
			Height: 500,
		},
		Ball: BallConfig{
			Width:  20,
			Height: 20,
			SpeedX: 5,
			SpeedY: 5,
		},
		Paddles: PaddlesConfig{
			Player: PaddleConfig{
				Width:    10,
				Height:   80,
				Offset:   0,
				MaxSpeed: 10,
			},
			CPU: PaddleConfig{
				Width:    10,
				Height:   80,
				Offset:   10,
				MaxSpeed: 10,
			},
		},
		Control: ControlConfig{
			Scheme: SchemeKeyHold,
			Accel:  7,
		},
		Serve: ServeConfig{
			FlipAxis: FlipAxisY,
		},
		Game: GameConfig{
			TickRate: 30,
		},
	}
}
