package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Match owns all entities for one game session and advances them one
// fixed tick at a time. All mutation happens inside Step, in a fixed
// order, on a single goroutine; the platform layer owns the timer and
// the quit signal.
type Match struct {
	cfg config.Config

	ball    *Ball
	player  *Paddle
	cpu     *Paddle
	ai      *AI
	judge   *Judge
	control ControlScheme

	ticks int
}

// MatchState is the per-tick view of the score reported to the
// platform.
type MatchState struct {
	PlayerScore int
	CPUScore    int
	Ticks       int
}

// StepResult describes what happened during one tick.
type StepResult struct {
	State        MatchState
	PaddleHit    bool // a paddle deflected the ball this tick
	PlayerScored bool
	CPUScored    bool
}

// NewMatch validates the configuration and builds the match: ball at
// arena center, player paddle on the left wall, CPU paddle on the
// right, both vertically centered. Construction is explicit; nothing
// lives in package scope.
func NewMatch(cfg config.Config) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}

	control, err := NewControlScheme(cfg.Control)
	if err != nil {
		return nil, err
	}

	ball := NewBall(cfg.Ball, cfg.Arena, cfg.Serve.FlipAxis)

	pc := cfg.Paddles.Player
	player := NewPaddle(SidePlayer,
		pc.Offset, cfg.Arena.Height/2,
		pc.Width, pc.Height, pc.MaxSpeed, core.ColorGreen)

	cc := cfg.Paddles.CPU
	cpu := NewPaddle(SideCPU,
		cfg.Arena.Width-cc.Offset-cc.Width, cfg.Arena.Height/2,
		cc.Width, cc.Height, cc.MaxSpeed, core.ColorCyan)

	return &Match{
		cfg:     cfg,
		ball:    ball,
		player:  player,
		cpu:     cpu,
		ai:      NewAI(cpu, ball),
		judge:   NewJudge(),
		control: control,
	}, nil
}

// Step advances the simulation by one tick. Fixed order: apply the
// human control scheme, advance the ball, resolve collisions, run the
// CPU pursuit, then let the judge score. Collision response precedes
// scoring, so a defended edge deflects the ball instead of conceding
// a point.
func (m *Match) Step(in core.InputFrame) StepResult {
	m.ticks++

	// Human paddle
	m.player.Rect.Y = m.control.NextY(m.player, in)
	m.player.ClampToArena(m.cfg.Arena.Height)

	// Ball movement and collision response
	m.ball.Advance()
	m.ball.CollideWalls(m.cfg.Arena.Width, m.cfg.Arena.Height)
	paddleHit := m.ball.CollidePaddles(m.player, m.cpu)

	// CPU pursuit
	m.ai.Track(m.cfg.Arena.Height)

	// Scoring
	scorer, scored := m.judge.Update(m.ball, m.cfg.Arena.Width, paddleHit)

	return StepResult{
		State:        m.State(),
		PaddleHit:    paddleHit,
		PlayerScored: scored && scorer == SidePlayer,
		CPUScored:    scored && scorer == SideCPU,
	}
}

// State returns the current score and tick count.
func (m *Match) State() MatchState {
	return MatchState{
		PlayerScore: m.judge.PlayerScore(),
		CPUScore:    m.judge.CPUScore(),
		Ticks:       m.ticks,
	}
}

// TickRate returns the configured simulation rate in ticks per second.
func (m *Match) TickRate() int {
	return m.cfg.Game.TickRate
}

// Arena returns the logical arena dimensions.
func (m *Match) Arena() (w, h int) {
	return m.cfg.Arena.Width, m.cfg.Arena.Height
}
