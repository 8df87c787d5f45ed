package pong

// AI is the CPU opponent. It holds references to the ball it watches
// and the paddle it commands; it owns neither.
//
// The strategy is bounded-speed pursuit of the ball's current center:
// no velocity reading, no prediction, no difficulty levels. A fast
// direction change can beat it.
type AI struct {
	paddle *Paddle
	ball   *Ball
}

// NewAI creates a controller for the given paddle and ball.
func NewAI(paddle *Paddle, ball *Ball) *AI {
	return &AI{paddle: paddle, ball: ball}
}

// Track moves the paddle toward the ball's current center Y, capped at
// the paddle's MaxSpeed, then clamps it to the arena.
func (a *AI) Track(arenaH int) {
	a.paddle.MoveTo(a.ball.Rect.CenterY())
	a.paddle.ClampToArena(arenaH)
}
