package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestAIPursuit(t *testing.T) {
	// Paddle at y=0 with max speed 10; ball center 50 units away.
	// The gap must close by exactly 10 per tick until the remainder is
	// within reach, then match it exactly.
	ball := testBall(config.FlipAxisY)
	ball.Rect.Y = 40 // center = 50
	paddle := NewPaddle(SideCPU, 780, 0, 10, 80, 10, core.ColorCyan)
	ai := NewAI(paddle, ball)

	want := []int{10, 20, 30, 40, 50}
	for i, expected := range want {
		ai.Track(500)
		if paddle.Rect.Y != expected {
			t.Fatalf("tick %d: paddle y = %d, expected %d", i+1, paddle.Rect.Y, expected)
		}
	}

	// On target: further tracking must not overshoot
	ai.Track(500)
	if paddle.Rect.Y != 50 {
		t.Errorf("paddle overshot to %d, expected to stay at 50", paddle.Rect.Y)
	}
}

func TestAIPartialFinalStep(t *testing.T) {
	ball := testBall(config.FlipAxisY)
	ball.Rect.Y = 13 // center = 23
	paddle := NewPaddle(SideCPU, 780, 0, 10, 80, 10, core.ColorCyan)
	ai := NewAI(paddle, ball)

	ai.Track(500) // 0 -> 10
	ai.Track(500) // 10 -> 20
	ai.Track(500) // 20 -> 23, remaining delta 3 < max speed

	if paddle.Rect.Y != 23 {
		t.Errorf("paddle y = %d, expected exactly 23", paddle.Rect.Y)
	}
}

func TestAIClampsAtArenaEdge(t *testing.T) {
	ball := testBall(config.FlipAxisY)
	ball.Rect.Y = 495 // center near the bottom wall
	paddle := NewPaddle(SideCPU, 780, 430, 10, 80, 10, core.ColorCyan)
	ai := NewAI(paddle, ball)

	for i := 0; i < 20; i++ {
		ai.Track(500)
	}

	if paddle.Rect.Bottom() > 500 {
		t.Errorf("paddle bottom = %d, must stay within arena height 500", paddle.Rect.Bottom())
	}
}

func TestAIDoesNotPredict(t *testing.T) {
	// The AI reads position only: with the ball centered on the paddle
	// it stays put regardless of where the ball is heading.
	ball := testBall(config.FlipAxisY)
	ball.Rect.Y = 190 // center = 200
	ball.Vel = core.Vec{X: 5, Y: -5}
	paddle := NewPaddle(SideCPU, 780, 200, 10, 80, 10, core.ColorCyan)
	ai := NewAI(paddle, ball)

	ai.Track(500)

	if paddle.Rect.Y != 200 {
		t.Errorf("paddle y = %d, expected 200: pursuit must ignore velocity", paddle.Rect.Y)
	}
}
