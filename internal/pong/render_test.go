package pong

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderSmoke(t *testing.T) {
	m, err := NewMatch(config.Default())
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	screen := core.NewScreen(80, 24)
	m.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Player: 0") {
		t.Error("score line missing the player score")
	}
	if !strings.Contains(out, "Computer: 0") {
		t.Error("score line missing the computer score")
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("ball not drawn")
	}
	if !strings.ContainsRune(out, PaddleChar) {
		t.Error("paddles not drawn")
	}
	if !strings.ContainsRune(out, NetChar) {
		t.Error("net not drawn")
	}
}

func TestRenderBallScalesToScreen(t *testing.T) {
	m, err := NewMatch(config.Default())
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	// Ball center at arena (410, 260) should land near the middle of an
	// 80x24 buffer: 410*80/800 = 41, 260*24/500 = 12.
	screen := core.NewScreen(80, 24)
	m.Render(screen)

	if r := screen.Get(41, 12); r != BallChar {
		t.Errorf("cell (41, 12) = %q, expected the ball", r)
	}
}

func TestRenderThinPaddleStaysVisible(t *testing.T) {
	m, err := NewMatch(config.Default())
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	// A 10-unit wide paddle scales to zero columns on a tiny buffer;
	// the renderer must keep at least one cell.
	screen := core.NewScreen(20, 10)
	m.Render(screen)

	found := false
	for y := 0; y < screen.Height(); y++ {
		if screen.Get(0, y) == PaddleChar {
			found = true
			break
		}
	}
	if !found {
		t.Error("player paddle vanished on a small screen")
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	m, err := NewMatch(config.Default())
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	screen := core.NewScreen(80, 24)
	screen.DrawText(5, 5, "stale")

	m.Render(screen)

	if strings.Contains(screen.String(), "stale") {
		t.Error("previous frame contents survived a render")
	}
}
