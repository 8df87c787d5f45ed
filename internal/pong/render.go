package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering.
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render draws the current match state into the screen buffer, scaling
// arena units down to screen cells. Draw order is net, paddles, ball,
// then the score line, so the score always sits on top.
func (m *Match) Render(dst *core.Screen) {
	dst.Clear()

	// Center line (net)
	centerX := dst.Width() / 2
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.SetCell(centerX, y, NetChar, core.ColorGray)
	}

	m.drawRect(dst, m.player.Rect, PaddleChar, m.player.Color)
	m.drawRect(dst, m.cpu.Rect, PaddleChar, m.cpu.Color)

	cx, cy := m.ball.Rect.Center()
	bx, by := m.scalePoint(dst, cx, cy)
	dst.SetCell(bx, by, BallChar, core.ColorRed)

	// Score line
	playerText := fmt.Sprintf("Player: %d", m.judge.PlayerScore())
	cpuText := fmt.Sprintf("Computer: %d", m.judge.CPUScore())
	dst.DrawTextColored(centerX-len(playerText)-2, 0, playerText, core.ColorWhite)
	dst.DrawTextColored(centerX+3, 0, cpuText, core.ColorWhite)
}

// scalePoint maps an arena coordinate onto the screen buffer.
func (m *Match) scalePoint(dst *core.Screen, x, y int) (int, int) {
	sx := x * dst.Width() / m.cfg.Arena.Width
	sy := y * dst.Height() / m.cfg.Arena.Height
	return core.Clamp(sx, 0, dst.Width()-1), core.Clamp(sy, 0, dst.Height()-1)
}

// drawRect draws an arena-space rectangle as screen cells, keeping at
// least one cell in each dimension so thin entities stay visible.
func (m *Match) drawRect(dst *core.Screen, r core.Rect, fill rune, c core.Color) {
	x1, y1 := m.scalePoint(dst, r.X, r.Y)
	x2, y2 := m.scalePoint(dst, r.Right(), r.Bottom())
	w := core.Max(1, x2-x1)
	h := core.Max(1, y2-y1)
	dst.DrawRect(core.NewRect(x1, y1, w, h), fill, c)
}
