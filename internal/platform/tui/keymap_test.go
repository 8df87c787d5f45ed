package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key        string
		wantAction core.Action
		wantQuit   bool
	}{
		{"w", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"up", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"j", core.ActionDown, false},
		{"down", core.ActionDown, false},
		{"q", core.ActionQuit, true},
		{"esc", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, isQuit := km.MapKey(keyMsg(tc.key))
			if action != tc.wantAction || isQuit != tc.wantQuit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tc.key, action, isQuit, tc.wantAction, tc.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("w"), &frame); quit {
		t.Error("movement key reported as quit")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("frame missing ActionUp after mapping 'w'")
	}

	if quit := km.MapKeyToFrame(keyMsg("x"), &frame); quit {
		t.Error("unbound key reported as quit")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound key recorded in the frame")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("'q' not reported as quit")
	}
}
