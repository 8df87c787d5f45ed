package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Model is the Bubble Tea model for running a pong match. It drains
// buffered input into an InputFrame between ticks and steps the match
// once per TickMsg; the simulation itself never sees terminal events.
type Model struct {
	match        *pong.Match
	screen       *core.Screen
	store        *storage.Store
	keys         *KeyMapper
	inputFrame   core.InputFrame
	state        pong.MatchState
	startedAt    time.Time
	quitting     bool
	sessionSaved bool
}

// NewModel creates a model for the given match. store may be nil; the
// match then runs without session history.
func NewModel(match *pong.Match, store *storage.Store, screenW, screenH int) Model {
	return Model{
		match:      match,
		screen:     core.NewScreen(screenW, screenH),
		store:      store,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.match.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse buffers pointer motion, converting the cell row to arena
// units. Last write within a tick wins.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen.Height() > 0 {
		_, arenaH := m.match.Arena()
		m.inputFrame.SetPointer(msg.Y * arenaH / m.screen.Height())
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.match.Step(m.inputFrame)
	m.state = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.match.TickRate())
}

// saveSession writes the session summary once, on the way out.
// Best effort: a storage failure never blocks quitting.
func (m *Model) saveSession() {
	if m.store == nil || m.sessionSaved {
		return
	}
	//nolint:errcheck // Best-effort save on quit
	m.store.SaveSession(storage.SessionRecord{
		PlayerScore:  m.state.PlayerScore,
		CPUScore:     m.state.CPUScore,
		Points:       m.state.PlayerScore + m.state.CPUScore,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
	})
	m.sessionSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.match.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given match and blocks
// until the player quits.
func Run(match *pong.Match, store *storage.Store, screenW, screenH int) error {
	model := NewModel(match, store, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer control needs motion events
	)

	_, err := p.Run()
	return err
}
