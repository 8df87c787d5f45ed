package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// maxSessions is the number of history rows loaded into the table.
const maxSessions = 100

// ScoreboardKeyMap defines the key bindings for the session history view.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the session history screen.
type ScoreboardModel struct {
	store    *storage.Store
	stats    storage.SessionStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	loadErr  error
	quitting bool
}

// NewScoreboardModel creates a scoreboard over the given store.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		keys:  DefaultScoreboardKeyMap(),
		help:  help.New(),
	}

	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Player", Width: 8},
		{Title: "Computer", Width: 10},
		{Title: "Points", Width: 8},
		{Title: "Duration", Width: 10},
	}

	var rows []table.Row
	sessions, err := store.RecentSessions(maxSessions)
	if err != nil {
		m.loadErr = err
	}
	for _, s := range sessions {
		rows = append(rows, table.Row{
			s.CreatedAt.Format("2006-01-02 15:04"),
			strconv.Itoa(s.PlayerScore),
			strconv.Itoa(s.CPUScore),
			strconv.Itoa(s.Points),
			fmt.Sprintf("%ds", s.DurationSecs),
		})
	}

	tableHeight := height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	if stats, err := store.Stats(); err == nil {
		m.stats = stats
	}

	return m
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("Session History")

	if m.loadErr != nil {
		return fmt.Sprintf("%s\n\ncould not load sessions: %v\n", title, m.loadErr)
	}

	footer := fmt.Sprintf("Sessions: %d   Player points: %d   Computer points: %d",
		m.stats.Sessions, m.stats.PlayerPoints, m.stats.CPUPoints)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.table.View(),
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(footer),
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the session history until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, width, height))
	_, err := p.Run()
	return err
}
