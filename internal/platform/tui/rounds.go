package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/session"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

const maxRounds = 100 // Max rounds to load

// RoundsKeyMap defines the key bindings for the rounds screen.
type RoundsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RoundsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RoundsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultRoundsKeyMap returns default key bindings.
func DefaultRoundsKeyMap() RoundsKeyMap {
	return RoundsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "all/mine"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RoundsModel lists the rounds in the journal: every round of the server
// or only those of the current session.
type RoundsModel struct {
	store     *storage.Store
	sessionID string
	mine      bool // Only this session's rounds
	rounds    []storage.Round
	stats     storage.Stats
	err       error
	table     table.Model
	help      help.Model
	keys      RoundsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRoundsModel creates a rounds screen for the given session.
func NewRoundsModel(store *storage.Store, sessionID string, width, height int) RoundsModel {
	h := help.New()
	h.ShowAll = false

	m := RoundsModel{
		store:     store,
		sessionID: sessionID,
		keys:      DefaultRoundsKeyMap(),
		help:      h,
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *RoundsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Turns", Width: 6},
		{Title: "Time", Width: 9},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads rounds and totals from the journal.
func (m *RoundsModel) load() {
	m.rounds, m.err = nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.mine {
		m.rounds, m.err = m.store.SessionRounds(m.sessionID)
	} else {
		m.rounds, m.err = m.store.RecentRounds(maxRounds)
	}
	if m.err == nil {
		m.stats, m.err = m.store.Stats()
	}
	m.updateTableRows()
}

func (m *RoundsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Player,
			fmt.Sprintf("%d", r.Turns),
			clockText(r.Seconds),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// clockText renders seconds as "h:m:s" like the in-game clock.
func clockText(secs int64) string {
	return session.FormatClock(time.Duration(secs) * time.Second)
}

// Init initializes the rounds model.
func (m RoundsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rounds screen.
func (m RoundsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.mine = !m.mine
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the rounds screen.
func (m RoundsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	title := "ROUNDS - everyone"
	if m.mine {
		title = "ROUNDS - this session"
	}
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")

	summary := fmt.Sprintf("%d rounds  %d turns  %s played  best %d turns",
		m.stats.Rounds, m.stats.Turns, clockText(m.stats.Seconds), m.stats.BestTurns)
	b.WriteString(centerText(subtle.Render(summary), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))
	b.WriteString("\n")

	b.WriteString(subtle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m RoundsModel) renderTableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return empty.Render("Could not read rounds:\n" + m.err.Error())
	case len(m.rounds) == 0:
		return empty.Render("No rounds yet.\nFinish a game to record one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RoundsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RoundsModel) IsQuitting() bool {
	return m.quitting
}
