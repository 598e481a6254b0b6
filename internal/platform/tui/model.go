package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game.
// Finished rounds are written to the journal.
type GameModel struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	sessionID  string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	painter    *Painter
	tickGen    uint64
	standalone bool // No menu to return to: leaving the game quits
	quitting   bool
	backToMenu bool
}

// GameOptions identifies who is playing and where rounds go.
type GameOptions struct {
	Store      *storage.Store
	Logger     *log.Logger
	Player     string
	SessionID  string
	Standalone bool
	Renderer   *lipgloss.Renderer // Output of the player; nil means stdout
}

// NewGameModel creates a model for the given game.
func NewGameModel(game core.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		player:     opts.Player,
		sessionID:  opts.SessionID,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		painter:    NewPainter(opts.Renderer),
		tickGen:    nextTickGen(),
		standalone: opts.Standalone,
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Outside the finish dialog q leaves
// the game without recording a round; inside it q means Exit.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		return m.leave(true)
	}

	if !m.gameState.Finished {
		switch {
		case m.inputFrame.Has(core.ActionQuit):
			return m.leave(true)
		case m.inputFrame.Has(core.ActionBack) && !m.standalone:
			return m.leave(false)
		}
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Round != nil {
		m.saveRound(*result.Round)
	}
	if result.State.Exit {
		return m.leave(false)
	}

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

func (m GameModel) saveRound(r core.RoundResult) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRound(storage.Round{
		SessionID: m.sessionID,
		Player:    m.player,
		Turns:     r.Turns,
		Seconds:   int64(r.Elapsed.Seconds()),
	})
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
		return
	}
	m.logger.Debug("round saved", "player", m.player, "turns", r.Turns, "elapsed", r.Elapsed)
}

// leave stops the game. In a menu flow it returns to the menu unless quit
// is set; a standalone game always quits.
func (m GameModel) leave(quit bool) (tea.Model, tea.Cmd) {
	m.game.Close()
	if quit || m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	m.backToMenu = true
	return m, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return m.painter.Paint(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player leaves.
func Run(game core.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.Standalone = true
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
