package tui

import (
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

// stubGame records its input and plays back scripted results.
type stubGame struct {
	resets int
	closed int
	frames []core.InputFrame
	next   core.StepResult
	w, h   int
	drawn  int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}
func (g *stubGame) Resize(w, h int) { g.w, g.h = w, h }
func (g *stubGame) State() core.GameState { return g.next.State }
func (g *stubGame) Close() { g.closed++ }
func (g *stubGame) Render(dst *core.Screen) {
	g.drawn++
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	res := g.next
	g.next.Round = nil
	return res
}

func newStubModel(t *testing.T, game *stubGame, standalone bool) (GameModel, *storage.Store) {
	t.Helper()
	store, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	m := NewGameModel(game, cfg, GameOptions{
		Store:      store,
		Player:     "alice",
		SessionID:  "s-1",
		Standalone: standalone,
	})
	m.Init()
	return m, store
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func tick(m GameModel) TickMsg {
	return TickMsg{At: time.Now(), Gen: m.tickGen}
}

func TestGameModelPassesInputToGame(t *testing.T) {
	game := &stubGame{}
	m, _ := newStubModel(t, game, false)
	require.Equal(t, 1, game.resets)

	m, _ = update(t, m, keyRunes("f"))
	m, _ = update(t, m, tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, tick(m))

	require.Len(t, game.frames, 1)
	assert.True(t, game.frames[0].Has(core.ActionFinish))
	assert.Equal(t, []core.PointerEvent{{Kind: core.PointerPress, X: 2, Y: 3}}, game.frames[0].Pointer)
	assert.NotNil(t, cmd, "tick loop should continue")

	// Input is consumed by one tick.
	m, _ = update(t, m, tick(m))
	assert.True(t, game.frames[1].Empty())
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	game := &stubGame{}
	m, _ := newStubModel(t, game, false)

	_, cmd := update(t, m, TickMsg{At: time.Now(), Gen: m.tickGen + 100})

	assert.Nil(t, cmd)
	assert.Empty(t, game.frames)
}

func TestGameModelSavesRounds(t *testing.T) {
	game := &stubGame{}
	m, store := newStubModel(t, game, false)

	game.next = core.StepResult{Round: &core.RoundResult{Turns: 6, Elapsed: 95 * time.Second}}
	m, _ = update(t, m, tick(m))
	m, _ = update(t, m, tick(m)) // no round on this tick

	rounds, err := store.SessionRounds("s-1")
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, "alice", rounds[0].Player)
	assert.Equal(t, 6, rounds[0].Turns)
	assert.Equal(t, int64(95), rounds[0].Seconds)
	assert.False(t, m.BackToMenu())
}

func TestGameModelExitReturnsToMenu(t *testing.T) {
	game := &stubGame{}
	m, _ := newStubModel(t, game, false)

	game.next = core.StepResult{
		State: core.GameState{Exit: true},
		Round: &core.RoundResult{Turns: 1},
	}
	m, cmd := update(t, m, tick(m))

	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
	assert.Nil(t, cmd)
	assert.Equal(t, 1, game.closed)
	assert.Empty(t, m.View())
}

func TestStandaloneExitQuits(t *testing.T) {
	game := &stubGame{}
	m, _ := newStubModel(t, game, true)

	game.next = core.StepResult{State: core.GameState{Exit: true}}
	m, cmd := update(t, m, tick(m))

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuitKeyOutsideDialog(t *testing.T) {
	game := &stubGame{}
	m, _ := newStubModel(t, game, false)

	m, cmd := update(t, m, keyRunes("q"))

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuitKeyInsideDialogGoesToGame(t *testing.T) {
	game := &stubGame{next: core.StepResult{State: core.GameState{Finished: true}}}
	m, _ := newStubModel(t, game, false)
	m, _ = update(t, m, tick(m))

	m, _ = update(t, m, keyRunes("q"))
	assert.False(t, m.IsQuitting())

	m, _ = update(t, m, tick(m))
	assert.True(t, game.frames[1].Has(core.ActionQuit))
}

func TestBackKeyLeavesGameInMenuFlow(t *testing.T) {
	game := &stubGame{}
	m, _ := newStubModel(t, game, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.BackToMenu())
}

func TestResizeDoesNotResetGame(t *testing.T) {
	game := &stubGame{}
	m, _ := newStubModel(t, game, false)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 100, game.w)
	assert.Equal(t, 40, game.h)
	assert.Contains(t, m.View(), "stub")
}

func TestSessionModelFlow(t *testing.T) {
	store, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	game := &stubGame{}
	factory := func(*log.Logger) (core.Game, error) { return game, nil }
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	m := NewSessionModel(factory, store, cfg, "bob", nil)

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(SessionModel)
		return cmd
	}

	// Enter on "New game" starts the game.
	step(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel)
	assert.Equal(t, 1, game.resets)

	// Exit from the game records the round and returns to the menu.
	game.next = core.StepResult{State: core.GameState{Exit: true}, Round: &core.RoundResult{Turns: 2}}
	step(TickMsg{At: time.Now(), Gen: m.gameModel.tickGen})
	assert.Nil(t, m.gameModel)

	rounds, err := store.SessionRounds(m.SessionID())
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, "bob", rounds[0].Player)

	// Down + Enter opens the rounds table; esc goes back.
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.rounds)
	assert.Contains(t, m.View(), "ROUNDS")
	step(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.rounds)

	// q in the menu quits.
	cmd := step(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSessionModelFactoryError(t *testing.T) {
	factory := func(*log.Logger) (core.Game, error) { return nil, errors.New("boom") }
	m := NewSessionModel(factory, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "eve", nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)

	assert.Nil(t, m.gameModel)
	assert.Contains(t, m.View(), "boom")
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextWithColor(0, 0, "ab", core.ColorPeach)
	s.DrawText(2, 0, "cd")
	s.SetWithColor(0, 1, '█', core.ColorDarkGray)

	out := RenderScreen(s)

	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "\n")
}

func TestPainterWithoutColorKeepsText(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawTextWithColor(1, 0, "jig", core.ColorPeach)
	s.DrawTextWithColor(4, 0, "saw", core.ColorDarkGray)
	s.SetWithColor(0, 2, '▓', core.ColorBrightYellow)
	s.SetWithColor(7, 2, '#', core.Color(200))

	// A renderer on a non-terminal writer has no colour profile.
	p := NewPainter(lipgloss.NewRenderer(io.Discard))

	assert.Equal(t, s.String(), p.Paint(s))
}

func TestPainterStylesEveryNamedColor(t *testing.T) {
	p := NewPainter(nil)
	for c := range ansiCodes {
		_, ok := p.styles[c]
		assert.True(t, ok, "missing style for %v", c)
	}
	assert.Equal(t, p.plain, p.style(core.Color(200)))
}
