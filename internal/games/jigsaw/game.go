// Package jigsaw implements the jigsaw placement game on top of the
// session, placement and shape packages: the terminal layout, mouse and
// keyboard handling, the finish dialog and rendering.
package jigsaw

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/placement"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/session"
)

const (
	// ID is the game identifier used in round records.
	ID = "jigsaw"

	hudHeight  = 3 // Title, status and message lines above the board
	helpHeight = 2 // Blank line and help line below the board
)

// Game implements core.Game for the jigsaw board.
type Game struct {
	cfg     config.JigsawConfig
	palette config.Palette
	logger  *log.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	opts    []session.Option

	session *session.Session
	tick    uint64

	// Screen layout
	screenW, screenH int
	tooSmall         bool
	boardX, boardY   int
	homeX, homeY     int
	finishBtn        core.Rect

	// Held piece position in screen cells (top-left of its 3x3 window).
	// It stays on the board's cell lattice.
	pieceX, pieceY int
	drag           dragState

	finished bool
	report   session.Report
	status   string
	exit     bool
}

type dragState struct {
	active       bool
	grabX, grabY int // Pointer offset from the piece origin
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the game logger. Sessions log through it as well.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithContext bounds the lifetime of session clocks.
func WithContext(ctx context.Context) Option {
	return func(g *Game) { g.ctx = ctx }
}

// WithSessionOptions passes extra options to every session the game creates.
func WithSessionOptions(opts ...session.Option) Option {
	return func(g *Game) { g.opts = append(g.opts, opts...) }
}

// New creates a jigsaw game. Reset must be called before the first Step.
func New(cfg config.JigsawConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("jigsaw: %w", err)
	}
	g := &Game{
		cfg:     cfg,
		palette: cfg.Colors.Palette(),
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Jigsaw"
}

// Reset starts a new session and lays the board out for the screen size.
// A non-zero seed makes the piece sequence reproducible.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.Close()

	opts := append([]session.Option{session.WithLogger(g.logger)}, g.opts...)
	if rc.Seed != 0 {
		opts = append(opts, session.WithSeed(rc.Seed))
	}
	s, err := session.New(g.cfg, opts...)
	if err != nil {
		// Config was validated in New.
		panic(err)
	}

	ctx, cancel := context.WithCancel(g.ctx)
	g.session = s
	g.cancel = cancel
	g.tick = 0
	g.finished = false
	g.report = session.Report{}
	g.status = ""
	g.exit = false
	g.drag = dragState{}

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.sendHome()
	s.Start(ctx)
	g.logger.Debug("game reset", "session", s.ID(), "seed", rc.Seed)
}

// Close stops the session clock.
func (g *Game) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	if g.session != nil {
		g.session.Close()
	}
}

// Session returns the current session.
func (g *Game) Session() *session.Session {
	return g.session
}

// Resize recomputes the screen layout. A piece being dragged or parked on
// the board keeps its offset from the board.
func (g *Game) Resize(w, h int) {
	relX, relY := g.pieceX-g.boardX, g.pieceY-g.boardY

	g.screenW, g.screenH = w, h
	contentW := g.contentWidth()
	g.tooSmall = w < contentW+2 || h < g.contentHeight()

	originX := max((w-contentW)/2, 0)
	g.boardX = originX
	g.boardY = hudHeight
	// One empty cell column between the board and the home slot.
	g.homeX = g.boardX + (g.cols()+1)*g.cpc()
	g.homeY = g.boardY

	label := finishLabel
	g.finishBtn = core.NewRect(originX+contentW-len(label), 1, len(label), 1)

	g.pieceX, g.pieceY = g.boardX+relX, g.boardY+relY
}

// Step processes one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.tooSmall || g.exit {
		return core.StepResult{State: g.State()}
	}

	var round *core.RoundResult
	if g.finished {
		round = g.stepDialog(in)
	} else {
		g.stepBoard(in)
	}
	return core.StepResult{State: g.State(), Round: round}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Turns:    g.session.PlacedCount(),
		Elapsed:  g.session.Elapsed(),
		Finished: g.finished,
		Exit:     g.exit,
	}
}

func (g *Game) stepBoard(in core.InputFrame) {
	for _, ev := range in.Pointer {
		g.handlePointer(ev)
		if g.finished {
			return
		}
	}

	if in.Has(core.ActionFinish) {
		g.finish()
		return
	}
	if g.drag.active {
		return
	}

	switch {
	case in.Has(core.ActionLeft):
		g.movePiece(-g.cpc(), 0)
	case in.Has(core.ActionRight):
		g.movePiece(g.cpc(), 0)
	case in.Has(core.ActionUp):
		g.movePiece(0, -g.rpc())
	case in.Has(core.ActionDown):
		g.movePiece(0, g.rpc())
	}
	if in.Has(core.ActionConfirm) {
		g.drop()
	}
}

func (g *Game) handlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerPress:
		if g.finishBtn.Contains(ev.X, ev.Y) {
			g.finish()
			return
		}
		if g.onPiece(ev.X, ev.Y) {
			g.drag = dragState{active: true, grabX: ev.X - g.pieceX, grabY: ev.Y - g.pieceY}
		}
	case core.PointerDrag:
		if g.drag.active {
			g.placePiece(ev.X-g.drag.grabX, ev.Y-g.drag.grabY)
		}
	case core.PointerRelease:
		if !g.drag.active {
			return
		}
		g.placePiece(ev.X-g.drag.grabX, ev.Y-g.drag.grabY)
		g.drag = dragState{}
		g.drop()
	}
}

func (g *Game) stepDialog(in core.InputFrame) *core.RoundResult {
	reset, exit := in.Has(core.ActionRestart), in.Has(core.ActionQuit)
	for _, ev := range in.Pointer {
		if ev.Kind != core.PointerPress {
			continue
		}
		d := g.dialog()
		switch {
		case d.reset.Contains(ev.X, ev.Y):
			reset = true
		case d.exit.Contains(ev.X, ev.Y):
			exit = true
		}
	}

	switch {
	case exit:
		g.exit = true
		return g.endRound()
	case reset:
		round := g.endRound()
		g.session.Reset()
		g.finished = false
		g.status = ""
		g.sendHome()
		return round
	case in.Has(core.ActionBack):
		g.finished = false
	}
	return nil
}

func (g *Game) endRound() *core.RoundResult {
	return &core.RoundResult{Turns: g.report.Turns, Elapsed: g.report.Elapsed}
}

func (g *Game) finish() {
	g.drag = dragState{}
	g.report = g.session.Finish()
	g.finished = true
}

// drop resolves the held piece at its current position. An accepted piece
// is replaced by a new one at home; a rejected one stays where it is.
func (g *Game) drop() {
	out := g.session.Drop(g.gridBounds(), g.pieceOrigin())
	g.status = statusText(out)
	if out.Accepted {
		g.sendHome()
	}
}

func statusText(out placement.Outcome) string {
	switch out.Reason {
	case placement.ReasonNone:
		return fmt.Sprintf("Placed at %s", out.Dest)
	case placement.ReasonOutOfBounds:
		return "Drop the piece over the board"
	case placement.ReasonOverhang:
		return "The piece does not fit there"
	case placement.ReasonOccupied:
		return "Those cells are taken"
	default:
		return ""
	}
}

func (g *Game) sendHome() {
	g.pieceX, g.pieceY = g.homeX, g.homeY
}

func (g *Game) movePiece(dx, dy int) {
	g.placePiece(g.pieceX+dx, g.pieceY+dy)
}

// placePiece moves the piece origin to the lattice point nearest (x, y),
// keeping its window on screen. Lattice points are whole cells away from
// the board origin, so the drawn tiles always cover the cells the drop
// resolves to.
func (g *Game) placePiece(x, y int) {
	g.pieceX = snap(x, g.boardX, g.cpc(), max(g.screenW-g.pieceSlotWidth(), 0))
	g.pieceY = snap(y, g.boardY, g.rpc(), max(g.screenH-g.pieceSlotHeight(), 0))
}

// snap rounds v to the nearest origin+k*step inside [0, hi]. When no
// lattice point fits, v is clamped instead.
func snap(v, origin, step, hi int) int {
	k := int(math.Floor(float64(v-origin)/float64(step) + 0.5))
	v = origin + k*step
	for v > hi && v-step >= 0 {
		v -= step
	}
	for v < 0 && v+step <= hi {
		v += step
	}
	return core.Clamp(v, 0, hi)
}

// onPiece reports whether (x, y) is on one of the held piece's tiles,
// including the gap characters around them.
func (g *Game) onPiece(x, y int) bool {
	for _, tile := range g.pieceTiles() {
		hit := core.NewRect(tile.X-1, tile.Y-1, tile.W+2, tile.H+2)
		if hit.Contains(x, y) {
			return true
		}
	}
	return false
}

// pieceTiles projects the held piece's pixel tiles onto the screen. A tile
// covers the body of the board cell under it, without the separator lines.
func (g *Game) pieceTiles() []core.Rect {
	rects := g.session.Held().Rects()
	tiles := make([]core.Rect, len(rects))
	for i, r := range rects {
		x, y := g.toScreen(r.Min())
		w, h := g.toScreenSpan(r.W, r.H)
		tiles[i] = core.NewRect(g.pieceX+x+1, g.pieceY+y+1, w-1, h-1)
	}
	return tiles
}

// toPixel projects a screen cell onto the pixel plane used for drop
// resolution: one board cell (cols/rows per cell) spans one pitch.
func (g *Game) toPixel(x, y int) core.PointF {
	pitch := g.cfg.Geometry.Pitch()
	return core.PointF{
		X: float64(x) * pitch / float64(g.cpc()),
		Y: float64(y) * pitch / float64(g.rpc()),
	}
}

// toScreen is the inverse of toPixel, rounding down.
func (g *Game) toScreen(p core.PointF) (x, y int) {
	pitch := g.cfg.Geometry.Pitch()
	return int(math.Floor(p.X * float64(g.cpc()) / pitch)),
		int(math.Floor(p.Y * float64(g.rpc()) / pitch))
}

// toScreenSpan converts a pixel size to screen cells, rounding up.
func (g *Game) toScreenSpan(w, h float64) (int, int) {
	pitch := g.cfg.Geometry.Pitch()
	return int(math.Ceil(w * float64(g.cpc()) / pitch)),
		int(math.Ceil(h * float64(g.rpc()) / pitch))
}

// gridBounds places the grid at the pixel origin; pieceOrigin is measured
// from the board's top-left so both sides of the drop share one origin.
func (g *Game) gridBounds() core.RectF {
	return g.session.Layout().Bounds(core.PointF{})
}

func (g *Game) pieceOrigin() core.PointF {
	return g.toPixel(g.pieceX-g.boardX, g.pieceY-g.boardY)
}

func (g *Game) cpc() int  { return g.cfg.Terminal.ColsPerCell }
func (g *Game) rpc() int  { return g.cfg.Terminal.RowsPerCell }
func (g *Game) rows() int { return g.cfg.Board.Rows }
func (g *Game) cols() int { return g.cfg.Board.Cols }

func (g *Game) boardWidth() int  { return g.cols()*g.cpc() + 1 }
func (g *Game) boardHeight() int { return g.rows()*g.rpc() + 1 }

func (g *Game) pieceSlotWidth() int  { return 3*g.cpc() + 1 }
func (g *Game) pieceSlotHeight() int { return 3*g.rpc() + 1 }

func (g *Game) contentWidth() int  { return (g.cols()+1)*g.cpc() + g.pieceSlotWidth() }
func (g *Game) contentHeight() int { return hudHeight + g.boardHeight() + helpHeight }
