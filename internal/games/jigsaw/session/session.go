// Package session holds the state of one jigsaw game: the board, the held
// piece, the placed-piece counter and the session clock.
//
// A Session is owned by a single goroutine (the UI loop). Only the clock
// runs in the background, and its value is read through an atomic.
package session

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/board"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/placement"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/shape"
)

// Session is a single game: grid, held piece, counters and clock.
type Session struct {
	id       string
	cfg      config.JigsawConfig
	layout   board.Layout
	grid     *board.Grid
	catalog  *shape.Catalog
	resolver *placement.Resolver
	timer    *Timer
	rng      *rand.Rand
	logger   *log.Logger
	ctx      context.Context

	held   shape.Tetromino
	placed int
}

// Option configures a Session.
type Option func(*options)

type options struct {
	id     string
	rng    *rand.Rand
	logger *log.Logger
	ticker TickerFunc
}

// WithSeed seeds the piece generator for reproducible games.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTicker replaces the clock's tick source.
func WithTicker(t TickerFunc) Option {
	return func(o *options) { o.ticker = t }
}

// WithID sets the session ID instead of generating one.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// New creates a session from a validated configuration. The clock is not
// started until Start is called.
func New(cfg config.JigsawConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	logger := o.logger.With("session", o.id)

	layout := board.Layout{
		Rows:     cfg.Board.Rows,
		Cols:     cfg.Board.Cols,
		CellSize: cfg.Geometry.CellSize,
		Padding:  cfg.Geometry.Padding,
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		id:       o.id,
		cfg:      cfg,
		layout:   layout,
		grid:     board.NewGrid(cfg.Board.Rows, cfg.Board.Cols, cfg.Board.Block),
		catalog:  shape.NewCatalog(layout.Pitch()),
		resolver: placement.New(layout, placement.WithLogger(logger)),
		timer:    NewTimer(cfg.Timer.Tick, o.ticker),
		rng:      o.rng,
		logger:   logger,
		ctx:      context.Background(),
	}
	s.held = s.catalog.Random(s.rng)
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.JigsawConfig { return s.cfg }

// Layout returns the pixel layout of the grid.
func (s *Session) Layout() board.Layout { return s.layout }

// Grid returns the board. Callers must treat it as read-only; cells are
// filled through Drop and cleared through Reset.
func (s *Session) Grid() *board.Grid { return s.grid }

// Catalog returns the piece catalog.
func (s *Session) Catalog() *shape.Catalog { return s.catalog }

// Held returns the piece waiting to be placed.
func (s *Session) Held() shape.Tetromino { return s.held }

// PlacedCount returns how many pieces have been placed since the last reset.
func (s *Session) PlacedCount() int { return s.placed }

// Elapsed returns the session clock.
func (s *Session) Elapsed() time.Duration { return s.timer.Elapsed() }

// ElapsedSeconds returns the session clock in whole seconds.
func (s *Session) ElapsedSeconds() int64 { return int64(s.timer.Elapsed() / time.Second) }

// Clock returns the session clock as "h:m:s".
func (s *Session) Clock() string { return FormatClock(s.Elapsed()) }

// Start starts the clock. The clock stops when ctx is cancelled.
func (s *Session) Start(ctx context.Context) {
	s.ctx = ctx
	s.timer.Start(ctx)
	s.logger.Debug("session started")
}

// Drop tries to place the held piece with its origin at pieceOrigin over a
// grid drawn at gridBounds. On acceptance the covered cells are filled, the
// placed counter goes up by one and a new piece is drawn.
func (s *Session) Drop(gridBounds core.RectF, pieceOrigin core.PointF) placement.Outcome {
	out := s.resolver.ResolveDrop(s.grid, gridBounds, pieceOrigin, s.held)
	if !out.Accepted {
		return out
	}
	s.placed++
	s.held = s.catalog.Random(s.rng)
	return out
}

// Reset starts a new game: every cell is cleared, the counter is zeroed, a
// new piece is drawn and the clock restarts from zero.
func (s *Session) Reset() {
	s.grid.Clear()
	s.placed = 0
	s.held = s.catalog.Random(s.rng)
	s.timer.Restart(s.ctx)
	s.logger.Info("session reset")
}

// Finish returns the summary shown when the player ends the game.
// The session keeps running; call Reset or Close afterwards.
func (s *Session) Finish() Report {
	r := Report{Elapsed: s.Elapsed(), Turns: s.placed}
	s.logger.Info("session finished", "elapsed", r.TimeText(), "turns", r.Turns)
	return r
}

// Close stops the clock.
func (s *Session) Close() {
	s.timer.Stop()
}
