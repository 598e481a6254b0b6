// Package config provides YAML-based configuration loading for the jigsaw
// game: board size, pixel geometry, terminal projection, timer and colors.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// JigsawConfig contains all configuration for the jigsaw game.
type JigsawConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Geometry GeometryConfig `yaml:"geometry"`
	Terminal TerminalConfig `yaml:"terminal"`
	Timer    TimerConfig    `yaml:"timer"`
	Colors   ColorConfig    `yaml:"colors"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Block int `yaml:"block"` // Side of a visual block in cells
}

// GeometryConfig defines the pixel layout used for drop resolution.
type GeometryConfig struct {
	CellSize float64 `yaml:"cell_size"`
	Padding  float64 `yaml:"padding"`
}

// Pitch returns the distance between neighbouring cells in pixels.
func (g GeometryConfig) Pitch() float64 {
	return g.CellSize + g.Padding
}

// TerminalConfig defines how one board cell (pitch) maps onto terminal
// characters: a one-character gap followed by the cell body.
type TerminalConfig struct {
	ColsPerCell int `yaml:"cols_per_cell"`
	RowsPerCell int `yaml:"rows_per_cell"`
}

// TimerConfig defines the session clock.
type TimerConfig struct {
	Tick time.Duration `yaml:"tick"`
}

// MarshalYAML writes the tick as a duration string ("1s").
func (t TimerConfig) MarshalYAML() (any, error) {
	return struct {
		Tick string `yaml:"tick"`
	}{Tick: t.Tick.String()}, nil
}

// ColorConfig names the colors of the board elements.
// Valid names are those accepted by core.ParseColor.
type ColorConfig struct {
	Primary   string `yaml:"primary"`   // Edge-middle blocks
	Secondary string `yaml:"secondary"` // Corner and centre blocks
	Blocks    string `yaml:"blocks"`    // Filled cells
	Lines     string `yaml:"lines"`     // Grid separator lines
	Piece     string `yaml:"piece"`     // Held piece
}

// Palette is ColorConfig resolved to screen colors.
type Palette struct {
	Primary   core.Color
	Secondary core.Color
	Blocks    core.Color
	Lines     core.Color
	Piece     core.Color
}

// Palette resolves the color names. Unknown names fall back to the default
// color; Validate reports them.
func (c ColorConfig) Palette() Palette {
	get := func(name string) core.Color {
		col, err := core.ParseColor(name)
		if err != nil {
			return core.ColorDefault
		}
		return col
	}
	return Palette{
		Primary:   get(c.Primary),
		Secondary: get(c.Secondary),
		Blocks:    get(c.Blocks),
		Lines:     get(c.Lines),
		Piece:     get(c.Piece),
	}
}

// Validate checks the configuration for values the game cannot work with.
func (c JigsawConfig) Validate() error {
	b := c.Board
	if b.Block <= 0 || b.Rows <= 0 || b.Cols <= 0 {
		return fmt.Errorf("%w: board needs positive rows, cols and block", ErrInvalidConfig)
	}
	if b.Rows%b.Block != 0 || b.Cols%b.Block != 0 {
		return fmt.Errorf("%w: board %dx%d is not a multiple of block %d", ErrInvalidConfig, b.Rows, b.Cols, b.Block)
	}
	if c.Geometry.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %v", ErrInvalidConfig, c.Geometry.CellSize)
	}
	if c.Geometry.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %v", ErrInvalidConfig, c.Geometry.Padding)
	}
	if c.Terminal.ColsPerCell < 2 || c.Terminal.RowsPerCell < 2 {
		return fmt.Errorf("%w: terminal cells need at least 2 columns and 2 rows", ErrInvalidConfig)
	}
	if c.Timer.Tick <= 0 {
		return fmt.Errorf("%w: timer tick must be positive, got %v", ErrInvalidConfig, c.Timer.Tick)
	}

	names := map[string]string{
		"primary":   c.Colors.Primary,
		"secondary": c.Colors.Secondary,
		"blocks":    c.Colors.Blocks,
		"lines":     c.Colors.Lines,
		"piece":     c.Colors.Piece,
	}
	for field, name := range names {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: colors.%s: %w", ErrInvalidConfig, field, err)
		}
	}
	return nil
}
