package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/jigsaw.yaml
var defaultJigsawYAML []byte

// DefaultJigsawConfig returns the default jigsaw configuration.
func DefaultJigsawConfig() JigsawConfig {
	return JigsawConfig{
		Board: BoardConfig{
			Rows:  9,
			Cols:  9,
			Block: 3,
		},
		Geometry: GeometryConfig{
			CellSize: 30,
			Padding:  3,
		},
		Terminal: TerminalConfig{
			ColsPerCell: 4,
			RowsPerCell: 2,
		},
		Timer: TimerConfig{
			Tick: time.Second,
		},
		Colors: ColorConfig{
			Primary:   "gray",
			Secondary: "white",
			Blocks:    "peach",
			Lines:     "dark_gray",
			Piece:     "bright_yellow",
		},
	}
}
