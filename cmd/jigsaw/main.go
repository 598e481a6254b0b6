// jigsaw is a terminal puzzle: drag pieces onto a 9x9 board until no
// more fit.
//
// Usage:
//
//	jigsaw play              - Play in this terminal
//	jigsaw menu              - Menu with new game and rounds table
//	jigsaw serve             - Start SSH server for remote play
//	jigsaw shapes            - Print the piece orientations
//	jigsaw config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set UI frame rate (default: 30)
//	--seed <value>       - Set RNG seed for a reproducible piece sequence
//	--config <path>      - Use a custom jigsaw.yaml
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw"
	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jigsaw",
	Short: "Jigsaw - fit pieces onto a 9x9 board in your terminal",
	Long: `Jigsaw is a terminal placement puzzle. Drag each piece onto the
board with the mouse (or move it with the arrow keys) and drop it where it
fits. When you are done, finish the game to see how long you played and
how many pieces you placed.

Available commands:
  play     - Play in this terminal
  menu     - Menu with new game and rounds table
  serve    - Start SSH server for remote play
  shapes   - Print the piece orientations
  config   - Print the effective configuration

Examples:
  jigsaw play
  jigsaw play --seed 42
  jigsaw serve --ssh :2222
  jigsaw shapes --index 9`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "UI frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom jigsaw.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when
// set, otherwise to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the game configuration from --config or the search path.
func loadConfig() (config.JigsawConfig, error) {
	cfg, err := config.LoadJigsaw(flagConfig)
	if err != nil {
		return config.JigsawConfig{}, fmt.Errorf("cannot load config: %w", err)
	}
	return cfg, nil
}

// gameFactory returns a constructor for jigsaw games with the given config.
func gameFactory(cfg config.JigsawConfig) tui.GameFactory {
	return func(logger *log.Logger) (core.Game, error) {
		g, err := jigsaw.New(cfg, jigsaw.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// localPlayer names the player in the round journal.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
