package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/session"
	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Mouse drag       - Move the piece, release to drop it
  Arrows/WASD      - Move the piece one cell
  Enter/Space      - Drop the piece
  F                - Finish: show time and turns
  R / Q            - Reset / Exit (in the finish dialog)
  Esc              - Close the finish dialog
  Q/Ctrl+C         - Quit

Rounds finished with Reset or Exit are listed when the game ends.

Examples:
  jigsaw play
  jigsaw play --seed 42
  jigsaw play --config ./my-jigsaw.yaml --log-file jigsaw.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal; logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "jigsaw")
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := jigsaw.New(cfg, jigsaw.WithLogger(logger))
	if err != nil {
		return err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open round journal", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sessionID := uuid.NewString()
	logger.Info("starting game", "seed", flagSeed, "session", sessionID)
	err = tui.Run(game, runtimeConfig(), tui.GameOptions{
		Store:     store,
		Logger:    logger,
		Player:    localPlayer(),
		SessionID: sessionID,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	if store == nil {
		return nil
	}
	rounds, err := store.SessionRounds(sessionID)
	if err != nil {
		return err
	}
	printRounds(cmd.OutOrStdout(), rounds)
	return nil
}

// printRounds lists the rounds finished in this run once the alt screen
// is gone.
func printRounds(w io.Writer, rounds []storage.Round) {
	if len(rounds) == 0 {
		return
	}
	fmt.Fprintln(w, "Rounds this session:")
	fmt.Fprintf(w, "  %-3s  %5s  %s\n", "#", "Turns", "Time")
	for i, r := range rounds {
		clock := session.FormatClock(time.Duration(r.Seconds) * time.Second)
		fmt.Fprintf(w, "  %-3d  %5d  %s\n", i+1, r.Turns, clock)
	}
}
