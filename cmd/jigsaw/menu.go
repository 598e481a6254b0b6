package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/platform/tui"
	"github.com/vovakirdan/tui-jigsaw/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Menu with new game and rounds table",
	Long: `Open the menu. From there you can start games one after another
and browse the rounds finished in this run. Rounds are kept in memory
and are gone when the program exits.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "jigsaw")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.OpenMemory()
	if err != nil {
		return fmt.Errorf("cannot open round journal: %w", err)
	}
	defer store.Close()

	if err := tui.RunSession(gameFactory(cfg), store, runtimeConfig(), localPlayer(), logger); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
