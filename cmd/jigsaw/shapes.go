package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/games/jigsaw/shape"
)

var flagShapeIndex int

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the piece orientations",
	Long: `Shows every catalog index with its piece family and its 3x3
occupancy grid ('#' filled, '.' empty).`,
	Args: cobra.NoArgs,
	RunE: runShapes,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  `Prints the configuration after merging --config or jigsaw.yaml over the defaults.`,
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	shapesCmd.Flags().IntVar(&flagShapeIndex, "index", -1, "Print only this catalog index")
}

func runShapes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog := shape.NewCatalog(cfg.Geometry.Pitch())

	if flagShapeIndex >= 0 {
		if flagShapeIndex >= shape.IndexCount {
			return fmt.Errorf("index %d out of range [0,%d]", flagShapeIndex, shape.IndexCount-1)
		}
		printShape(cmd, flagShapeIndex, catalog.FromIndex(flagShapeIndex))
		return nil
	}

	for i, piece := range catalog.All() {
		printShape(cmd, i, piece)
	}
	return nil
}

func printShape(cmd *cobra.Command, i int, piece shape.Tetromino) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%2d  %s (%dx%d)\n", i, piece.Type(), piece.WidthCells(), piece.HeightCells())
	for _, line := range strings.Split(piece.Occupancy().String(), "\n") {
		fmt.Fprintf(out, "    %s\n", line)
	}
	fmt.Fprintln(out)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
