package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a maze",
	Long: `Start a maze at the configured size.

Controls:
  Arrows/WASD/HJKL  - Move one cell
  Mouse drag        - Move in the drag direction
  ?                 - Toggle shortest path hint
  P                 - Pause
  R                 - New maze
  Esc/B             - Leave
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a text screenshot

Size presets:
  easy   - 12x6
  normal - 24x10
  hard   - 36x14
  huge   - 60x22
  custom - use --columns/--rows or the config file

Examples:
  maze play
  maze play --preset easy
  maze play --columns 30 --rows 12 --hint
  maze play --seed 42
  maze play --config ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := runtimeConfig(cmd)
	if err != nil {
		return err
	}

	// Create game instance
	game, err := registry.Create(maze.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger, closer, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Run the game
	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
