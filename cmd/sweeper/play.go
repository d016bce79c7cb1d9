package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a board",
	Long: `Start playing the specified board (default: minesweeper).

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Space/Enter       - Reveal (or left click)
  F/M               - Toggle mark (or right click)
  P                 - Pause
  R                 - New board (after the game ends)
  Esc/B             - Leave
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a text screenshot

Examples:
  sweeper play
  sweeper play minesweeper_expert
  sweeper play minesweeper --difficulty intermediate
  sweeper play minesweeper --config ./board.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "minesweeper"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'sweeper list' to see available boards)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
