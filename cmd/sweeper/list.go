package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long: `Shows the config-driven board and one board per difficulty preset,
with the map size and bomb count each one plays with.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No boards available.")
		return nil
	}

	configured, err := effectiveConfig()
	if err != nil {
		return err
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Println("Available boards:")
	fmt.Println()
	fmt.Printf("  %-*s  %-10s  %s\n", idWidth, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-10s  %s\n", idWidth, "--", "-----", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-10s  %s\n", idWidth, g.ID, boardLabel(g.ID, configured), g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper play <id>' to play a board.")
	return nil
}

// boardLabel formats the size of a registered board as "WxH/bombs".
// Preset boards have a fixed size; the config-driven one uses cfg.
func boardLabel(id string, cfg config.MinesweeperConfig) string {
	if name, ok := strings.CutPrefix(id, "minesweeper_"); ok {
		size, bombs, ok := config.PresetSize(config.DifficultyPreset(name))
		if !ok {
			return "?"
		}
		return fmt.Sprintf("%dx%d/%d", size.Width, size.Height, bombs)
	}

	bombs := int(cfg.BombCount)
	if len(cfg.Layout) > 0 {
		bombs = len(cfg.Layout)
	}
	return fmt.Sprintf("%dx%d/%d", cfg.MapSize.Width, cfg.MapSize.Height, bombs)
}
