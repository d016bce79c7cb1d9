package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show recent results",
	Long: `Display the latest results and the win rate of a board.
Without a game ID, results of every board are listed.

Examples:
  sweeper history
  sweeper history minesweeper_expert --limit 20
  sweeper history minesweeper --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the results of the given board")
}

func runHistory(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q (run 'sweeper list' to see available boards)", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening results database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if gameID == "" {
			return fmt.Errorf("--clear needs a game ID")
		}
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared results of %s\n", gameID)
		return nil
	}

	results, err := store.RecentResults(gameID, flagLimit)
	if err != nil {
		return err
	}

	title := "all boards"
	if gameID != "" {
		title = gameID
	}
	fmt.Printf("Recent results - %s\n\n", title)

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	fmt.Printf("  %-26s  %-6s  %-8s  %-10s  %s\n", "Game", "Result", "Revealed", "Board", "Date")
	fmt.Printf("  %-26s  %-6s  %-8s  %-10s  %s\n", "----", "------", "--------", "-----", "----")
	for _, r := range results {
		board := fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Bombs)
		fmt.Printf("  %-26s  %-6s  %-8d  %-10s  %s\n",
			r.GameID, r.Outcome, r.Revealed, board, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if gameID == "" {
		return nil
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Played: %d  Won: %d  Lost: %d  Win rate: %.0f%%\n",
		stats.Played, stats.Won, stats.Lost, stats.WinRate()*100)
	return nil
}
