// sweeper is a terminal minesweeper.
//
// Usage:
//
//	sweeper list              - List available boards
//	sweeper play <game>       - Play a board
//	sweeper menu              - Start menu to pick boards interactively
//	sweeper serve             - Start SSH server for remote play
//	sweeper history [game]    - Show recent results and win rate
//	sweeper config            - Print the effective board config as YAML
//
// Global flags:
//
//	--config <path>     - Board config YAML
//	--difficulty <name> - beginner, intermediate, expert or custom
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.sweeper/results.db)
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string

	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `sweeper is a minesweeper for the terminal. Boards are played with the
keyboard or the mouse, locally or over SSH.

Available commands:
  list     - Show all available boards
  play     - Play a specific board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  history  - View recent results
  config   - Print the effective board config

Examples:
  sweeper list
  sweeper play minesweeper_beginner
  sweeper play minesweeper --config ./board.yaml
  sweeper menu --difficulty expert
  sweeper serve --ssh :2222
  sweeper history minesweeper_expert`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Board preset: beginner, intermediate, expert, custom")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates the global flags, configures logging and hands the board
// flags to the minesweeper package.
func setup(_ *cobra.Command, _ []string) error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	// A full-screen TUI owns the terminal, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	log.SetDefault(log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	}))

	minesweeper.SetConfigPath(flagConfig)
	minesweeper.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
// Without a terminal the default 80x24 screen is used.
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
