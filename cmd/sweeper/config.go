package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective board config",
	Long: `Print the board config that 'play' would use, after the search order
(--config, ~/.sweeper/configs, ./configs, built-in) and --difficulty.
With --defaults, print the built-in YAML, comments included, as a starting
point for a custom file.

Examples:
  sweeper config
  sweeper config --difficulty expert
  sweeper config --defaults > ~/.sweeper/configs/minesweeper.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.GetDefaultYAML("minesweeper")))
		return nil
	}

	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// effectiveConfig loads the board config the way the game does and applies
// the --difficulty preset.
func effectiveConfig() (config.MinesweeperConfig, error) {
	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyMinesweeperPreset(&cfg, preset)
	return cfg, nil
}
