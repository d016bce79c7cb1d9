package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMinesweeper loads the minesweeper board configuration.
// Search order: customPath -> ~/.sweeper/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	var cfg MinesweeperConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("minesweeper.yaml"); userCfgPath != "" {
		if c, ok := readConfig(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := readConfig(filepath.Join("configs", "minesweeper.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMinesweeperYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultMinesweeperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readConfig reads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is tried.
func readConfig(path string) (MinesweeperConfig, bool) {
	var cfg MinesweeperConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweeper", "configs", filename)
}

// ApplyMinesweeperPreset replaces the board size and bomb count with a
// preset. A fixed layout only fits the configured size, so it is dropped.
// DifficultyCustom leaves cfg unchanged.
func ApplyMinesweeperPreset(cfg *MinesweeperConfig, preset DifficultyPreset) {
	size, bombs, ok := PresetSize(preset)
	if !ok {
		return
	}
	cfg.MapSize = size
	cfg.BombCount = bombs
	cfg.Layout = nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg MinesweeperConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
