package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the default minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		MapSize:   MapSize{Width: 15, Height: 15},
		BombCount: 30,
		Position: PositionConfig{
			Mode: PositionCentered,
		},
		TileSize: TileSizeConfig{
			Mode: TileSizeAdaptive,
			Size: 1,
			Min:  1,
			Max:  3,
		},
		TilePadding:   0.5,
		SafeStart:     true,
		CounterColors: []string{"white", "green", "yellow", "orange", "magenta"},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "minesweeper":
		return defaultMinesweeperYAML
	default:
		return nil
	}
}
