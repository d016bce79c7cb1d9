// Package config provides YAML-based board configuration loading and
// difficulty presets for the sweeper platform.
package config

import (
	"fmt"
	"strings"
)

// MinesweeperConfig contains all configuration for a minesweeper board.
type MinesweeperConfig struct {
	MapSize       MapSize        `yaml:"map_size"`
	BombCount     uint16         `yaml:"bomb_count"`
	Position      PositionConfig `yaml:"position"`
	TileSize      TileSizeConfig `yaml:"tile_size"`
	TilePadding   float64        `yaml:"tile_padding"`
	SafeStart     bool           `yaml:"safe_start"`
	CounterColors []string       `yaml:"counter_colors"`
	Layout        []Point        `yaml:"layout,omitempty"` // Fixed bomb positions, overrides bomb_count
}

// MapSize is the board size in tiles.
type MapSize struct {
	Width  uint16 `yaml:"width"`
	Height uint16 `yaml:"height"`
}

// Position modes.
const (
	PositionCentered = "centered"
	PositionCustom   = "custom"
)

// PositionConfig places the board relative to the middle of the window.
type PositionConfig struct {
	Mode string  `yaml:"mode"` // "centered" or "custom"
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Tile size modes.
const (
	TileSizeAdaptive = "adaptive"
	TileSizeFixed    = "fixed"
)

// TileSizeConfig selects a fixed tile size or an adaptive range.
type TileSizeConfig struct {
	Mode string  `yaml:"mode"` // "adaptive" or "fixed"
	Size float64 `yaml:"size"` // Used by fixed
	Min  float64 `yaml:"min"`  // Used by adaptive
	Max  float64 `yaml:"max"`  // Used by adaptive
}

// Point is a tile coordinate in a fixed layout.
type Point struct {
	X uint16 `yaml:"x"`
	Y uint16 `yaml:"y"`
}

// Validate checks the enumerated fields. Size and bomb limits are checked
// when the board is built.
func (c MinesweeperConfig) Validate() error {
	switch strings.ToLower(c.Position.Mode) {
	case "", PositionCentered, PositionCustom:
	default:
		return fmt.Errorf("unknown position mode %q", c.Position.Mode)
	}

	switch strings.ToLower(c.TileSize.Mode) {
	case "", TileSizeAdaptive, TileSizeFixed:
	default:
		return fmt.Errorf("unknown tile size mode %q", c.TileSize.Mode)
	}

	if c.MapSize.Width == 0 || c.MapSize.Height == 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", c.MapSize.Width, c.MapSize.Height)
	}
	return nil
}

// DifficultyPreset represents a named board size.
type DifficultyPreset string

const (
	DifficultyBeginner     DifficultyPreset = "beginner"
	DifficultyIntermediate DifficultyPreset = "intermediate"
	DifficultyExpert       DifficultyPreset = "expert"
	DifficultyCustom       DifficultyPreset = "custom" // Keep the configured size
)

// Presets lists the built-in board sizes, easiest first.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyBeginner, DifficultyIntermediate, DifficultyExpert}
}

// ParseDifficulty converts a flag value to a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyExpert, DifficultyCustom:
		return p, nil
	case "":
		return DifficultyCustom, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected beginner, intermediate, expert or custom)", s)
	}
}

// PresetSize returns the map size and bomb count of a preset.
// ok is false for DifficultyCustom and unknown presets.
func PresetSize(preset DifficultyPreset) (size MapSize, bombs uint16, ok bool) {
	switch preset {
	case DifficultyBeginner:
		return MapSize{Width: 9, Height: 9}, 10, true
	case DifficultyIntermediate:
		return MapSize{Width: 16, Height: 16}, 40, true
	case DifficultyExpert:
		return MapSize{Width: 30, Height: 16}, 99, true
	default:
		return MapSize{}, 0, false
	}
}
