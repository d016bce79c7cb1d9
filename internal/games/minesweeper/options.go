package minesweeper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

// optionsFromConfig converts the YAML record into board options and the
// counter palette.
func optionsFromConfig(cfg config.MinesweeperConfig) (board.Options, []core.Color, error) {
	opts := board.Options{
		MapWidth:    cfg.MapSize.Width,
		MapHeight:   cfg.MapSize.Height,
		BombCount:   cfg.BombCount,
		TilePadding: cfg.TilePadding,
		SafeStart:   cfg.SafeStart,
	}

	offset := core.V(cfg.Position.X, cfg.Position.Y)
	switch strings.ToLower(cfg.Position.Mode) {
	case config.PositionCustom:
		opts.Position = board.Custom(offset)
	default:
		opts.Position = board.Centered(offset)
	}

	switch strings.ToLower(cfg.TileSize.Mode) {
	case config.TileSizeFixed:
		opts.TileSize = board.FixedTileSize(cfg.TileSize.Size)
	default:
		opts.TileSize = board.AdaptiveTileSize(cfg.TileSize.Min, cfg.TileSize.Max)
	}

	for _, p := range cfg.Layout {
		opts.Layout = append(opts.Layout, board.At(p.X, p.Y))
	}

	palette := make([]core.Color, 0, len(cfg.CounterColors))
	for _, name := range cfg.CounterColors {
		c, ok := core.ParseColor(name)
		if !ok {
			return opts, nil, fmt.Errorf("unknown counter color %q", name)
		}
		palette = append(palette, c)
	}

	if err := opts.Validate(); err != nil {
		return opts, nil, err
	}
	return opts, palette, nil
}
