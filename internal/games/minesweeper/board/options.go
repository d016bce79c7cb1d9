package board

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// PositionMode selects how the board is placed in pointer space.
type PositionMode uint8

const (
	PositionCentered PositionMode = iota // Centered on the window middle, plus Offset
	PositionCustom                       // Board origin at Offset
)

// Position is the placement of the board's lower-left corner relative to
// the middle of the window.
type Position struct {
	Mode   PositionMode
	Offset core.Vec2
}

// Centered places the board in the middle of the window, shifted by offset.
func Centered(offset core.Vec2) Position {
	return Position{Mode: PositionCentered, Offset: offset}
}

// Custom places the board origin at p.
func Custom(p core.Vec2) Position {
	return Position{Mode: PositionCustom, Offset: p}
}

// Origin returns the board's lower-left corner for a board of the given size.
func (p Position) Origin(boardSize core.Vec2) core.Vec2 {
	if p.Mode == PositionCustom {
		return p.Offset
	}
	return boardSize.Half().Scale(-1).Add(p.Offset)
}

// TileSizeMode selects how the tile size is chosen.
type TileSizeMode uint8

const (
	TileSizeAdaptive TileSizeMode = iota
	TileSizeFixed
)

// TileSize is either a fixed value or an adaptive range fitted to the window.
type TileSize struct {
	Mode  TileSizeMode
	Fixed float64
	Min   float64
	Max   float64
}

// FixedTileSize always resolves to size.
func FixedTileSize(size float64) TileSize {
	return TileSize{Mode: TileSizeFixed, Fixed: size}
}

// AdaptiveTileSize fits the board into the window, clamped to [lo, hi].
func AdaptiveTileSize(lo, hi float64) TileSize {
	return TileSize{Mode: TileSizeAdaptive, Min: lo, Max: hi}
}

// Resolve returns the tile size for a width x height map in window.
func (t TileSize) Resolve(window core.Vec2, width, height uint16) float64 {
	if t.Mode == TileSizeFixed {
		return t.Fixed
	}
	fit := min(window.X/float64(width), window.Y/float64(height))
	return core.ClampF(fit, t.Min, t.Max)
}

// Options is the construction input of a board.
type Options struct {
	MapWidth  uint16
	MapHeight uint16
	BombCount uint16

	Position    Position
	TileSize    TileSize
	TilePadding float64

	// SafeStart reveals the first empty tile (row-major) right after Build.
	SafeStart bool

	// Layout fixes the bomb positions. When set, BombCount is ignored.
	Layout []Coordinates
}

// DefaultOptions returns a 15x15 board with 30 bombs, centered, with an
// adaptive tile size.
func DefaultOptions() Options {
	return Options{
		MapWidth:  15,
		MapHeight: 15,
		BombCount: 30,
		Position:  Centered(core.Vec2{}),
		TileSize:  AdaptiveTileSize(1, 3),
	}
}

// Bombs returns the number of bombs the board will hold.
func (o Options) Bombs() int {
	if len(o.Layout) > 0 {
		return len(o.Layout)
	}
	return int(o.BombCount)
}

// Validate rejects options that cannot produce a board.
func (o Options) Validate() error {
	if o.MapWidth == 0 || o.MapHeight == 0 || o.MapWidth > MaxDimension || o.MapHeight > MaxDimension {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, o.MapWidth, o.MapHeight)
	}
	cells := int(o.MapWidth) * int(o.MapHeight)
	if o.Bombs() >= cells {
		return fmt.Errorf("%w: %d bombs for %d tiles", ErrTooManyBombs, o.Bombs(), cells)
	}
	if o.TileSize.Mode == TileSizeFixed && o.TileSize.Fixed <= 0 {
		return fmt.Errorf("board: fixed tile size must be positive, got %v", o.TileSize.Fixed)
	}
	if o.TileSize.Mode == TileSizeAdaptive && (o.TileSize.Min <= 0 || o.TileSize.Max < o.TileSize.Min) {
		return fmt.Errorf("board: invalid adaptive tile size range [%v, %v]", o.TileSize.Min, o.TileSize.Max)
	}
	if o.TilePadding < 0 {
		return fmt.Errorf("board: tile padding must not be negative, got %v", o.TilePadding)
	}
	return nil
}
