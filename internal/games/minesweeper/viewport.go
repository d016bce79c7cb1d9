package minesweeper

import (
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

const (
	hudRows    = 2   // Title and status lines above the board area
	cellAspect = 2.0 // Terminal columns per board unit; one row is one unit
)

// viewport maps terminal cells to board pointer space.
//
// Pointer space follows the board convention: origin at the lower-left corner
// of the board area, Y growing upward. A cell is addressed by its center, so
// rendering and mouse clicks go through the same Board.MousePosition call.
type viewport struct {
	w, h int // Screen size in cells
}

// window returns the size of the board area in board units.
func (v viewport) window() core.Vec2 {
	return core.V(float64(v.w)/cellAspect, float64(v.h-hudRows))
}

// pointer returns the board-space position of the center of a cell.
// ok is false for cells outside the board area.
func (v viewport) pointer(col, row int) (p core.Vec2, ok bool) {
	if col < 0 || col >= v.w || row < hudRows || row >= v.h {
		return core.Vec2{}, false
	}
	return core.V((float64(col)+0.5)/cellAspect, float64(v.h-row)-0.5), true
}

// locate resolves a cell to a tile and the cell's offset inside that tile,
// measured from the tile's lower-left corner.
func (v viewport) locate(b *board.Board[*sprite], col, row int) (c board.Coordinates, local core.Vec2, ok bool) {
	p, ok := v.pointer(col, row)
	if !ok {
		return c, local, false
	}
	window := v.window()
	c, ok = b.MousePosition(window, p)
	if !ok {
		return c, local, false
	}

	ts := b.TileSize()
	origin := b.Bounds().Position.Add(core.V(float64(c.X)*ts, float64(c.Y)*ts))
	local = p.Sub(window.Half()).Sub(origin)
	return c, local, true
}

// fitEpsilon absorbs rounding of adaptive tile sizes.
const fitEpsilon = 1e-9

// fits reports whether the whole board lies inside the board area.
func (v viewport) fits(bounds core.Bounds) bool {
	half := v.window().Half()
	lo := bounds.Position.Add(half)
	hi := bounds.Max().Add(half)
	w := v.window()
	return lo.X >= -fitEpsilon && lo.Y >= -fitEpsilon && hi.X <= w.X+fitEpsilon && hi.Y <= w.Y+fitEpsilon
}

// frame returns the screen rectangle one cell outside the board.
func (v viewport) frame(bounds core.Bounds) core.Rect {
	half := v.window().Half()
	lo := bounds.Position.Add(half)
	hi := bounds.Max().Add(half)

	left := int(lo.X*cellAspect) - 1
	right := int(hi.X*cellAspect) + 1
	top := v.h - int(hi.Y) - 1
	bottom := v.h - int(lo.Y) + 1
	return core.NewRect(left, top, right-left, bottom-top)
}
