package minesweeper

import (
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

// Glyphs used on the board.
const (
	CoverChar   = '▒'
	MarkChar    = 'F'
	BombChar    = '*'
	WrongMark   = 'X'
	CursorChar  = '·'
	EmptyChar   = ' '
	BorderColor = core.ColorGray
)

// sprite is the covered-cell token handed to the board: the terminal
// representation of one tile. The board releases it through TileRevealed
// and MarkToggled events and the game updates it in place.
type sprite struct {
	coord    board.Coordinates
	glyph    rune       // Shown once revealed
	color    core.Color // Color of glyph
	marked   bool
	revealed bool
}

func newSprite(c board.Coordinates, t board.Tile, palette []core.Color) *sprite {
	s := &sprite{coord: c, glyph: EmptyChar, color: core.ColorDefault}
	switch {
	case t.IsBomb():
		s.glyph = BombChar
		s.color = core.ColorRed
	case t.Count() > 0:
		s.glyph = rune('0' + t.Count())
		s.color = counterColor(palette, t.Count())
	}
	return s
}

// counterColor picks the color of a neighbor count: palette[n-1], saturating
// at the last entry. An empty palette is all white.
func counterColor(palette []core.Color, n uint8) core.Color {
	if len(palette) == 0 || n == 0 {
		return core.ColorWhite
	}
	return palette[min(int(n), len(palette))-1]
}
