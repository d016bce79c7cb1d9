package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderError(dst)
		return
	}
	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	dst.DrawBox(g.view.frame(g.session.Board().Bounds()), g.session.Board().Root().color)
}

func (g *Game) renderError(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Invalid board configuration", core.ColorRed)
	dst.DrawTextCentered(y+1, g.err.Error(), core.ColorDefault)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws the title and the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	b := g.session.Board()
	m := b.TileMap()

	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	left := fmt.Sprintf("Bombs: %d  Revealed: %d/%d",
		int(m.BombCount())-b.MarkedCount(),
		g.revealed,
		int(m.Width())*int(m.Height())-int(m.BombCount()),
	)
	dst.DrawText(0, 1, left)

	status, color := "", core.ColorDefault
	switch {
	case g.session.Status() == board.StatusWon:
		status, color = "CLEARED!  R: restart", core.ColorBrightGreen
	case g.session.Status() == board.StatusLost:
		status, color = "BOOM!  R: restart", core.ColorBrightRed
	case g.paused:
		status, color = "PAUSED", core.ColorYellow
	}
	dst.DrawTextColored(dst.Width()-len(status), 1, status, color)
}

// renderBoard paints every cell of the board area. Each cell is resolved to
// a tile through the viewport, so the picture matches mouse hit testing.
func (g *Game) renderBoard(dst *core.Screen) {
	b := g.session.Board()
	inner := b.TileSize() - g.tilePadding

	for row := hudRows; row < dst.Height(); row++ {
		for col := 0; col < dst.Width(); col++ {
			c, local, ok := g.view.locate(b, col, row)
			if !ok {
				continue
			}

			glyphCell := local.X < 1/cellAspect && local.Y < 1
			if !glyphCell && (local.X > inner || local.Y > inner) {
				continue
			}

			r, color := g.cellLook(g.sprites[c], glyphCell)
			if c == g.cursor && !g.session.Over() {
				color = core.ColorBrightYellow
				if r == EmptyChar {
					r = CursorChar
				}
			}
			dst.SetColored(col, row, r, color)
		}
	}
}

// cellLook returns the rune and color of one cell of a tile.
func (g *Game) cellLook(s *sprite, glyphCell bool) (rune, core.Color) {
	lost := g.session.Status() == board.StatusLost

	if s.revealed {
		if !glyphCell {
			return EmptyChar, core.ColorDefault
		}
		if g.exploded != nil && *g.exploded == s.coord {
			return BombChar, core.ColorBrightRed
		}
		return s.glyph, s.color
	}

	switch {
	case lost && s.marked && s.glyph != BombChar:
		if glyphCell {
			return WrongMark, core.ColorBrightRed
		}
		return CoverChar, core.ColorRed
	case lost && s.glyph == BombChar && !s.marked:
		if glyphCell {
			return BombChar, core.ColorRed
		}
		return CoverChar, core.ColorGray
	case s.marked:
		if glyphCell {
			return MarkChar, core.ColorBrightRed
		}
		return CoverChar, core.ColorRed
	default:
		return CoverChar, core.ColorGray
	}
}
