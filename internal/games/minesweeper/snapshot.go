package minesweeper

import "github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/board"

// Snapshot contains the observable game state for determinism tests.
type Snapshot struct {
	Tick     uint64
	Status   string
	Revealed int
	Pending  int
	CursorX  int
	CursorY  int
	Paused   bool

	Width  int
	Height int
	Bombs  int
	Map    string // TileMap.ConsoleOutput

	Covered []board.Coordinates // Sorted
	Marked  []board.Coordinates // Sorted
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}

	b := g.session.Board()
	m := b.TileMap()
	return Snapshot{
		Tick:     g.tick,
		Status:   g.session.Status().String(),
		Revealed: g.revealed,
		Pending:  g.session.Pending(),
		CursorX:  int(g.cursor.X),
		CursorY:  int(g.cursor.Y),
		Paused:   g.paused,
		Width:    int(m.Width()),
		Height:   int(m.Height()),
		Bombs:    int(m.BombCount()),
		Map:      m.ConsoleOutput(),
		Covered:  b.CoveredTiles(),
		Marked:   b.MarkedTiles(),
	}
}
