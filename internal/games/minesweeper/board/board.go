package board

import (
	"maps"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Board is the play state on top of a generated TileMap.
//
// T is the covered-cell token: an opaque handle the presentation layer
// attaches to every covered tile. The board only stores and returns tokens.
//
// Invariants: a coordinate is a key of the covered map iff the tile has not
// been revealed, and every marked coordinate is covered.
type Board[T any] struct {
	tileMap  *TileMap
	bounds   core.Bounds
	tileSize float64
	covered  map[Coordinates]T
	marked   map[Coordinates]struct{}
	root     T
	logger   *log.Logger
}

// NewBoard wraps a generated map. covered must hold a token for every tile
// that starts covered; bounds and tileSize place the board in pointer space;
// root identifies the board's own presentation object.
func NewBoard[T any](tileMap *TileMap, bounds core.Bounds, tileSize float64, covered map[Coordinates]T, root T) *Board[T] {
	if covered == nil {
		covered = make(map[Coordinates]T)
	}
	return &Board[T]{
		tileMap:  tileMap,
		bounds:   bounds,
		tileSize: tileSize,
		covered:  covered,
		marked:   make(map[Coordinates]struct{}),
		root:     root,
		logger:   log.Default(),
	}
}

// SetLogger replaces the diagnostics logger. nil restores log.Default().
func (b *Board[T]) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	b.logger = l
}

// TileMap returns the underlying read-only map.
func (b *Board[T]) TileMap() *TileMap {
	return b.tileMap
}

// Bounds returns the board rectangle in pointer space.
func (b *Board[T]) Bounds() core.Bounds {
	return b.bounds
}

// TileSize returns the tile-to-screen scale factor.
func (b *Board[T]) TileSize() float64 {
	return b.tileSize
}

// Root returns the handle of the board's own presentation object.
func (b *Board[T]) Root() T {
	return b.root
}

// MousePosition translates a pointer position in window space (origin at a
// window corner) to tile coordinates. ok is false outside the board.
// The tile index is a plain floor division, so a pointer on an inner tile
// edge belongs to the tile that starts there.
func (b *Board[T]) MousePosition(window, pointer core.Vec2) (c Coordinates, ok bool) {
	position := pointer.Sub(window.Half())

	if !b.bounds.InBounds(position) {
		return Coordinates{}, false
	}

	local := position.Sub(b.bounds.Position)
	x := math.Floor(local.X / b.tileSize)
	y := math.Floor(local.Y / b.tileSize)

	c = Coordinates{X: uint16(x), Y: uint16(y)}
	if !b.tileMap.InBounds(c) {
		return Coordinates{}, false
	}
	return c, true
}

// IsCovered reports whether the tile at c has not been revealed yet.
func (b *Board[T]) IsCovered(c Coordinates) bool {
	_, ok := b.covered[c]
	return ok
}

// IsMarked reports whether the tile at c is flagged.
func (b *Board[T]) IsMarked(c Coordinates) bool {
	_, ok := b.marked[c]
	return ok
}

// CoveredCount returns how many tiles are still covered.
func (b *Board[T]) CoveredCount() int {
	return len(b.covered)
}

// MarkedCount returns how many tiles are flagged.
func (b *Board[T]) MarkedCount() int {
	return len(b.marked)
}

// CoveredTiles returns the covered coordinates in sorted order.
func (b *Board[T]) CoveredTiles() []Coordinates {
	return sortedKeys(b.covered)
}

// MarkedTiles returns the marked coordinates in sorted order.
func (b *Board[T]) MarkedTiles() []Coordinates {
	return sortedKeys(b.marked)
}

// TileToUncover returns the token of a covered tile. Marked tiles are
// protected and report ok=false, as do revealed ones.
func (b *Board[T]) TileToUncover(c Coordinates) (token T, ok bool) {
	if b.IsMarked(c) {
		return token, false
	}
	token, ok = b.covered[c]
	return token, ok
}

// TryUncoverTile reveals c: the mark is dropped first, then the covered token
// is removed and returned. Revealing twice is a no-op the second time.
func (b *Board[T]) TryUncoverTile(c Coordinates) (token T, ok bool) {
	if b.IsMarked(c) {
		b.unmarkTile(c)
	}

	token, ok = b.covered[c]
	if !ok {
		b.logger.Debug("tile already uncovered", "coord", c)
		return token, false
	}
	delete(b.covered, c)
	return token, true
}

// AdjacentCoveredCoordinates lists the in-bounds neighbors of c that are
// covered and not marked, in neighbor-offset order.
func (b *Board[T]) AdjacentCoveredCoordinates(c Coordinates) []Coordinates {
	var result []Coordinates
	for neighbor := range b.tileMap.SurroundingTiles(c) {
		if _, ok := b.TileToUncover(neighbor); ok {
			result = append(result, neighbor)
		}
	}
	return result
}

// AdjacentCoveredTiles returns the tokens of AdjacentCoveredCoordinates.
func (b *Board[T]) AdjacentCoveredTiles(c Coordinates) []T {
	coords := b.AdjacentCoveredCoordinates(c)
	tokens := make([]T, 0, len(coords))
	for _, n := range coords {
		tokens = append(tokens, b.covered[n])
	}
	return tokens
}

// TryToggleMark flips the mark on a covered tile and reports the token and
// the resulting state. ok is false when c is not covered.
func (b *Board[T]) TryToggleMark(c Coordinates) (token T, marked bool, ok bool) {
	token, ok = b.covered[c]
	if !ok {
		return token, false, false
	}

	if b.IsMarked(c) {
		b.unmarkTile(c)
		return token, false, true
	}

	b.marked[c] = struct{}{}
	return token, true, true
}

// unmarkTile removes c from the marked set. A missing entry is an internal
// inconsistency: it is logged and nothing changes.
func (b *Board[T]) unmarkTile(c Coordinates) bool {
	if _, ok := b.marked[c]; !ok {
		b.logger.Error("failed to unmark tile: not marked", "coord", c)
		return false
	}
	delete(b.marked, c)
	return true
}

// IsCompleted reports the win condition: only bomb tiles remain covered.
func (b *Board[T]) IsCompleted() bool {
	return len(b.covered) == int(b.tileMap.BombCount())
}

func sortedKeys[V any](m map[Coordinates]V) []Coordinates {
	return slices.SortedFunc(maps.Keys(m), Coordinates.Compare)
}
