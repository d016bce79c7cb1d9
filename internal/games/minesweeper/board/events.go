package board

// Event is something the presentation layer has to react to after a Session
// step or request.
type Event interface {
	isEvent()
}

// TileRevealed is emitted once per tile whose cover was removed. Token is the
// covered-cell token the board just released.
type TileRevealed[T any] struct {
	Coord Coordinates
	Tile  Tile
	Token T
}

// CascadeStep groups the tiles revealed by one processed ring of the
// flood fill, in processing order.
type CascadeStep struct {
	Revealed []Coordinates
}

// BoardCompleted is emitted once, when only bombs remain covered.
type BoardCompleted struct{}

// BombTriggered is emitted when a revealed tile holds a bomb. The game is
// lost and no BoardCompleted follows.
type BombTriggered struct {
	Coord Coordinates
}

// MarkToggled reports the new mark state of a covered tile.
type MarkToggled[T any] struct {
	Coord  Coordinates
	Marked bool
	Token  T
}

func (TileRevealed[T]) isEvent() {}
func (CascadeStep) isEvent() {}
func (BoardCompleted) isEvent() {}
func (BombTriggered) isEvent() {}
func (MarkToggled[T]) isEvent() {}
