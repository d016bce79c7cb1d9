package board

import "strconv"

// TileKind classifies the content of a tile.
type TileKind uint8

const (
	KindEmpty    TileKind = iota // No bomb here and none around.
	KindBomb                     // The tile holds a bomb.
	KindNeighbor                 // No bomb here, 1..8 bombs around.
)

// Tile is the immutable content of one cell.
type Tile struct {
	kind  TileKind
	count uint8
}

// EmptyTile returns a tile without bombs in or around it.
func EmptyTile() Tile {
	return Tile{kind: KindEmpty}
}

// BombTile returns a bomb tile.
func BombTile() Tile {
	return Tile{kind: KindBomb}
}

// NeighborTile returns a tile with count adjacent bombs.
// A zero count yields an empty tile.
func NeighborTile(count uint8) Tile {
	if count == 0 {
		return EmptyTile()
	}
	return Tile{kind: KindNeighbor, count: count}
}

// Kind returns the tile classification.
func (t Tile) Kind() TileKind {
	return t.kind
}

// IsBomb reports whether the tile holds a bomb.
func (t Tile) IsBomb() bool {
	return t.kind == KindBomb
}

// IsEmpty reports whether the tile has no bomb and no bomb neighbors.
func (t Tile) IsEmpty() bool {
	return t.kind == KindEmpty
}

// Count returns the number of adjacent bombs, 0 for empty and bomb tiles.
func (t Tile) Count() uint8 {
	return t.count
}

// ConsoleOutput returns the single-character debug representation.
func (t Tile) ConsoleOutput() string {
	switch t.kind {
	case KindBomb:
		return "*"
	case KindNeighbor:
		return strconv.Itoa(int(t.count))
	default:
		return " "
	}
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	switch t.kind {
	case KindBomb:
		return "Bomb"
	case KindNeighbor:
		return "Neighbor(" + strconv.Itoa(int(t.count)) + ")"
	default:
		return "Empty"
	}
}
