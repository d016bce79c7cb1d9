package board

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"
	"strings"
)

// Construction errors. All of them are fatal for the board being built.
var (
	ErrInvalidSize     = errors.New("board: map width and height must be in 1..65534")
	ErrTooManyBombs    = errors.New("board: bomb count must be lower than the number of tiles")
	ErrBombsPlaced     = errors.New("board: bombs were already placed")
	ErrBombOutOfBounds = errors.New("board: bomb position outside the map")
	ErrDuplicateBomb   = errors.New("board: duplicate bomb position")
)

// neighborOffsets are the deltas of the 8 square neighbors, with Y growing
// from the bottom row to the top row:
//
//	| -1, 1  | 0, 1  | 1, 1  |
//	| -1, 0  | tile  | 1, 0  |
//	| -1, -1 | 0, -1 | 1, -1 |
var neighborOffsets = [8][2]int8{
	{-1, -1}, // bottom left
	{0, -1},  // bottom
	{1, -1},  // bottom right
	{-1, 0},  // left
	{1, 0},   // right
	{-1, 1},  // top left
	{0, 1},   // top
	{1, 1},   // top right
}

// Rand is the randomness source used for bomb placement.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// TileMap is the grid of tile contents. It is filled once by AddBombs (or
// built pre-filled by NewTileMapWithBombs) and is read-only afterwards.
type TileMap struct {
	bombCount uint16
	width     uint16
	height    uint16
	tiles     [][]Tile // Indexed [y][x]
	placed    bool
}

// NewEmptyTileMap allocates a width x height map of empty tiles.
func NewEmptyTileMap(width, height uint16) (*TileMap, error) {
	if width == 0 || height == 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width) // zero Tile is empty
	}

	return &TileMap{
		width:  width,
		height: height,
		tiles:  tiles,
	}, nil
}

// NewTileMapWithBombs builds a map with bombs at fixed positions and computes
// the neighbor counts. Used for replayable layouts.
func NewTileMapWithBombs(width, height uint16, bombs []Coordinates) (*TileMap, error) {
	m, err := NewEmptyTileMap(width, height)
	if err != nil {
		return nil, err
	}
	if len(bombs) >= m.tileCount() {
		return nil, fmt.Errorf("%w: %d bombs for %d tiles", ErrTooManyBombs, len(bombs), m.tileCount())
	}

	for _, c := range bombs {
		if !m.InBounds(c) {
			return nil, fmt.Errorf("%w: %s", ErrBombOutOfBounds, c)
		}
		if m.tiles[c.Y][c.X].IsBomb() {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBomb, c)
		}
		m.tiles[c.Y][c.X] = BombTile()
	}

	m.bombCount = uint16(len(bombs))
	m.placed = true
	m.computeNeighbors()
	return m, nil
}

// Width returns the number of columns.
func (m *TileMap) Width() uint16 {
	return m.width
}

// Height returns the number of rows.
func (m *TileMap) Height() uint16 {
	return m.height
}

// BombCount returns the number of bombs placed.
func (m *TileMap) BombCount() uint16 {
	return m.bombCount
}

func (m *TileMap) tileCount() int {
	return int(m.width) * int(m.height)
}

// InBounds reports whether c addresses a tile of this map.
func (m *TileMap) InBounds(c Coordinates) bool {
	return c.X < m.width && c.Y < m.height
}

// Tile returns the content at c. ok is false outside the map.
func (m *TileMap) Tile(c Coordinates) (t Tile, ok bool) {
	if !m.InBounds(c) {
		return Tile{}, false
	}
	return m.tiles[c.Y][c.X], true
}

// All yields every tile in row-major scan order (row 0 first).
func (m *TileMap) All() iter.Seq2[Coordinates, Tile] {
	return func(yield func(Coordinates, Tile) bool) {
		for y := uint16(0); y < m.height; y++ {
			for x := uint16(0); x < m.width; x++ {
				if !yield(At(x, y), m.tiles[y][x]) {
					return
				}
			}
		}
	}
}

// SurroundingTiles yields the 8 neighbor candidates of c. Candidates are not
// bounds-checked; callers filter them through InBounds, IsBombAt and friends.
func (m *TileMap) SurroundingTiles(c Coordinates) iter.Seq[Coordinates] {
	return func(yield func(Coordinates) bool) {
		for _, d := range neighborOffsets {
			if !yield(c.Offset(d[0], d[1])) {
				return
			}
		}
	}
}

// IsBombAt reports whether c holds a bomb. Out-of-bounds is never a bomb.
func (m *TileMap) IsBombAt(c Coordinates) bool {
	if !m.InBounds(c) {
		return false
	}
	return m.tiles[c.Y][c.X].IsBomb()
}

// BombCountAt counts the bombs around c. It returns 0 when c itself is a bomb.
// After generation the count is also cached in the tile content.
func (m *TileMap) BombCountAt(c Coordinates) uint8 {
	if m.IsBombAt(c) {
		return 0
	}
	var n uint8
	for neighbor := range m.SurroundingTiles(c) {
		if m.IsBombAt(neighbor) {
			n++
		}
	}
	return n
}

// AddBombs scatters count bombs uniformly over distinct tiles by rejection
// sampling and then computes every neighbor count. It may run only once per
// map. A nil rng uses the math/rand global source.
func (m *TileMap) AddBombs(count uint16, rng Rand) error {
	if m.placed {
		return ErrBombsPlaced
	}
	if int(count) >= m.tileCount() {
		return fmt.Errorf("%w: %d bombs for %d tiles", ErrTooManyBombs, count, m.tileCount())
	}
	if rng == nil {
		rng = globalRand{}
	}

	m.bombCount = count
	remaining := count
	for remaining > 0 {
		x := rng.Intn(int(m.width))
		y := rng.Intn(int(m.height))

		if m.tiles[y][x].IsBomb() {
			continue
		}
		m.tiles[y][x] = BombTile()
		remaining--
	}

	m.placed = true
	m.computeNeighbors()
	return nil
}

func (m *TileMap) computeNeighbors() {
	for y := uint16(0); y < m.height; y++ {
		for x := uint16(0); x < m.width; x++ {
			c := At(x, y)
			if m.IsBombAt(c) {
				continue
			}
			m.tiles[y][x] = NeighborTile(m.BombCountAt(c))
		}
	}
}

// ConsoleOutput renders the full map for debug logs, top row first.
func (m *TileMap) ConsoleOutput() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Map (%d, %d) with %d bombs:\n", m.width, m.height, m.bombCount)

	line := strings.Repeat("-", int(m.width)+2)
	sb.WriteString(line)
	sb.WriteByte('\n')
	for y := int(m.height) - 1; y >= 0; y-- {
		sb.WriteByte('|')
		for _, t := range m.tiles[y] {
			sb.WriteString(t.ConsoleOutput())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(line)
	return sb.String()
}
