// Package board implements the minesweeper data model: the tile map with its
// bomb placement and neighbor counts, the covered/marked play state on top of
// it, and the tick-driven reveal cascade.
//
// Nothing here renders or reads input. A presentation layer builds a board
// through Build, feeds reveal and mark requests into a Session and applies
// the events it returns.
package board

import (
	"cmp"
	"fmt"
	"math"
)

// NoCoordinate is the component value used for a neighbor candidate that
// falls outside the representable range. It is never inside a valid map,
// because map dimensions are capped at MaxDimension.
const NoCoordinate = math.MaxUint16

// MaxDimension is the largest supported map width or height.
const MaxDimension = NoCoordinate - 1

// Coordinates addresses a single tile: X is the column, Y the row.
type Coordinates struct {
	X uint16
	Y uint16
}

// At is a convenience constructor for Coordinates.
func At(x, y uint16) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Add returns the component-wise sum.
func (c Coordinates) Add(o Coordinates) Coordinates {
	return Coordinates{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference, saturating at zero.
func (c Coordinates) Sub(o Coordinates) Coordinates {
	return Coordinates{X: saturatingSub(c.X, o.X), Y: saturatingSub(c.Y, o.Y)}
}

// Offset applies a signed neighbor delta. A component that would leave
// [0, MaxDimension] becomes NoCoordinate, which every bounds check rejects.
func (c Coordinates) Offset(dx, dy int8) Coordinates {
	return Coordinates{X: offset(c.X, dx), Y: offset(c.Y, dy)}
}

// Compare orders coordinates by X, then Y.
func (c Coordinates) Compare(o Coordinates) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// String returns the coordinates as "(x, y)".
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func saturatingSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}

func offset(v uint16, d int8) uint16 {
	n := int32(v) + int32(d)
	if n < 0 || n > MaxDimension {
		return NoCoordinate
	}
	return uint16(n)
}
