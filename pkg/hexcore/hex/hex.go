// Package hex implements hexagon coordinates in the double-width layout and
// their axial/cube equivalents.
//
// In double-width coordinates the column index advances by two per hex and
// odd rows are shifted by one, so every valid coordinate has an even
// row+col. See https://www.redblobgames.com/grids/hexagons/#coordinates-doubled.
package hex

import (
	"errors"
	"fmt"

	"github.com/gravitas-games/hexroute/pkg/hexcore"
)

// ErrInvalidCoordinate is returned when row+col is odd.
var ErrInvalidCoordinate = errors.New("invalid double-width coordinate")

// Key identifies a hex by its double-width coordinates. Hexes with the same
// Key are the same cell regardless of terrain.
type Key struct {
	Row int
	Col int
}

// Offset is a double-width displacement.
type Offset struct {
	DCol int
	DRow int
}

// Offsets are the six neighbour displacements, anticlockwise starting east.
var Offsets = [6]Offset{
	{DCol: +2, DRow: 0},
	{DCol: +1, DRow: -1},
	{DCol: -1, DRow: -1},
	{DCol: -2, DRow: 0},
	{DCol: -1, DRow: +1},
	{DCol: +1, DRow: +1},
}

// Hex is an immutable cell coordinate with the terrain it carried when it was
// read from a grid.
type Hex struct {
	row     int
	col     int
	terrain hexcore.Terrain
}

// New returns the plains hex at (row, col).
func New(row, col int) (Hex, error) {
	if (row+col)%2 != 0 {
		return Hex{}, fmt.Errorf("(row %d, col %d): %w", row, col, ErrInvalidCoordinate)
	}
	return Hex{row: row, col: col}, nil
}

// MustNew is like New but panics on an invalid coordinate.
func MustNew(row, col int) Hex {
	h, err := New(row, col)
	if err != nil {
		panic(err)
	}
	return h
}

// FromAxial returns the plains hex at the given axial coordinate.
func FromAxial(a Axial) Hex {
	row, col := a.DoubleWidth()
	return Hex{row: row, col: col}
}

func (h Hex) Row() int { return h.row }
func (h Hex) Col() int { return h.col }

// Q is the axial column, (col - row) / 2.
func (h Hex) Q() int { return (h.col - h.row) / 2 }

// R is the axial row, equal to the double-width row.
func (h Hex) R() int { return h.row }

// S is the third cube coordinate, -q - r.
func (h Hex) S() int { return -h.Q() - h.R() }

func (h Hex) Terrain() hexcore.Terrain { return h.terrain }

// WithTerrain returns a copy of h with terrain t.
func (h Hex) WithTerrain(t hexcore.Terrain) Hex {
	h.terrain = t
	return h
}

func (h Hex) Axial() Axial { return Axial{Q: h.Q(), R: h.R()} }

func (h Hex) Cube() Cube { return h.Axial().ToCube() }

func (h Hex) Key() Key { return Key{Row: h.row, Col: h.col} }

// Equal reports whether h and o address the same cell.
func (h Hex) Equal(o Hex) bool { return h.row == o.row && h.col == o.col }

// Translate returns the hex displaced by (dRow, dCol). The result keeps h's
// terrain and is not checked against any grid; dRow+dCol must be even.
func (h Hex) Translate(dRow, dCol int) (Hex, error) {
	if (dRow+dCol)%2 != 0 {
		return Hex{}, fmt.Errorf("translate (row %d, col %d) by (%d, %d): %w", h.row, h.col, dRow, dCol, ErrInvalidCoordinate)
	}
	return Hex{row: h.row + dRow, col: h.col + dCol, terrain: h.terrain}, nil
}

// Neighbour returns the raw coordinate of the neighbour in direction i (0..5,
// see Offsets).
func (h Hex) Neighbour(i int) Key {
	o := Offsets[i]
	return Key{Row: h.row + o.DRow, Col: h.col + o.DCol}
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.row, h.col)
}

// Distance returns the number of steps between a and b ignoring wrap, using
// the double-width formula dRow + max(0, (dCol-dRow)/2).
func Distance(a, b Hex) int {
	return DistanceDoubleWidth(a.row-b.row, a.col-b.col)
}

// AxialDistance returns the same value as Distance computed in axial space.
func AxialDistance(a, b Hex) int {
	return DistanceAxial(a.Axial(), b.Axial())
}
