package grid

import (
	"fmt"
	"strings"

	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

// Direction names one of the six neighbour offsets. Values index hex.Offsets.
type Direction int

const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

var directionNames = [...]string{"east", "northeast", "northwest", "west", "southwest", "southeast"}

var directionAliases = map[string]Direction{
	"e": East, "ne": NorthEast, "nw": NorthWest, "w": West, "sw": SouthWest, "se": SouthEast,
	// console shorthands: right, up-right, ...
	"r": East, "ur": NorthEast, "ul": NorthWest, "l": West, "dl": SouthWest, "dr": SouthEast,
}

// Directions returns the six directions in offset order.
func Directions() []Direction {
	return []Direction{East, NorthEast, NorthWest, West, SouthWest, SouthEast}
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Offset returns the double-width displacement of d.
func (d Direction) Offset() hex.Offset { return hex.Offsets[d] }

// ParseDirection accepts full names ("northeast", "north-east") and short
// forms ("ne", "ur").
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	if d, ok := directionAliases[s]; ok {
		return d, nil
	}
	return East, fmt.Errorf("unknown direction %q", s)
}

// CanMove reports whether a single step in direction d stays inside the grid
// without wrapping.
func (g *Grid) CanMove(h hex.Hex, d Direction) bool {
	switch d {
	case East:
		return g.CanMoveEast(h)
	case NorthEast:
		return g.CanMoveNorthEast(h)
	case NorthWest:
		return g.CanMoveNorthWest(h)
	case West:
		return g.CanMoveWest(h)
	case SouthWest:
		return g.CanMoveSouthWest(h)
	case SouthEast:
		return g.CanMoveSouthEast(h)
	}
	return false
}

// East and west move two columns, so their guards use the double-width test.
func (g *Grid) CanMoveEast(h hex.Hex) bool { return h.Col() < g.width-2 }
func (g *Grid) CanMoveWest(h hex.Hex) bool { return h.Col() > 1 }

func (g *Grid) CanMoveSouthEast(h hex.Hex) bool { return g.canMoveDown(h) && h.Col() < g.width-1 }
func (g *Grid) CanMoveSouthWest(h hex.Hex) bool { return g.canMoveDown(h) && h.Col() > 0 }
func (g *Grid) CanMoveNorthWest(h hex.Hex) bool { return g.canMoveUp(h) && h.Col() > 0 }
func (g *Grid) CanMoveNorthEast(h hex.Hex) bool { return g.canMoveUp(h) && h.Col() < g.width-1 }

func (g *Grid) canMoveDown(h hex.Hex) bool { return h.Row() < g.height-1 }
func (g *Grid) canMoveUp(h hex.Hex) bool   { return h.Row() > 0 }

// Move takes one step from h in direction d. When the step would leave the
// grid, h is returned unchanged unless wrap is enabled, in which case the
// destination is taken modulo the grid extents.
func (g *Grid) Move(h hex.Hex, d Direction) hex.Hex {
	if d < East || d > SouthEast {
		return h
	}
	if !g.CanMove(h, d) && !g.wrap {
		return h
	}
	o := d.Offset()
	row, col := h.Row()+o.DRow, h.Col()+o.DCol
	if g.wrap {
		row = wrapIndex(row, g.height)
		col = wrapIndex(col, g.width)
	}
	next, err := g.HexAt(row, col)
	if err != nil {
		return h
	}
	return next
}

func (g *Grid) MoveEast(h hex.Hex) hex.Hex      { return g.Move(h, East) }
func (g *Grid) MoveNorthEast(h hex.Hex) hex.Hex { return g.Move(h, NorthEast) }
func (g *Grid) MoveNorthWest(h hex.Hex) hex.Hex { return g.Move(h, NorthWest) }
func (g *Grid) MoveWest(h hex.Hex) hex.Hex      { return g.Move(h, West) }
func (g *Grid) MoveSouthWest(h hex.Hex) hex.Hex { return g.Move(h, SouthWest) }
func (g *Grid) MoveSouthEast(h hex.Hex) hex.Hex { return g.Move(h, SouthEast) }
