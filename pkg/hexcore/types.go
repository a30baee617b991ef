// Package hexcore holds the values shared by the hex, grid and path packages.
package hexcore

import (
	"fmt"
	"strings"
)

// Terrain represents the ground type of a single hex cell.
type Terrain int

const (
	Plains Terrain = 0
	Hill   Terrain = 1
)

// Terrains lists every terrain in declaration order.
var Terrains = []Terrain{Plains, Hill}

// MoveCost returns the cost of stepping into a hex of this terrain.
func (t Terrain) MoveCost() int {
	if t == Hill {
		return 2
	}
	return 1
}

// String returns the lower-case terrain name.
func (t Terrain) String() string {
	switch t {
	case Plains:
		return "plains"
	case Hill:
		return "hill"
	default:
		return fmt.Sprintf("terrain(%d)", int(t))
	}
}

// Symbol returns a one-character label, used by text output.
func (t Terrain) Symbol() string {
	if t == Hill {
		return "^"
	}
	return "."
}

// ParseTerrain parses a terrain name case-insensitively.
func ParseTerrain(s string) (Terrain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plains", "plain":
		return Plains, nil
	case "hill", "hills":
		return Hill, nil
	}
	return Plains, fmt.Errorf("unknown terrain %q", s)
}
