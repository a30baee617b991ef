// Package path finds routes across a grid: terrain-weighted A*, the wrap
// resolver that tries each way round a wrapped grid, breadth-first floods and
// concurrent batches.
package path

import (
	"strings"

	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

// Path is an ordered sequence of hexes from a start to an end, inclusive.
type Path struct {
	hexes []hex.Hex
}

// NewPath wraps hexes as a path. The slice is copied.
func NewPath(hexes []hex.Hex) Path {
	return Path{hexes: append([]hex.Hex(nil), hexes...)}
}

// Hexes returns a copy of the hexes along the path.
func (p Path) Hexes() []hex.Hex { return append([]hex.Hex(nil), p.hexes...) }

// Len returns the number of hexes.
func (p Path) Len() int { return len(p.hexes) }

// Length returns the number of steps, one less than the hex count. An empty
// path has length 0.
func (p Path) Length() int {
	if len(p.hexes) == 0 {
		return 0
	}
	return len(p.hexes) - 1
}

func (p Path) Empty() bool { return len(p.hexes) == 0 }

func (p Path) Start() hex.Hex {
	if len(p.hexes) == 0 {
		return hex.Hex{}
	}
	return p.hexes[0]
}

func (p Path) End() hex.Hex {
	if len(p.hexes) == 0 {
		return hex.Hex{}
	}
	return p.hexes[len(p.hexes)-1]
}

// Costs returns the cost of each step, so len(Costs()) == Length().
func (p Path) Costs() []int {
	if len(p.hexes) < 2 {
		return []int{}
	}
	costs := make([]int, 0, len(p.hexes)-1)
	for i := 1; i < len(p.hexes); i++ {
		costs = append(costs, StepCost(p.hexes[i-1], p.hexes[i]))
	}
	return costs
}

// Cost returns the total movement cost.
func (p Path) Cost() int {
	total := 0
	for _, c := range p.Costs() {
		total += c
	}
	return total
}

// Contains reports whether the path passes through h.
func (p Path) Contains(h hex.Hex) bool {
	for _, x := range p.hexes {
		if x.Equal(h) {
			return true
		}
	}
	return false
}

// String renders the path as "(r,c) -> (r,c) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p.hexes))
	for i, h := range p.hexes {
		parts[i] = h.String()
	}
	return strings.Join(parts, " -> ")
}
