package grid

import (
	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

// WrappedDistance returns the number of steps between a and b, taking the
// shortest way around the grid edges when wrap is enabled. a and b need not
// be grid members.
func (g *Grid) WrappedDistance(a, b hex.Hex) int {
	if !g.wrap {
		return hex.Distance(a, b)
	}
	if g.wrapMode == WrapLegacy {
		return g.legacyWrappedDistance(a, b)
	}
	return g.torusDistance(a, b)
}

// torusDistance is the exact wrapped distance regardless of wrap mode.
func (g *Grid) torusDistance(a, b hex.Hex) int {
	if !g.wrap {
		return hex.Distance(a, b)
	}
	dRow := torusDelta(a.Row()-b.Row(), g.height)
	dCol := torusDelta(a.Col()-b.Col(), g.width)
	return hex.DistanceDoubleWidth(dRow, dCol)
}

// torusDelta returns the shorter of the two ways round a ring of size n.
func torusDelta(d, n int) int {
	d = wrapIndex(d, n)
	return min(d, n-d)
}

// legacyWrappedDistance brings the larger-column endpoint around the west and
// north edges and keeps the smallest distance. It only ever translates one
// endpoint west or north, so it can exceed the exact value when the shorter
// way round runs south of the candidate.
func (g *Grid) legacyWrappedDistance(a, b hex.Hex) int {
	candidate, other := WrapCandidate(a, b)
	best := hex.Distance(a, b)
	for _, t := range g.wrapTranslations()[1:] {
		d := hex.DistanceDoubleWidth(candidate.Row()+t.DRow-other.Row(), candidate.Col()+t.DCol-other.Col())
		best = min(best, d)
	}
	return best
}

// WrapCandidate returns the endpoint with the larger column first. On equal
// columns b is the candidate.
func WrapCandidate(a, b hex.Hex) (candidate, other hex.Hex) {
	if a.Col() > b.Col() {
		return a, b
	}
	return b, a
}

// WrapTranslations lists the displacements applied to a wrap candidate:
// none, around the west edge, around the north edge, and around both.
func (g *Grid) WrapTranslations() []hex.Offset {
	return g.wrapTranslations()
}

func (g *Grid) wrapTranslations() []hex.Offset {
	return []hex.Offset{
		{},
		{DCol: -g.width},
		{DRow: -g.height},
		{DCol: -g.width, DRow: -g.height},
	}
}

// Range returns the grid hexes within k steps of center, without duplicates,
// ordered by axial q then r around center. Steps may cross the grid edges
// when wrap is enabled.
func (g *Grid) Range(center hex.Hex, k int) []hex.Hex {
	return g.collect(hex.Disk(center.Axial(), k))
}

// Ring returns the grid hexes exactly k steps from center.
func (g *Grid) Ring(center hex.Hex, k int) []hex.Hex {
	if k < 0 {
		return nil
	}
	out := g.collect(hex.Ring(center.Axial(), k))
	// on small wrapped grids a disk reaches round to meet itself
	kept := out[:0]
	for _, h := range out {
		if g.torusDistance(center, h) == k {
			kept = append(kept, h)
		}
	}
	return kept
}

func (g *Grid) collect(cells []hex.Axial) []hex.Hex {
	out := make([]hex.Hex, 0, len(cells))
	seen := make(map[hex.Key]bool, len(cells))
	for _, a := range cells {
		row, col := a.DoubleWidth()
		h, err := g.HexAt(row, col)
		if err != nil {
			continue
		}
		if seen[h.Key()] {
			continue
		}
		seen[h.Key()] = true
		out = append(out, h)
	}
	return out
}
