package hex

// Axial represents axial coordinates (q, r). In double-width space r is the row
// and q = (col - row) / 2.
type Axial struct {
	Q int
	R int
}

// Cube represents cube coordinates (x, y, z) with x+y+z=0.
type Cube struct {
	X int
	Y int
	Z int
}

// Directions for axial neighbours, anticlockwise starting east. The table is
// index-aligned with Offsets.
var Directions = [6]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Sub returns a-b in axial space.
func (a Axial) Sub(b Axial) Axial { return Axial{a.Q - b.Q, a.R - b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// S returns the implicit third cube coordinate.
func (a Axial) S() int { return -a.Q - a.R }

// ToCube converts axial to cube.
func (a Axial) ToCube() Cube {
	x := a.Q
	z := a.R
	y := -x - z
	return Cube{X: x, Y: y, Z: z}
}

// ToAxial converts cube to axial.
func (c Cube) ToAxial() Axial { return Axial{Q: c.X, R: c.Z} }

// DoubleWidth returns the double-width (row, col) of an axial coordinate.
// The result always satisfies (row+col) mod 2 == 0.
func (a Axial) DoubleWidth() (row, col int) {
	return a.R, 2*a.Q + a.R
}

// DistanceAxial returns hex distance between two axial coords:
// (|dq| + |dq+dr| + |dr|) / 2.
func DistanceAxial(a, b Axial) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

// DistanceCube returns hex distance between two cube coords.
func DistanceCube(a, b Cube) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y), abs(a.Z-b.Z))
}

// DistanceDoubleWidth returns the hex distance for a double-width displacement.
// dRow and dCol may be negative; only their magnitudes matter.
func DistanceDoubleWidth(dRow, dCol int) int {
	dRow, dCol = abs(dRow), abs(dCol)
	return dRow + max(0, (dCol-dRow)/2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
