// Package grid implements a rectangular hex grid in double-width coordinates
// with optional toroidal wrap.
//
// A Grid has no internal locking. Any number of goroutines may query a grid
// concurrently, but SetWrap, SetWrapMode and SetTerrain must not run while
// queries are in flight.
package grid

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gravitas-games/hexroute/pkg/hexcore"
	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

var (
	// ErrOutOfBounds is returned for coordinates that name no hex in the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidDimensions is returned by New for unusable extents.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrWrapUnsupported is returned when enabling wrap on an odd height.
	ErrWrapUnsupported = errors.New("wrap requires an even height")
)

// WrapMode selects how wrapped distances are computed.
type WrapMode int

const (
	// WrapExact takes the shortest displacement on each axis of the torus.
	WrapExact WrapMode = iota
	// WrapLegacy translates the larger-column endpoint west, north and
	// north-west and keeps the smallest of the four distances.
	WrapLegacy
)

func (m WrapMode) String() string {
	switch m {
	case WrapExact:
		return "exact"
	case WrapLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("wrapmode(%d)", int(m))
	}
}

// ParseWrapMode parses "exact" or "legacy". The empty string is WrapExact.
func ParseWrapMode(s string) (WrapMode, error) {
	switch s {
	case "", "exact":
		return WrapExact, nil
	case "legacy":
		return WrapLegacy, nil
	}
	return WrapExact, fmt.Errorf("unknown wrap mode %q", s)
}

// Grid owns the hexes of a width x height double-width layout. Row i holds
// the columns {0,2,4,...} when i is even and {1,3,5,...} when i is odd.
type Grid struct {
	width  int
	height int
	rows   [][]hex.Hex

	wrap     bool
	wrapMode WrapMode
	logger   *slog.Logger
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithWrap sets the initial wrap flag. It is ignored for odd heights.
func WithWrap(enabled bool) Option {
	return func(g *Grid) { g.wrap = enabled }
}

// WithWrapMode sets the wrapped distance mode.
func WithWrapMode(m WrapMode) Option {
	return func(g *Grid) { g.wrapMode = m }
}

// WithLogger sets the logger used for construction and wrap changes.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) { g.logger = l }
}

// New builds a grid and asks src for the terrain of every hex, row by row.
// A nil src gives an all-plains grid.
func New(width, height int, src TerrainSource, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 || width%2 != 0 {
		return nil, fmt.Errorf("%dx%d: width must be positive and even, height positive: %w", width, height, ErrInvalidDimensions)
	}
	if src == nil {
		src = FixedTerrain(hexcore.Plains)
	}

	g := &Grid{
		width:  width,
		height: height,
		rows:   make([][]hex.Hex, height),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.wrap && height%2 != 0 {
		g.logger.Warn("wrap disabled for odd grid height", "height", height)
		g.wrap = false
	}

	hills := 0
	for row := 0; row < height; row++ {
		hexes := make([]hex.Hex, 0, width/2)
		// odd rows start at column 1
		for col := row % 2; col < width; col += 2 {
			h := hex.MustNew(row, col)
			t := src.TerrainAt(h)
			if t == hexcore.Hill {
				hills++
			}
			hexes = append(hexes, h.WithTerrain(t))
		}
		g.rows[row] = hexes
	}

	g.logger.Debug("hex grid generated",
		"width", width,
		"height", height,
		"hexes", g.Len(),
		"hills", hills,
		"wrap", g.wrap,
		"wrap_mode", g.wrapMode.String(),
	)
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Len returns the number of hexes in the grid.
func (g *Grid) Len() int {
	n := 0
	for _, r := range g.rows {
		n += len(r)
	}
	return n
}

// Rows returns a copy of the hexes, one slice per row.
func (g *Grid) Rows() [][]hex.Hex {
	out := make([][]hex.Hex, len(g.rows))
	for i, r := range g.rows {
		out[i] = append([]hex.Hex(nil), r...)
	}
	return out
}

// Hexes returns every hex in row-major order.
func (g *Grid) Hexes() []hex.Hex {
	out := make([]hex.Hex, 0, g.Len())
	for _, r := range g.rows {
		out = append(out, r...)
	}
	return out
}

func (g *Grid) Wrap() bool { return g.wrap }

// SetWrap toggles toroidal topology for subsequent queries.
func (g *Grid) SetWrap(enabled bool) error {
	if enabled && g.height%2 != 0 {
		return fmt.Errorf("height %d: %w", g.height, ErrWrapUnsupported)
	}
	if g.wrap != enabled {
		g.logger.Debug("wrap toggled", "wrap", enabled)
	}
	g.wrap = enabled
	return nil
}

func (g *Grid) WrapMode() WrapMode { return g.wrapMode }

func (g *Grid) SetWrapMode(m WrapMode) { g.wrapMode = m }

// Contains reports whether (row, col) names a hex of the grid without any
// wrapping.
func (g *Grid) Contains(row, col int) bool {
	if (row+col)%2 != 0 {
		return false
	}
	if row < 0 || row >= g.height || col < 0 {
		return false
	}
	return col/2 < len(g.rows[row])
}

// HexAt returns the hex at (row, col). With wrap enabled out-of-range
// coordinates are reduced modulo the grid extents first.
func (g *Grid) HexAt(row, col int) (hex.Hex, error) {
	if g.wrap {
		row = wrapIndex(row, g.height)
		col = wrapIndex(col, g.width)
	}
	if !g.Contains(row, col) {
		return hex.Hex{}, fmt.Errorf("(row %d, col %d) in %dx%d grid: %w", row, col, g.width, g.height, ErrOutOfBounds)
	}
	return g.rows[row][col/2], nil
}

// Resolve returns the grid's copy of h, with its current terrain.
func (g *Grid) Resolve(h hex.Hex) (hex.Hex, error) {
	return g.HexAt(h.Row(), h.Col())
}

// SetTerrain changes the terrain of the hex at (row, col). Wrapped
// coordinates are accepted when wrap is enabled.
func (g *Grid) SetTerrain(row, col int, t hexcore.Terrain) error {
	h, err := g.HexAt(row, col)
	if err != nil {
		return err
	}
	g.rows[h.Row()][h.Col()/2] = h.WithTerrain(t)
	return nil
}

// Neighbours returns the adjacent hexes of h in Offsets order. Without wrap,
// neighbours outside the grid are dropped; with wrap there are always six.
func (g *Grid) Neighbours(h hex.Hex) []hex.Hex {
	out := make([]hex.Hex, 0, len(hex.Offsets))
	for i := range hex.Offsets {
		k := h.Neighbour(i)
		if !g.wrap && !g.Contains(k.Row, k.Col) {
			continue
		}
		n, err := g.HexAt(k.Row, k.Col)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Adjacent reports whether b is one of a's neighbours under the current wrap
// setting.
func (g *Grid) Adjacent(a, b hex.Hex) bool {
	for _, n := range g.Neighbours(a) {
		if n.Equal(b) {
			return true
		}
	}
	return false
}

// wrapIndex reduces v into [0, n), adding the modulus before the remainder so
// negative inputs land in range.
func wrapIndex(v, n int) int {
	return ((v % n) + n) % n
}
