package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

func TestMoveInsideGrid(t *testing.T) {
	g := newTestGrid(t, 8, 6)
	start := mustHexAt(t, g, 2, 4)

	want := map[Direction]hex.Key{
		East:      {Row: 2, Col: 6},
		NorthEast: {Row: 1, Col: 5},
		NorthWest: {Row: 1, Col: 3},
		West:      {Row: 2, Col: 2},
		SouthWest: {Row: 3, Col: 3},
		SouthEast: {Row: 3, Col: 5},
	}
	for _, d := range Directions() {
		assert.True(t, g.CanMove(start, d), "%s", d)
		assert.Equal(t, want[d], g.Move(start, d).Key(), "%s", d)
	}
	assert.Equal(t, want[East], g.MoveEast(start).Key())
	assert.Equal(t, want[NorthEast], g.MoveNorthEast(start).Key())
	assert.Equal(t, want[NorthWest], g.MoveNorthWest(start).Key())
	assert.Equal(t, want[West], g.MoveWest(start).Key())
	assert.Equal(t, want[SouthWest], g.MoveSouthWest(start).Key())
	assert.Equal(t, want[SouthEast], g.MoveSouthEast(start).Key())
}

func TestMoveBlockedWithoutWrap(t *testing.T) {
	g := newTestGrid(t, 8, 6)

	corner := mustHexAt(t, g, 0, 0)
	for _, d := range []Direction{West, NorthWest, NorthEast, SouthWest} {
		assert.False(t, g.CanMove(corner, d), "%s", d)
		assert.True(t, g.Move(corner, d).Equal(corner), "%s", d)
	}

	east := mustHexAt(t, g, 1, 7)
	assert.False(t, g.CanMoveEast(east))
	assert.False(t, g.CanMoveSouthEast(east))
	assert.True(t, g.CanMoveWest(east))
	assert.True(t, g.MoveEast(east).Equal(east))

	// col 6 on an even row is the last hex; two columns east would leave the grid
	assert.False(t, g.CanMoveEast(mustHexAt(t, g, 0, 6)))
	assert.False(t, g.CanMoveWest(mustHexAt(t, g, 1, 1)))
}

func TestMoveWraps(t *testing.T) {
	g := newTestGrid(t, 8, 6, WithWrap(true))

	cases := []struct {
		from hex.Key
		dir  Direction
		want hex.Key
	}{
		{hex.Key{Row: 0, Col: 6}, East, hex.Key{Row: 0, Col: 0}},
		{hex.Key{Row: 0, Col: 0}, West, hex.Key{Row: 0, Col: 6}},
		{hex.Key{Row: 0, Col: 0}, NorthWest, hex.Key{Row: 5, Col: 7}},
		{hex.Key{Row: 0, Col: 2}, NorthEast, hex.Key{Row: 5, Col: 3}},
		{hex.Key{Row: 5, Col: 7}, SouthEast, hex.Key{Row: 0, Col: 0}},
		{hex.Key{Row: 5, Col: 1}, SouthWest, hex.Key{Row: 0, Col: 0}},
		{hex.Key{Row: 1, Col: 7}, East, hex.Key{Row: 1, Col: 1}},
	}
	for _, c := range cases {
		from := mustHexAt(t, g, c.from.Row, c.from.Col)
		got := g.Move(from, c.dir)
		assert.Equal(t, c.want, got.Key(), "%v %s", c.from, c.dir)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	g := newTestGrid(t, 8, 6, WithWrap(true))
	opposite := map[Direction]Direction{
		East: West, West: East,
		NorthEast: SouthWest, SouthWest: NorthEast,
		NorthWest: SouthEast, SouthEast: NorthWest,
	}
	for _, h := range g.Hexes() {
		for _, d := range Directions() {
			back := g.Move(g.Move(h, d), opposite[d])
			assert.True(t, back.Equal(h), "%v %s and back gave %v", h, d, back)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"east":       East,
		"North-East": NorthEast,
		"nw":         NorthWest,
		"l":          West,
		"south_west": SouthWest,
		"dr":         SouthEast,
	} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDirection("up")
	require.Error(t, err)
	assert.Equal(t, "southeast", SouthEast.String())
}
