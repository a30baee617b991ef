package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/hexroute/pkg/hexcore"
)

func TestNewRejectsOddParity(t *testing.T) {
	_, err := New(0, 1)
	require.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = New(-3, 2)
	require.ErrorIs(t, err, ErrInvalidCoordinate)

	h, err := New(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Row())
	assert.Equal(t, 5, h.Col())
	assert.Equal(t, hexcore.Plains, h.Terrain())
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(2, 1) })
}

func TestAxialInvariants(t *testing.T) {
	for row := -6; row <= 6; row++ {
		for col := -12; col <= 12; col++ {
			if (row+col)%2 != 0 {
				continue
			}
			h := MustNew(row, col)
			assert.Equal(t, 0, h.Q()+h.R()+h.S(), "q+r+s for %v", h)
			assert.Equal(t, row, h.R())
			c := h.Cube()
			assert.Equal(t, 0, c.X+c.Y+c.Z)
			assert.Equal(t, h.Axial(), c.ToAxial())
			back := FromAxial(h.Axial())
			assert.True(t, back.Equal(h), "round trip %v -> %v", h, back)
		}
	}
}

func TestDistanceFormulasAgree(t *testing.T) {
	var hexes []Hex
	for row := -4; row <= 4; row++ {
		for col := -8; col <= 8; col++ {
			if (row+col)%2 == 0 {
				hexes = append(hexes, MustNew(row, col))
			}
		}
	}
	for _, a := range hexes {
		for _, b := range hexes {
			d := Distance(a, b)
			require.Equal(t, d, AxialDistance(a, b), "%v -> %v", a, b)
			require.Equal(t, d, DistanceCube(a.Cube(), b.Cube()), "%v -> %v", a, b)
			require.Equal(t, d, Distance(b, a))
		}
		require.Zero(t, Distance(a, a))
	}
}

func TestDistanceKnownPairs(t *testing.T) {
	origin := MustNew(0, 0)
	assert.Equal(t, 1, Distance(origin, MustNew(0, 2)))
	assert.Equal(t, 1, Distance(origin, MustNew(1, 1)))
	assert.Equal(t, 2, Distance(origin, MustNew(0, 4)))
	assert.Equal(t, 2, Distance(origin, MustNew(2, 0)))
	assert.Equal(t, 3, Distance(origin, MustNew(1, 5)))
}

func TestOffsetsMatchDirections(t *testing.T) {
	origin := MustNew(0, 0)
	for i, d := range Directions {
		row, col := d.DoubleWidth()
		assert.Equal(t, Offsets[i].DRow, row, "direction %d", i)
		assert.Equal(t, Offsets[i].DCol, col, "direction %d", i)
		k := origin.Neighbour(i)
		assert.Equal(t, 1, DistanceDoubleWidth(k.Row, k.Col))
	}
}

func TestEqualIgnoresTerrain(t *testing.T) {
	a := MustNew(2, 4)
	b := a.WithTerrain(hexcore.Hill)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, hexcore.Hill, b.Terrain())
	assert.Equal(t, hexcore.Plains, a.Terrain())
}

func TestTranslate(t *testing.T) {
	h := MustNew(1, 3).WithTerrain(hexcore.Hill)
	moved, err := h.Translate(-6, -8)
	require.NoError(t, err)
	assert.Equal(t, Key{Row: -5, Col: -5}, moved.Key())
	assert.Equal(t, hexcore.Hill, moved.Terrain())

	_, err = h.Translate(1, 0)
	require.ErrorIs(t, err, ErrInvalidCoordinate)
}
