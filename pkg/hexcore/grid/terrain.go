package grid

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gravitas-games/hexroute/pkg/hexcore"
	"github.com/gravitas-games/hexroute/pkg/hexcore/hex"
)

// TerrainSource assigns terrain to each hex while a grid is built.
type TerrainSource interface {
	TerrainAt(h hex.Hex) hexcore.Terrain
}

// TerrainFunc adapts a function to TerrainSource.
type TerrainFunc func(h hex.Hex) hexcore.Terrain

func (f TerrainFunc) TerrainAt(h hex.Hex) hexcore.Terrain { return f(h) }

// FixedTerrain assigns the same terrain everywhere.
func FixedTerrain(t hexcore.Terrain) TerrainSource {
	return TerrainFunc(func(hex.Hex) hexcore.Terrain { return t })
}

// UniformTerrain picks uniformly from hexcore.Terrains using rng. Grids are
// built row-major, so the same seed always gives the same layout.
func UniformTerrain(rng *rand.Rand) TerrainSource {
	return TerrainFunc(func(hex.Hex) hexcore.Terrain {
		return hexcore.Terrains[rng.Intn(len(hexcore.Terrains))]
	})
}

// HashedTerrain derives terrain from a seeded hash of the coordinate, so a
// cell's terrain does not depend on construction order. hillRatio is the
// approximate share of hills in [0, 1].
func HashedTerrain(seed int64, hillRatio float64) TerrainSource {
	threshold := ratioThreshold(hillRatio)
	return TerrainFunc(func(h hex.Hex) hexcore.Terrain {
		if hashCoordWithSeed(seed, h.Key()) < threshold {
			return hexcore.Hill
		}
		return hexcore.Plains
	})
}

func ratioThreshold(ratio float64) uint64 {
	switch {
	case ratio <= 0:
		return 0
	case ratio >= 1:
		return math.MaxUint64
	}
	return uint64(ratio * float64(math.MaxUint64))
}

func hashCoordWithSeed(seed int64, k hex.Key) uint64 {
	// splitmix-like integer hashing mixed with double-width coords
	x := uint64(seed)
	x ^= uint64(uint32(k.Col)) * 0x9E3779B97F4A7C15
	x ^= uint64(uint32(k.Row)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

// NoiseTerrain samples normalized simplex noise at each hex centre and marks
// cells above threshold as hills, giving clustered ridges instead of uniform
// scatter. scale is the sampling frequency; around 0.15 suits small grids.
func NoiseTerrain(seed int64, scale, threshold float64) TerrainSource {
	noise := opensimplex.NewNormalized(seed)
	return TerrainFunc(func(h hex.Hex) hexcore.Terrain {
		// double-width centres: x advances half a hex per column, rows are sqrt(3)/2 apart
		x := float64(h.Col()) * 0.5
		y := float64(h.Row()) * math.Sqrt(3.0) / 2.0
		if noise.Eval2(x*scale, y*scale) > threshold {
			return hexcore.Hill
		}
		return hexcore.Plains
	})
}
