package gamemap

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gravitas-games/hexroute/internal/config"
	"github.com/gravitas-games/hexroute/pkg/hexcore"
	"github.com/gravitas-games/hexroute/pkg/hexcore/grid"
	"github.com/gravitas-games/hexroute/pkg/hexcore/path"
)

// GameMap is the session-scoped hex grid together with the resolver that
// answers distance and path queries against it.
type GameMap struct {
	Grid     *grid.Grid
	Resolver *path.Resolver
	Seed     int64
	Source   string
}

// New builds the grid described by cfg. A zero seed is replaced by a
// time-based one, which is recorded on the map so a layout can be reproduced.
func New(cfg *config.Config, obs path.Observer, logger *slog.Logger) (*GameMap, error) {
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	src, err := terrainSource(cfg.Terrain, seed)
	if err != nil {
		return nil, err
	}
	mode, err := grid.ParseWrapMode(cfg.Grid.WrapMode)
	if err != nil {
		return nil, err
	}

	logger.Info("generating hex grid",
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"terrain", cfg.Terrain.Source,
		"seed", seed,
	)
	g, err := grid.New(cfg.Grid.Width, cfg.Grid.Height, src,
		grid.WithWrapMode(mode),
		grid.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	if err := g.SetWrap(cfg.Grid.Wrap); err != nil {
		return nil, err
	}

	return &GameMap{
		Grid:     g,
		Resolver: path.NewResolver(g, obs),
		Seed:     seed,
		Source:   cfg.Terrain.Source,
	}, nil
}

func terrainSource(cfg config.TerrainConfig, seed int64) (grid.TerrainSource, error) {
	switch cfg.Source {
	case config.SourceUniform:
		return grid.UniformTerrain(rand.New(rand.NewSource(seed))), nil
	case config.SourceHashed:
		return grid.HashedTerrain(seed, cfg.HillRatio), nil
	case config.SourceNoise:
		return grid.NoiseTerrain(seed, cfg.NoiseScale, cfg.NoiseThreshold), nil
	case config.SourcePlains:
		return grid.FixedTerrain(hexcore.Plains), nil
	}
	return nil, fmt.Errorf("unknown terrain source %q", cfg.Source)
}

// HillCount returns the number of hill hexes on the map.
func (m *GameMap) HillCount() int {
	n := 0
	for _, h := range m.Grid.Hexes() {
		if h.Terrain() == hexcore.Hill {
			n++
		}
	}
	return n
}
