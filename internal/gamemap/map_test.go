package gamemap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/hexroute/internal/config"
	"github.com/gravitas-games/hexroute/pkg/hexcore"
	"github.com/gravitas-games/hexroute/pkg/hexcore/grid"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewFromDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.Seed = 12

	m, err := New(cfg, nil, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 8, m.Grid.Width())
	assert.Equal(t, 6, m.Grid.Height())
	assert.Equal(t, 24, m.Grid.Len())
	assert.Equal(t, int64(12), m.Seed)
	assert.False(t, m.Grid.Wrap())
	assert.Same(t, m.Grid, m.Resolver.Grid())
}

func TestSameSeedSameLayout(t *testing.T) {
	for _, src := range []string{config.SourceUniform, config.SourceHashed, config.SourceNoise} {
		cfg := config.Default()
		cfg.Terrain.Source = src
		cfg.Terrain.Seed = 99

		a, err := New(cfg, nil, quietLogger())
		require.NoError(t, err)
		b, err := New(cfg, nil, quietLogger())
		require.NoError(t, err)
		assert.Equal(t, a.Grid.Hexes(), b.Grid.Hexes(), src)
	}
}

func TestWrapAndModeFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Wrap = true
	cfg.Grid.WrapMode = "legacy"
	cfg.Terrain.Source = config.SourcePlains

	m, err := New(cfg, nil, quietLogger())
	require.NoError(t, err)
	assert.True(t, m.Grid.Wrap())
	assert.Equal(t, grid.WrapLegacy, m.Grid.WrapMode())
	assert.Zero(t, m.HillCount())
	for _, h := range m.Grid.Hexes() {
		assert.Equal(t, hexcore.Plains, h.Terrain())
	}
}

func TestZeroSeedIsRecorded(t *testing.T) {
	m, err := New(config.Default(), nil, quietLogger())
	require.NoError(t, err)
	assert.NotZero(t, m.Seed)
}

func TestRejectsUnknownSource(t *testing.T) {
	cfg := config.Default()
	cfg.Terrain.Source = "lava"
	_, err := New(cfg, nil, quietLogger())
	require.Error(t, err)
}
