package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/hexroute/pkg/hexcore/grid"
)

// Config holds all hexroute configuration
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Terrain TerrainConfig `yaml:"terrain"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig holds the grid extents and topology
type GridConfig struct {
	Width    int    `yaml:"width"`  // double-width units, must be even
	Height   int    `yaml:"height"` // must be even when wrap is enabled
	Wrap     bool   `yaml:"wrap"`
	WrapMode string `yaml:"wrap_mode"` // "exact" or "legacy"
}

// TerrainConfig selects how terrain is assigned at grid construction
type TerrainConfig struct {
	Source         string  `yaml:"source"` // "uniform", "hashed", "noise", "plains"
	Seed           int64   `yaml:"seed"`   // 0 picks a random seed
	HillRatio      float64 `yaml:"hill_ratio"`
	NoiseScale     float64 `yaml:"noise_scale"`
	NoiseThreshold float64 `yaml:"noise_threshold"`
}

// SearchConfig holds path search settings
type SearchConfig struct {
	Workers int `yaml:"workers"` // concurrent searches in a batch
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Terrain source names.
const (
	SourceUniform = "uniform"
	SourceHashed  = "hashed"
	SourceNoise   = "noise"
	SourcePlains  = "plains"
)

var errInvalid = errors.New("invalid configuration")

// Default returns the configuration used when no file is given: the 8x6
// board of the console demo with uniform random terrain.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Grid.Width == 0 {
		c.Grid.Width = 8
	}
	if c.Grid.Height == 0 {
		c.Grid.Height = 6
	}
	if c.Grid.WrapMode == "" {
		c.Grid.WrapMode = grid.WrapExact.String()
	}
	if c.Terrain.Source == "" {
		c.Terrain.Source = SourceUniform
	}
	if c.Terrain.HillRatio == 0 {
		c.Terrain.HillRatio = 0.5
	}
	if c.Terrain.NoiseScale == 0 {
		c.Terrain.NoiseScale = 0.15
	}
	if c.Terrain.NoiseThreshold == 0 {
		c.Terrain.NoiseThreshold = 0.55
	}
	if c.Search.Workers == 0 {
		c.Search.Workers = 4
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate rejects settings the grid cannot be built with.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Width%2 != 0 {
		errs = append(errs, fmt.Errorf("grid.width %d must be positive and even", c.Grid.Width))
	}
	if c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid.height %d must be positive", c.Grid.Height))
	}
	if c.Grid.Wrap && c.Grid.Height%2 != 0 {
		errs = append(errs, fmt.Errorf("grid.height %d must be even when wrap is enabled", c.Grid.Height))
	}
	if _, err := grid.ParseWrapMode(c.Grid.WrapMode); err != nil {
		errs = append(errs, fmt.Errorf("grid.wrap_mode: %w", err))
	}
	switch c.Terrain.Source {
	case SourceUniform, SourceHashed, SourceNoise, SourcePlains:
	default:
		errs = append(errs, fmt.Errorf("terrain.source %q is not one of uniform, hashed, noise, plains", c.Terrain.Source))
	}
	if c.Terrain.HillRatio < 0 || c.Terrain.HillRatio > 1 {
		errs = append(errs, fmt.Errorf("terrain.hill_ratio %v must be within [0, 1]", c.Terrain.HillRatio))
	}
	if c.Search.Workers < 0 {
		errs = append(errs, fmt.Errorf("search.workers %d must not be negative", c.Search.Workers))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", errInvalid, errors.Join(errs...))
	}
	return nil
}

// IsInvalid reports whether err came from Validate.
func IsInvalid(err error) bool { return errors.Is(err, errInvalid) }

// SlogLevel maps the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q: %w", l.Level, err)
	}
	return lvl, nil
}
