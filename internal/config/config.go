package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tomz197/shooter/internal/physics"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultPath is used when SHOOTER_CONFIG is unset.
const DefaultPath = "shooter.toml"

type Config struct {
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
	Display DisplayConfig `toml:"display"`
}

type GameConfig struct {
	Seed       uint32  `toml:"seed"`
	Boundary   string  `toml:"boundary"` // "bounded" or "wrap"
	ItemDrift  float64 `toml:"item_drift"`
	DebugKeys  bool    `toml:"debug_keys"`
	SpawnTable string  `toml:"spawn_table"` // YAML file; empty uses the built-in table
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text", "json" or "logfmt"
	File   string `toml:"file"`   // empty discards log output
}

type DisplayConfig struct {
	FPS int `toml:"fps"`
}

// Load reads the TOML file at path over the defaults. A missing file at
// DefaultPath is not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
		return defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			Boundary: "bounded",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "shooter.log",
		},
		Display: DisplayConfig{
			FPS: 60,
		},
	}
}

// Validate checks the values that cannot be checked by decoding alone.
func (c *Config) Validate() error {
	if _, err := physics.ParseBoundary(c.Game.Boundary); err != nil {
		return fmt.Errorf("%w: game.boundary: %v", ErrInvalidConfig, err)
	}
	if c.Game.ItemDrift < 0 {
		return fmt.Errorf("%w: game.item_drift must not be negative", ErrInvalidConfig)
	}
	if _, err := parseFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("%w: logging.format: %v", ErrInvalidConfig, err)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("%w: display.fps must be positive, got %d", ErrInvalidConfig, c.Display.FPS)
	}
	return nil
}

// BoundaryMode returns the parsed playfield boundary. Call after Validate.
func (g GameConfig) BoundaryMode() physics.Boundary {
	b, _ := physics.ParseBoundary(g.Boundary)
	return b
}
