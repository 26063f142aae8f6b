// Package config loads game settings from an optional HCL file.
//
// Every block and attribute is optional:
//
//	grid {
//	  size = 4
//	}
//	spawn {
//	  seed  = 42
//	  count = 2
//	}
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"game2048/internal/component"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved set of settings.
type Config struct {
	Grid  GridConfig
	Spawn SpawnConfig
	Log   LogConfig
}

// GridConfig sets the board dimensions.
type GridConfig struct {
	Size int
}

// SpawnConfig controls the initial tiles.
type SpawnConfig struct {
	// Seed 0 means seed from the clock.
	Seed  int64
	Count int
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string
	Format string
}

// fileRoot mirrors the HCL file layout; nil blocks keep their defaults.
// Without a remain field gohcl rejects unknown blocks and attributes.
type fileRoot struct {
	Grid  *gridBlock  `hcl:"grid,block"`
	Spawn *spawnBlock `hcl:"spawn,block"`
	Log   *logBlock   `hcl:"log,block"`
}

type gridBlock struct {
	Size *int `hcl:"size,optional"`
}

type spawnBlock struct {
	Seed  *int64 `hcl:"seed,optional"`
	Count *int   `hcl:"count,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Default returns the classic 4×4 game with two starting tiles.
func Default() *Config {
	return &Config{
		Grid:  GridConfig{Size: component.DefaultGridSize},
		Spawn: SpawnConfig{Count: 2},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the HCL file at path on top of Default and validates the result.
func Load(path string) (*Config, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(f, path)
}

// Parse is Load for in-memory sources; filename is only used in messages.
func Parse(src []byte, filename string) (*Config, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (*Config, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}
	cfg := Default()
	if g := root.Grid; g != nil && g.Size != nil {
		cfg.Grid.Size = *g.Size
	}
	if s := root.Spawn; s != nil {
		if s.Seed != nil {
			cfg.Spawn.Seed = *s.Seed
		}
		if s.Count != nil {
			cfg.Spawn.Count = *s.Count
		}
	}
	if l := root.Log; l != nil {
		if l.Level != nil {
			cfg.Log.Level = *l.Level
		}
		if l.Format != nil {
			cfg.Log.Format = *l.Format
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerated values.
func (c *Config) Validate() error {
	if c.Grid.Size < 1 {
		return fmt.Errorf("%w: grid size must be at least 1, got %d", ErrInvalidConfig, c.Grid.Size)
	}
	if c.Grid.Size > component.MaxGridSize {
		return fmt.Errorf("%w: grid size must be at most %d, got %d", ErrInvalidConfig, component.MaxGridSize, c.Grid.Size)
	}
	if c.Spawn.Count < 0 {
		return fmt.Errorf("%w: spawn count must not be negative, got %d", ErrInvalidConfig, c.Spawn.Count)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, l.Level)
	}
	return lvl, nil
}

// NewLogger builds a logger writing to w with the configured level and
// format. Invalid settings fall back to info/text.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := l.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
