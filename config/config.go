// Package config holds the game's tunables and reads them from a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deitrix/blockpuzzle/grid"
	"github.com/deitrix/blockpuzzle/layout"
	"github.com/deitrix/blockpuzzle/palette"
	"github.com/deitrix/blockpuzzle/shape"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is everything that can be tuned without recompiling.
type Config struct {
	Grid   grid.Config   `json:"grid"`
	Layout layout.Layout `json:"layout"`
	// Refresh is the palette refresh policy: "empty" or "always".
	Refresh string `json:"refresh"`
	// Catalog names the shape catalog pieces are dealt from: "classic" or "tetromino".
	Catalog string `json:"catalog"`
	// PaletteSize is how many pieces a random deal holds. 0 deals the whole catalog in order.
	PaletteSize int `json:"palette_size"`
	// Seed seeds random deals. 0 picks a seed at startup.
	Seed uint64 `json:"seed"`
}

// Default is the classic game: a 9x9 grid, the I/T/O set dealt in order, refreshed once
// every piece has been used.
func Default() Config {
	return Config{
		Grid:    grid.DefaultConfig(),
		Layout:  layout.Default(),
		Refresh: palette.RefreshWhenEmpty.String(),
		Catalog: shape.CatalogClassic,
	}
}

// Validate fails on any setting the game could not start with.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := palette.ParseRefreshPolicy(c.Refresh); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := shape.CatalogByName(c.Catalog); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.PaletteSize < 0 {
		return fmt.Errorf("%w: palette size %d is negative", ErrInvalidConfig, c.PaletteSize)
	}
	return nil
}

// RefreshPolicy returns the parsed refresh policy. Call Validate first.
func (c Config) RefreshPolicy() palette.RefreshPolicy {
	p, _ := palette.ParseRefreshPolicy(c.Refresh)
	return p
}

// Generator returns the piece generator the config describes. Call Validate first.
func (c Config) Generator() palette.Generator {
	catalog, _ := shape.CatalogByName(c.Catalog)
	if c.PaletteSize == 0 {
		return palette.Fixed{Catalog: catalog}
	}
	return palette.NewRandom(catalog, c.PaletteSize, c.Seed)
}

// DefaultDir returns the directory config is kept in: ~/.blockpuzzle/
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".blockpuzzle")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.json")
}

// Save writes c to path as JSON, creating parent directories as needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a config from path. Settings missing from the file keep their defaults, and a
// missing file yields Default with no error. The result is validated.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return Config{}, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
