// Package config loads the static game configuration from JSON.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Defaults applied to zero-valued optional fields.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultSampleRate = 44100
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json, applies defaults and validates the result.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if cfg.Window.Width == 0 {
		cfg.Window.Width = DefaultWidth
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = DefaultHeight
	}
	if cfg.Assets.SampleRate == 0 {
		cfg.Assets.SampleRate = DefaultSampleRate
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}
	return &cfg, nil
}

func (c *GameConfig) validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Assets.Root == "" {
		return fmt.Errorf("assets.root is required")
	}
	if c.Splash.DisplayDelaySec < 0 {
		return fmt.Errorf("splash.displayDelaySec must not be negative, got %v", c.Splash.DisplayDelaySec)
	}
	return nil
}
