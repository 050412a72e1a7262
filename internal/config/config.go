// Package config provides YAML/TOML-based game configuration loading
// and validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/robber-runaway/internal/core"
)

// Config contains all configuration for a run of the game.
type Config struct {
	Game   GameConfig   `yaml:"game" toml:"game"`
	Render RenderConfig `yaml:"render" toml:"render"`
	Keys   KeysConfig   `yaml:"keys" toml:"keys"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

// GameConfig defines simulation parameters.
type GameConfig struct {
	Goal   int    `yaml:"goal" toml:"goal"`       // Items needed to win
	Items  int    `yaml:"items" toml:"items"`     // Items placed at start
	TickMS int    `yaml:"tick_ms" toml:"tick_ms"` // Delay between ticks in milliseconds
	Map    string `yaml:"map" toml:"map"`         // Built-in map name or file path
}

// TickInterval returns the tick delay as a duration.
func (g GameConfig) TickInterval() time.Duration {
	return time.Duration(g.TickMS) * time.Millisecond
}

// RenderConfig defines how actors are drawn in the terminal.
type RenderConfig struct {
	TileWidth int                    `yaml:"tile_width" toml:"tile_width"` // Columns per grid cell
	Glyphs    map[string]GlyphConfig `yaml:"glyphs" toml:"glyphs"`         // Sprite name -> glyph
}

// GlyphConfig is the terminal representation of a sprite.
type GlyphConfig struct {
	Rune  string `yaml:"rune" toml:"rune"`
	Color string `yaml:"color" toml:"color"`
}

// KeysConfig lists the physical keys bound to each action.
// Key names follow Bubble Tea's KeyMsg.String() ("left", "a", "ctrl+c").
type KeysConfig struct {
	Left  []string `yaml:"left" toml:"left"`
	Right []string `yaml:"right" toml:"right"`
	Up    []string `yaml:"up" toml:"up"`
	Down  []string `yaml:"down" toml:"down"`
	Quit  []string `yaml:"quit" toml:"quit"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
	File  string `yaml:"file" toml:"file"`   // Empty means stderr
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	if c.Game.Goal < 1 {
		return fmt.Errorf("%w: game.goal must be positive, got %d", ErrInvalid, c.Game.Goal)
	}
	if c.Game.Items < c.Game.Goal {
		return fmt.Errorf("%w: game.items (%d) must be at least game.goal (%d)", ErrInvalid, c.Game.Items, c.Game.Goal)
	}
	if c.Game.TickMS <= 0 {
		return fmt.Errorf("%w: game.tick_ms must be positive, got %d", ErrInvalid, c.Game.TickMS)
	}
	if c.Render.TileWidth < 1 {
		return fmt.Errorf("%w: render.tile_width must be at least 1, got %d", ErrInvalid, c.Render.TileWidth)
	}
	for name, g := range c.Render.Glyphs {
		if len([]rune(g.Rune)) != 1 {
			return fmt.Errorf("%w: render.glyphs.%s.rune must be a single character", ErrInvalid, name)
		}
		if g.Color != "" {
			if _, ok := core.ParseColor(g.Color); !ok {
				return fmt.Errorf("%w: render.glyphs.%s.color %q is unknown", ErrInvalid, name, g.Color)
			}
		}
	}

	bindings := map[string][]string{
		"left":  c.Keys.Left,
		"right": c.Keys.Right,
		"up":    c.Keys.Up,
		"down":  c.Keys.Down,
		"quit":  c.Keys.Quit,
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalid, name)
		}
	}

	return nil
}
