package config

import (
	_ "embed"
)

//go:embed defaults/robber.yaml
var defaultYAML []byte

// Default returns the hard-coded default configuration.
// It mirrors defaults/robber.yaml and is used if the embedded file fails to parse.
func Default() Config {
	return Config{
		Game: GameConfig{
			Goal:   10,
			Items:  10,
			TickMS: 100,
			Map:    "yard",
		},
		Render: RenderConfig{
			TileWidth: 2,
			Glyphs: map[string]GlyphConfig{
				"player":   {Rune: "$", Color: "bright_yellow"},
				"chaser":   {Rune: "@", Color: "bright_blue"},
				"item":     {Rune: "*", Color: "bright_green"},
				"obstacle": {Rune: "#", Color: "gray"},
			},
		},
		Keys: KeysConfig{
			Left:  []string{"left", "a"},
			Right: []string{"right", "d"},
			Up:    []string{"up", "w"},
			Down:  []string{"down", "s"},
			Quit:  []string{"q", "esc", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
