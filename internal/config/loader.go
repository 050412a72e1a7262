package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.robber/config.{yaml,yml,toml} ->
// ./configs/robber.{yaml,yml,toml} -> embedded default.
// Returns the config and the path it was read from.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, filepath.Ext(customPath))
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory. A file that
	// exists but does not parse is an error, not a reason to fall through.
	candidates := append(userConfigPaths(), localConfigPaths()...)
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := decode(data, filepath.Ext(path))
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, "", fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := decode(defaultYAML, ".yaml")
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// decode parses data on top of the defaults, so partial files only
// override the keys they set.
func decode(data []byte, ext string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", ext)
	}

	return cfg, nil
}

// userConfigPaths returns candidate user config files, or nil if home is unavailable.
func userConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".robber")
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.toml"),
	}
}

func localConfigPaths() []string {
	return []string{
		filepath.Join("configs", "robber.yaml"),
		filepath.Join("configs", "robber.yml"),
		filepath.Join("configs", "robber.toml"),
	}
}
