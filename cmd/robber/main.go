// robber is a terminal chase game: grab the loot, dodge the guard.
//
// Usage:
//
//	robber play              - Play the configured map
//	robber play --map open   - Play a built-in map or a map file
//	robber check <map>       - Validate a map file
//	robber maps              - List built-in maps
//	robber config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (YAML or TOML)
//	--seed <value>      - RNG seed for item placement (0 = time based)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/robber-runaway/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "robber",
	Short: "Robber Runaway - grab the loot before the guard grabs you",
	Long: `Robber Runaway is a terminal chase game. Move the robber around the
maze and collect the loot while a guard closes in half a step at a time.

Available commands:
  play     - Start a run
  check    - Validate a map file
  maps     - List built-in maps
  config   - Print the effective configuration

Examples:
  robber play
  robber play --map open --seed 42
  robber play --map ./my-map.txt --tick 80
  robber check ./my-map.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config, default stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config selected by --config.
func loadConfig() (config.Config, string, error) {
	return config.Load(flagConfig)
}

// newLogger creates the process logger. Flags override the config file.
// The returned closer releases the log file, if any.
func newLogger(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	levelName := cfg.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	path := cfg.File
	if flagLogFile != "" {
		path = flagLogFile
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "robber",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
