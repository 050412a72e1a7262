package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robber-runaway/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a run would use, as YAML.

Config search order:
  1. --config <path>
  2. ~/.robber/config.yaml (or .yml, .toml)
  3. ./configs/robber.yaml (or .yml, .toml)
  4. built-in defaults

Use --defaults to print the commented built-in file, a good starting point
for ~/.robber/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
