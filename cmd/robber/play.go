package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/robber-runaway/internal/core"
	"github.com/vovakirdan/robber-runaway/internal/game"
	"github.com/vovakirdan/robber-runaway/internal/maze"
	"github.com/vovakirdan/robber-runaway/internal/platform/tui"
)

var (
	flagMap  string
	flagTick int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run on a built-in map or a map file.

Controls:
  Arrows/WASD  - Move
  Q/Esc        - Quit

Collect all the loot to win. If the guard reaches you, you're busted.

Examples:
  robber play
  robber play --map classic
  robber play --map ./my-map.txt --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMap, "map", "", "Built-in map name or map file path (overrides config)")
	playCmd.Flags().IntVar(&flagTick, "tick", 0, "Tick interval in milliseconds (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Debug("config loaded", "source", source)

	mapName := cfg.Game.Map
	if flagMap != "" {
		mapName = flagMap
	}
	if mapName == "" {
		mapName = maze.DefaultMap
	}

	layout, err := maze.Resolve(mapName)
	if err != nil {
		logger.Error("cannot load map", "map", mapName, "error", err)
		return fmt.Errorf("%w (run 'robber maps' to see built-in maps)", err)
	}
	logger.Debug("map loaded", "map", layout.Name, "width", layout.Width, "height", layout.Height, "chasers", len(layout.Chasers))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := game.New(layout, game.Options{
		Goal:  cfg.Game.Goal,
		Items: cfg.Game.Items,
		Seed:  seed,
	})
	if err != nil {
		logger.Error("cannot set up world", "map", layout.Name, "error", err)
		return err
	}

	interval := cfg.Game.TickInterval()
	if flagTick > 0 {
		interval = time.Duration(flagTick) * time.Millisecond
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger.Info("starting run", "map", layout.Name, "seed", seed, "tick", interval, "goal", cfg.Game.Goal)

	result, err := tui.Run(world, tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:      width,
			ScreenH:      height,
			TickInterval: interval,
		},
		Keys:     tui.NewKeyMap(cfg.Keys),
		Renderer: tui.NewRenderer(cfg.Render),
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), outcomeMessage(result, world.Goal()))
	return nil
}

// outcomeMessage describes how a run ended.
func outcomeMessage(r tui.Result, goal int) string {
	switch {
	case r.Status == game.StatusWon:
		return fmt.Sprintf("You got away with all %d pieces of loot in %d ticks!", goal, r.Ticks)
	case r.Status == game.StatusLost:
		return fmt.Sprintf("Busted! The guard caught you with %d/%d loot.", r.Collected, goal)
	case r.Quit:
		return fmt.Sprintf("Quit with %d/%d loot.", r.Collected, goal)
	default:
		return "Game ended."
	}
}
