package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robber-runaway/internal/maze"
)

var checkCmd = &cobra.Command{
	Use:   "check <map>",
	Short: "Validate a map",
	Long: `Parses a map file (or built-in map name) and reports its size and spawns.

Map format: rows of whitespace-separated tokens.
  P  player spawn (exactly one)
  C  chaser spawn
  X  wall
  .  floor (any other token is floor too)

Loot is never placed on the bottom row.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	layout, err := maze.Resolve(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Map %s is valid.\n", layout.Name)
	fmt.Printf("  Size:    %dx%d\n", layout.Width, layout.Height)
	fmt.Printf("  Player:  (%d, %d)\n", layout.Player.X, layout.Player.Y)
	fmt.Printf("  Chasers: %d\n", len(layout.Chasers))
	for _, c := range layout.Chasers {
		fmt.Printf("    (%d, %d)\n", c.X, c.Y)
	}
	fmt.Printf("  Walls:   %d\n", len(layout.Obstacles))

	if len(layout.Chasers) == 0 {
		fmt.Println("Note: no chaser spawn (C); this map cannot be lost.")
	}
	return nil
}
