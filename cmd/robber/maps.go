package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robber-runaway/internal/maze"
	"github.com/vovakirdan/robber-runaway/internal/registry"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List built-in maps",
	Long:  `Shows the maps compiled into the binary.`,
	Run:   runMaps,
}

func runMaps(cmd *cobra.Command, args []string) {
	maps := registry.List()

	if len(maps) == 0 {
		fmt.Println("No maps available.")
		return
	}

	fmt.Println("Built-in maps:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, m := range maps {
		if len(m.Name) > maxNameLen {
			maxNameLen = len(m.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, m := range maps {
		title := m.Title
		if m.Name == maze.DefaultMap {
			title += " (default)"
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, m.Name, title)
	}

	fmt.Println()
	fmt.Println("Run 'robber play --map <name>' to play a map.")
}
