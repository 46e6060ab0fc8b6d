package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JPatryk13/triangle-game/internal/game"
	"github.com/JPatryk13/triangle-game/internal/registry"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List player kinds and game modes",
	Long:  `Shows the registered player kinds and the modes that pair them.`,
	Args:  cobra.NoArgs,
	Run:   runPlayers,
}

func runPlayers(_ *cobra.Command, _ []string) {
	kinds := registry.List()

	if len(kinds) == 0 {
		fmt.Println("No players available.")
		return
	}

	fmt.Println("Player kinds:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, k := range kinds {
		maxIDLen = max(maxIDLen, len(k.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, k := range kinds {
		fmt.Printf("  %-*s  %s\n", maxIDLen, k.ID, k.Title)
	}

	fmt.Println()
	fmt.Println("Modes:")
	fmt.Println()
	for _, m := range game.Modes {
		fmt.Printf("  %-6s  %s (%s vs %s)\n", m.Mode, m.Title, m.Kinds[0], m.Kinds[1])
	}

	fmt.Println()
	fmt.Println("Run 'triangle play --mode <mode>' to play.")
}
