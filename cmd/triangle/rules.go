package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/JPatryk13/triangle-game/internal/platform/console"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules of the game",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		console.RenderRules(os.Stdout)
	},
}
