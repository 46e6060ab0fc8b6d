package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JPatryk13/triangle-game/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after the search order was applied:
--config, ~/.triangle/configs/triangle.yaml, ./configs/triangle.yaml, then
the built-in defaults. The source is printed as a comment.

Examples:
  triangle config
  triangle config --defaults > ~/.triangle/configs/triangle.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the commented default file instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("# source: %s\n", source)
	_, err = os.Stdout.Write(out)
	return err
}
