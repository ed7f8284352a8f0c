package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodgey/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the tuning a session would use after the config search order
and --difficulty are applied. Save the output as ~/.dodgey/configs/dodgey.yaml
or ./configs/dodgey.yaml to customize it.

Examples:
  dodgey config > configs/dodgey.yaml
  dodgey config --difficulty hard
  dodgey config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(string(data))
}
