package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cinnarun/internal/config"
)

var (
	flagDumpConfig     string
	flagDumpDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Resolve the configuration exactly like 'play' does and print it as
YAML. Useful as a starting point for a custom config file.

Examples:
  cinnarun config > ~/.cinnarun/configs/runner.yaml
  cinnarun config --difficulty hard
  cinnarun config --config ./my-runner.toml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDumpConfig, "config", "", "Path to custom game config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDumpDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) {
	preset, ok := config.ParsePreset(flagDumpDifficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal or hard)\n", flagDumpDifficulty)
		os.Exit(1)
	}

	cfg, err := config.Resolve(flagDumpConfig, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
