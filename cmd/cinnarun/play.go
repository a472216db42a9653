package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cinnarun/internal/config"
	"github.com/vovakirdan/cinnarun/internal/core"
	"github.com/vovakirdan/cinnarun/internal/games/runner"
	"github.com/vovakirdan/cinnarun/internal/platform/tui"
	"github.com/vovakirdan/cinnarun/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. The game waits on its title screen until you press
Enter or Space.

Controls:
  Enter/Space      - Start
  Space/Up/W/Click - Jump
  R                - Restart (after the game ends)
  Ctrl+S           - Save a screenshot to ~/.cinnarun/screenshots
  Q/Ctrl+C         - Quit

Difficulty options (fixed for the whole run):
  easy   - Slower monsters, wider gaps
  normal - Default settings
  hard   - Faster monsters, tighter gaps

Config files (.yaml, .yml or .toml) are searched in this order:
  --config path, ~/.cinnarun/configs/runner.yaml, ./configs/runner.yaml,
  then the built-in defaults.

Examples:
  cinnarun play
  cinnarun play --difficulty easy
  cinnarun play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := runner.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cinnarun list' to see available games.")
		os.Exit(1)
	}

	// Fail fast on a bad config or preset instead of silently using defaults
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal or hard)\n", flagDifficulty)
		os.Exit(1)
	}
	runnerCfg, err := config.Resolve(flagConfig, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	runner.SetConfig(runnerCfg)

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, cfg, logger); runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
