// cinnarun is a side-scrolling jump game for the terminal: run along the
// floor, jump over monsters, and reach the win score.
//
// Usage:
//
//	cinnarun play           - Play the game
//	cinnarun list           - List available games
//	cinnarun serve          - Start SSH server for remote play
//	cinnarun config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file (default: discard)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/cinnarun/internal/games/runner"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cinnarun",
	Short: "Cinnamoroll Run - a jump game in your terminal",
	Long: `Cinnamoroll Run is a terminal side-scroller. Jump over the monsters
sliding toward you; every monster passed is a point. Reach the win
score to celebrate, touch a monster and the run is over.

Available commands:
  play     - Play the game
  list     - Show all available games
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  cinnarun play
  cinnarun play --difficulty hard
  cinnarun play --seed 42 --log-file run.log
  cinnarun serve --ssh :2222
  cinnarun config --config ./my-runner.toml

Flags can also come from CINNARUN_* environment variables or a .env
file in the working directory, e.g. CINNARUN_SEED=42.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnv(cmd, ".env")
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger opens the --log-file target. The alt screen owns stdout while
// playing, so without a file logs are discarded.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "cinnarun",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
