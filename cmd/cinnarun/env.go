package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// envFlags maps environment variables to the flags they fill in when the
// flag is not given on the command line.
var envFlags = map[string]string{
	"CINNARUN_FPS":        "fps",
	"CINNARUN_SEED":       "seed",
	"CINNARUN_LOG_FILE":   "log-file",
	"CINNARUN_CONFIG":     "config",
	"CINNARUN_DIFFICULTY": "difficulty",
	"CINNARUN_SSH_ADDR":   "ssh",
}

// applyEnv loads ./.env when present and copies CINNARUN_* variables into
// flags the user did not set. Explicit flags always win.
func applyEnv(cmd *cobra.Command, envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}
