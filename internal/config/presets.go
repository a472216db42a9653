package config

import "fmt"

// ApplyPreset modifies the config based on a difficulty preset.
// Every preset only sets fixed bounds; nothing ramps up during play.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Speed = 5
		cfg.Obstacles.MinInterval = 90
		cfg.Obstacles.MaxInterval = 150
	case DifficultyNormal:
		d := DefaultRunnerConfig().Obstacles
		cfg.Obstacles.Speed = d.Speed
		cfg.Obstacles.MinInterval = d.MinInterval
		cfg.Obstacles.MaxInterval = d.MaxInterval
	case DifficultyHard:
		cfg.Obstacles.Speed = 7
		cfg.Obstacles.MinInterval = 45
		cfg.Obstacles.MaxInterval = 90
	}
}

// Resolve loads the config from customPath (see LoadRunner), applies the
// preset and validates the result. A preset can change speeds so that a
// valid file no longer describes a clearable jump.
func Resolve(customPath string, preset DifficultyPreset) (RunnerConfig, error) {
	cfg, err := LoadRunner(customPath)
	if err != nil {
		return RunnerConfig{}, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, fmt.Errorf("config: with %q difficulty: %w", preset, err)
	}
	return cfg, nil
}
