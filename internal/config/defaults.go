package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:   0.8,
			JumpPower: 15,
		},
		Player: RunnerPlayer{
			X:      50,
			Width:  64,
			Height: 64,
		},
		World: RunnerWorld{
			FloorHeight: 80,
			WinScore:    100,
		},
		Obstacles: RunnerObstacles{
			Width:         32,
			Height:        32,
			Speed:         6,
			FirstInterval: 90,
			MinInterval:   60,
			MaxInterval:   120,
		},
		Decorations: RunnerDecorations{
			Interval:    120,
			TopOffset:   20,
			MinSize:     20,
			MaxSize:     50,
			MinSpeed:    1,
			MaxSpeed:    2.5,
			PruneFactor: 4,
		},
		Display: RunnerDisplay{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
