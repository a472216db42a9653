// Package config provides YAML and TOML based game configuration loading,
// fixed difficulty presets and validation for the runner.
package config

// RunnerConfig contains all configuration for the runner game.
// Distances are in world units, durations in ticks.
type RunnerConfig struct {
	Physics     RunnerPhysics     `yaml:"physics" toml:"physics"`
	Player      RunnerPlayer      `yaml:"player" toml:"player"`
	World       RunnerWorld       `yaml:"world" toml:"world"`
	Obstacles   RunnerObstacles   `yaml:"obstacles" toml:"obstacles"`
	Decorations RunnerDecorations `yaml:"decorations" toml:"decorations"`
	Display     RunnerDisplay     `yaml:"display" toml:"display"`
}

// RunnerPhysics defines the jump arc.
type RunnerPhysics struct {
	Gravity   float64 `yaml:"gravity" toml:"gravity"`       // Added to vertical velocity each airborne tick
	JumpPower float64 `yaml:"jump_power" toml:"jump_power"` // Initial upward speed of a jump
}

// RunnerPlayer defines the player character's box.
type RunnerPlayer struct {
	X      float64 `yaml:"x" toml:"x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// RunnerWorld defines the floor and the win condition.
type RunnerWorld struct {
	FloorHeight float64 `yaml:"floor_height" toml:"floor_height"`
	WinScore    int     `yaml:"win_score" toml:"win_score"`
}

// RunnerObstacles defines obstacle size, speed and spawn timing.
type RunnerObstacles struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	FirstInterval int     `yaml:"first_interval" toml:"first_interval"` // Ticks before the first obstacle
	MinInterval   int     `yaml:"min_interval" toml:"min_interval"`
	MaxInterval   int     `yaml:"max_interval" toml:"max_interval"`
}

// RunnerDecorations defines background cloud spawning.
type RunnerDecorations struct {
	Interval  int     `yaml:"interval" toml:"interval"`
	TopOffset float64 `yaml:"top_offset" toml:"top_offset"`
	MinSize   float64 `yaml:"min_size" toml:"min_size"`
	MaxSize   float64 `yaml:"max_size" toml:"max_size"`
	MinSpeed  float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed" toml:"max_speed"`
	// PruneFactor scales MaxSize into the off-screen margin a cloud must
	// travel past the left edge before it is dropped.
	PruneFactor float64 `yaml:"prune_factor" toml:"prune_factor"`
}

// PruneMargin returns how far left of the screen a cloud may drift
// before it is removed.
func (d RunnerDecorations) PruneMargin() float64 {
	return d.PruneFactor * d.MaxSize
}

// RunnerDisplay maps world units onto terminal cells.
type RunnerDisplay struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// DifficultyPreset represents a named, fixed difficulty level.
// Presets never change during a game.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty input means
// "keep whatever the config file says".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}
