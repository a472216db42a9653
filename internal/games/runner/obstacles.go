package runner

import (
	"github.com/vovakirdan/cinnarun/internal/config"
	"github.com/vovakirdan/cinnarun/internal/core"
)

// Variant selects how an obstacle looks. Both variants share the same
// size and physics.
type Variant int

const (
	VariantMushroom Variant = iota
	VariantWing
)

// variantCount is the number of obstacle variants.
const variantCount = 2

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantMushroom:
		return "mushroom"
	case VariantWing:
		return "wing"
	default:
		return "unknown"
	}
}

// Obstacle is a monster sliding toward the player along the floor.
type Obstacle struct {
	X, Y    float64 // Top-left corner
	W, H    float64
	Variant Variant
	Scored  bool // Set once the obstacle has been credited to the score
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// ObstacleSpawner decides when the next obstacle appears.
type ObstacleSpawner struct {
	Timer        int // Ticks since the last spawn
	NextInterval int // Ticks between the last spawn and the next one
}

// NewObstacleSpawner creates a spawner whose first obstacle appears
// after cfg.FirstInterval ticks.
func NewObstacleSpawner(cfg config.RunnerObstacles) ObstacleSpawner {
	return ObstacleSpawner{NextInterval: cfg.FirstInterval}
}

// Advance counts one tick. When the interval has elapsed it resets the
// timer, rolls the next interval and returns a new obstacle at the right
// edge of the viewport, resting on the floor.
func (s ObstacleSpawner) Advance(rng *core.RNG, cfg config.RunnerObstacles, rightEdge, floorTop float64) (ObstacleSpawner, Obstacle, bool) {
	s.Timer++
	if s.Timer < s.NextInterval {
		return s, Obstacle{}, false
	}

	s.Timer = 0
	s.NextInterval = rng.IntRange(cfg.MinInterval, cfg.MaxInterval)

	o := Obstacle{
		X:       rightEdge,
		Y:       floorTop - cfg.Height,
		W:       cfg.Width,
		H:       cfg.Height,
		Variant: Variant(rng.IntRange(0, variantCount-1)),
	}
	return s, o, true
}
