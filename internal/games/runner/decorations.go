package runner

import (
	"github.com/vovakirdan/cinnarun/internal/config"
	"github.com/vovakirdan/cinnarun/internal/core"
)

// Decoration is a background cloud. It never collides or scores.
type Decoration struct {
	X, Y  float64 // Center of the main puff
	Size  float64 // Radius of the main puff
	Speed float64 // Leftward drift per tick
}

// DecorationSpawner emits a cloud every fixed number of ticks.
type DecorationSpawner struct {
	Timer int
}

// Advance counts one tick and returns a new cloud once the configured
// interval has elapsed. Height, size and speed are rolled independently.
func (s DecorationSpawner) Advance(rng *core.RNG, cfg config.RunnerDecorations, vp Viewport) (DecorationSpawner, Decoration, bool) {
	s.Timer++
	if s.Timer < cfg.Interval {
		return s, Decoration{}, false
	}
	s.Timer = 0

	d := Decoration{
		X:     vp.W,
		Y:     cfg.TopOffset + rng.FloatRange(0, vp.H/3),
		Size:  rng.FloatRange(cfg.MinSize, cfg.MaxSize),
		Speed: rng.FloatRange(cfg.MinSpeed, cfg.MaxSpeed),
	}
	return s, d, true
}
