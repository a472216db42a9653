package runner

import (
	"github.com/vovakirdan/cinnarun/internal/config"
	"github.com/vovakirdan/cinnarun/internal/core"
)

// Viewport is the visible area in world units.
type Viewport struct {
	W, H float64
}

// ViewportForCells converts a terminal size into world units.
func ViewportForCells(cols, rows int, d config.RunnerDisplay) Viewport {
	return Viewport{W: float64(cols) * d.CellWidth, H: float64(rows) * d.CellHeight}
}

// Outcome is what a single Step decided about the game.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeLost
	OutcomeWon
)

// World is the complete simulation state of one game.
// Step never modifies the slices of the World it is given.
type World struct {
	Viewport    Viewport
	FloorTop    float64 // Y of the floor's top edge
	Player      Player
	Obstacles   []Obstacle
	Decorations []Decoration
	Score       int
	Tick        uint64

	Spawner      ObstacleSpawner
	CloudSpawner DecorationSpawner
}

// NewWorld creates a world with the player resting on the floor.
func NewWorld(cfg config.RunnerConfig, vp Viewport) World {
	w := World{
		Viewport: vp,
		FloorTop: vp.H - cfg.World.FloorHeight,
		Player: Player{
			X: cfg.Player.X,
			W: cfg.Player.Width,
			H: cfg.Player.Height,
		},
		Spawner: NewObstacleSpawner(cfg.Obstacles),
	}
	w.Player.Y = w.FloorRest()
	return w
}

// FloorRest returns the player Y at which its bottom edge touches the floor.
func (w World) FloorRest() float64 {
	return w.FloorTop - w.Player.H
}

// Resize applies a new viewport. The floor follows the bottom of the
// screen and a grounded player is snapped onto it; obstacles and clouds
// keep their positions.
func (w World) Resize(vp Viewport, cfg config.RunnerConfig) World {
	w.Viewport = vp
	w.FloorTop = vp.H - cfg.World.FloorHeight
	if !w.Player.Jumping {
		w.Player.Y = w.FloorRest()
	}
	return w
}

// Step advances the world by one tick: jump integration, obstacle
// spawning, cloud spawning, then movement, collision, scoring and pruning.
// It returns the new world and whether the game was lost or won.
func Step(w World, rng *core.RNG, cfg config.RunnerConfig) (World, Outcome) {
	w.Tick++

	w.Player = Integrate(w.Player, w.FloorRest(), cfg.Physics.Gravity)

	var spawned []Obstacle
	var o Obstacle
	var ok bool
	if w.Spawner, o, ok = w.Spawner.Advance(rng, cfg.Obstacles, w.Viewport.W, w.FloorTop); ok {
		spawned = append(spawned, o)
	}

	var cloud Decoration
	var newCloud bool
	w.CloudSpawner, cloud, newCloud = w.CloudSpawner.Advance(rng, cfg.Decorations, w.Viewport)

	var lost bool
	w.Obstacles, w.Score, lost = stepObstacles(w.Obstacles, spawned, w.Player.Box(), w.Score, cfg.Obstacles.Speed)
	w.Decorations = stepDecorations(w.Decorations, cloud, newCloud, cfg.Decorations.PruneMargin())

	switch {
	case lost:
		return w, OutcomeLost
	case w.Score >= cfg.World.WinScore:
		return w, OutcomeWon
	default:
		return w, OutcomeContinue
	}
}

// stepObstacles moves every obstacle, then checks collision and scoring
// against the player. Once a collision is found, later obstacles still
// move but are neither tested nor scored. Off-screen obstacles are
// dropped from the returned slice.
func stepObstacles(current, spawned []Obstacle, player core.Box, score int, speed float64) ([]Obstacle, int, bool) {
	next := make([]Obstacle, 0, len(current)+len(spawned))
	lost := false

	process := func(o Obstacle) {
		o.X -= speed

		if !lost {
			switch {
			case o.Box().Overlaps(player):
				lost = true
			case !o.Scored && o.Right() < player.X:
				o.Scored = true
				score++
			}
		}

		if o.Right() > 0 {
			next = append(next, o)
		}
	}

	for _, o := range current {
		process(o)
	}
	for _, o := range spawned {
		process(o)
	}
	return next, score, lost
}

// stepDecorations drifts clouds left and drops those past the margin.
func stepDecorations(current []Decoration, spawned Decoration, hasSpawned bool, margin float64) []Decoration {
	next := make([]Decoration, 0, len(current)+1)
	add := func(d Decoration) {
		d.X -= d.Speed
		if d.X >= -margin {
			next = append(next, d)
		}
	}
	for _, d := range current {
		add(d)
	}
	if hasSpawned {
		add(spawned)
	}
	return next
}
