package runner

import "github.com/vovakirdan/cinnarun/internal/core"

// ObstacleView is an obstacle as seen by a renderer.
type ObstacleView struct {
	Box     core.Box
	Variant Variant
}

// DecorationView is a cloud as seen by a renderer.
type DecorationView struct {
	X, Y float64
	Size float64
}

// Snapshot is a read-only copy of everything a renderer needs.
// It shares no memory with the session.
type Snapshot struct {
	State       Lifecycle
	Tick        uint64
	Score       int
	WinScore    int
	Viewport    Viewport
	FloorTop    float64
	Player      core.Box
	Jumping     bool
	Obstacles   []ObstacleView   // In spawn order
	Decorations []DecorationView // In spawn order
}

// Snapshot returns the current render view of the session.
func (s *Session) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		State:       s.state,
		Tick:        w.Tick,
		Score:       w.Score,
		WinScore:    s.cfg.World.WinScore,
		Viewport:    w.Viewport,
		FloorTop:    w.FloorTop,
		Player:      w.Player.Box(),
		Jumping:     w.Player.Jumping,
		Obstacles:   make([]ObstacleView, len(w.Obstacles)),
		Decorations: make([]DecorationView, len(w.Decorations)),
	}
	for i, o := range w.Obstacles {
		snap.Obstacles[i] = ObstacleView{Box: o.Box(), Variant: o.Variant}
	}
	for i, d := range w.Decorations {
		snap.Decorations[i] = DecorationView{X: d.X, Y: d.Y, Size: d.Size}
	}
	return snap
}
