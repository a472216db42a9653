package runner

import (
	"github.com/vovakirdan/cinnarun/internal/config"
	"github.com/vovakirdan/cinnarun/internal/core"
)

// Lifecycle is the phase of a game session.
type Lifecycle int

const (
	NotStarted Lifecycle = iota
	Running
	Lost
	Won
)

// String returns a human-readable name for the phase.
func (l Lifecycle) String() string {
	switch l {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no more ticks will ever run.
func (l Lifecycle) Terminal() bool {
	return l == Lost || l == Won
}

// Session owns one game from start to its terminal state.
// It is not safe for concurrent use; the host calls it from a single loop.
type Session struct {
	cfg   config.RunnerConfig
	rng   *core.RNG
	world World
	state Lifecycle
}

// NewSession creates a session that waits for Start.
func NewSession(cfg config.RunnerConfig, seed int64) *Session {
	return &Session{
		cfg: cfg,
		rng: core.NewRNG(seed),
	}
}

// Start moves the session from NotStarted to Running using the viewport
// current at start time. Later calls do nothing. Reports whether the
// session started.
func (s *Session) Start(vp Viewport) bool {
	if s.state != NotStarted {
		return false
	}
	s.world = NewWorld(s.cfg, vp)
	s.state = Running
	return true
}

// RequestJump asks the player to jump. Ignored unless Running.
// Reports whether a jump actually started.
func (s *Session) RequestJump() bool {
	if s.state != Running {
		return false
	}
	return s.world.Player.RequestJump(s.cfg.Physics.JumpPower)
}

// Resize applies a new viewport. Ignored unless Running.
func (s *Session) Resize(vp Viewport) bool {
	if s.state != Running {
		return false
	}
	s.world = s.world.Resize(vp, s.cfg)
	return true
}

// Tick runs one simulation step and reports whether the host should
// schedule another one. Ticks outside Running change nothing.
func (s *Session) Tick() bool {
	if s.state != Running {
		return false
	}

	var outcome Outcome
	s.world, outcome = Step(s.world, s.rng, s.cfg)
	switch outcome {
	case OutcomeLost:
		s.state = Lost
	case OutcomeWon:
		s.state = Won
	}
	return s.state == Running
}

// State returns the current lifecycle phase.
func (s *Session) State() Lifecycle {
	return s.state
}

// Score returns the number of obstacles passed so far.
func (s *Session) Score() int {
	return s.world.Score
}
