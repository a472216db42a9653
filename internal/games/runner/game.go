// Package runner implements a side-scrolling jump game: Cinnamoroll runs
// along the floor and jumps over monsters, scoring a point for each one
// passed. Reaching the win score ends the game in victory; touching a
// monster ends it in defeat.
package runner

import (
	"github.com/vovakirdan/cinnarun/internal/config"
	"github.com/vovakirdan/cinnarun/internal/core"
	"github.com/vovakirdan/cinnarun/internal/registry"
)

// GameID is the registry identifier of the runner.
const GameID = "runner"

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	session *Session
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
}

// configured is the config every new game uses, set once by the CLI after
// it has been resolved and validated. Nil means resolve on first Reset.
var configured *config.RunnerConfig

// SetConfig fixes the config used by games created with New.
func SetConfig(cfg config.RunnerConfig) {
	configured = &cfg
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that skips config file lookup.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cinnamoroll Run"
}

// Reset discards the current session and prepares a new one that waits
// for the start trigger.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg == (config.RunnerConfig{}) {
		g.cfg = startupConfig()
	}

	g.session = NewSession(g.cfg, runtime.Seed)
}

// Start begins the session with the current screen size.
func (g *Game) Start() bool {
	return g.session.Start(g.viewport())
}

// Step applies the frame's input and advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.State() == NotStarted && (in.Has(core.ActionConfirm) || in.Has(core.ActionJump)) {
		g.Start()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.session.RequestJump()
	}
	g.session.Tick()

	return core.StepResult{State: g.State()}
}

// Resize updates the screen size and forwards it to the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.session.Resize(g.viewport())
}

// startupConfig returns the config set with SetConfig, or resolves the
// default search path. LoadRunner only returns validated configs when no
// custom path is given, so the fallback is the hardcoded defaults.
func startupConfig() config.RunnerConfig {
	if configured != nil {
		return *configured
	}
	cfg, err := config.Resolve("", "")
	if err != nil {
		return config.DefaultRunnerConfig()
	}
	return cfg
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// viewport converts the screen size into world units.
func (g *Game) viewport() Viewport {
	return ViewportForCells(g.runtime.ScreenW, g.runtime.ScreenH, g.cfg.Display)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		Started:  st != NotStarted,
		GameOver: st == Lost,
		Won:      st == Won,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
