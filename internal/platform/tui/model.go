package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cinnarun/internal/core"
	"github.com/vovakirdan/cinnarun/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
//
// Ticks are only scheduled while the game is running: nothing ticks on
// the start screen, and the tick that ends the game does not re-arm.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets
// it so it waits on its start screen. A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = core.Max(cfg.ScreenH-helpHeight, 1)

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
	}
}

// Init does not start the tick loop; the start trigger does.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleAction(m.keyMapper.MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m.handleAction(action)
}

// handleAction applies an action according to the game's phase.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch {
	case !m.gameState.Started:
		if action == core.ActionConfirm || action == core.ActionJump {
			return m.start()
		}

	case m.gameState.Finished():
		if action == core.ActionRestart {
			return m.restart()
		}

	case action == core.ActionJump:
		// Applied on the next tick, before integration
		m.inputFrame.Set(core.ActionJump)
	}

	return m, nil
}

// start fires the game's start trigger and arms the tick loop.
func (m Model) start() (tea.Model, tea.Cmd) {
	if !m.game.Start() {
		return m, nil
	}
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.logger.Info("session started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
	)
	return m, tickCmd(m.config.TickRate)
}

// restart replaces the finished session with a new one and starts it.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("restart", "game", m.game.ID(), "seed", m.config.Seed)
	return m.start()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-helpHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// The game ignores this once it is over
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.gameState.Running() {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver:
		m.logger.Info("game lost", "game", m.game.ID(), "score", m.gameState.Score)
		return m, nil
	case m.gameState.Won:
		m.logger.Info("game won", "game", m.game.ID(), "score", m.gameState.Score)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := writeScreenshot(m.game.ID(), m.screen)
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot stores the plain-text screen under
// ~/.cinnarun/screenshots and returns the file path.
func writeScreenshot(gameID string, screen *core.Screen) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: home directory: %w", err)
	}

	dir := filepath.Join(home, ".cinnarun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, timestamp))
	if err := os.WriteFile(path, []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click jumps
	)

	_, err := p.Run()
	return err
}
