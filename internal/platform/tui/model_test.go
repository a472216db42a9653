package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cinnarun/internal/config"
	"github.com/vovakirdan/cinnarun/internal/core"
	"github.com/vovakirdan/cinnarun/internal/games/runner"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := runner.NewWithConfig(config.DefaultRunnerConfig())
	return NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

// tickUntilDone feeds ticks while the model keeps asking for them.
func tickUntilDone(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 100000; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{})
		if cmd == nil {
			return m
		}
	}
	t.Fatal("game never finished")
	return m
}

func TestModelDoesNotTickBeforeStart(t *testing.T) {
	m := newTestModel(t)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should not arm the tick loop")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("a stray tick before start should not re-arm")
	}
	if m.GameState().Started {
		t.Error("game should still wait for start")
	}
}

func TestModelStartArmsTicks(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("start should arm the tick loop")
	}
	if !m.GameState().Running() {
		t.Fatalf("game should be running, got %+v", m.GameState())
	}

	m, cmd = update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("a running game should keep ticking")
	}

	// Enter does nothing once the game runs
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("start after start should not arm a second tick loop")
	}
}

func TestModelMouseStartsAndJumps(t *testing.T) {
	m := newTestModel(t)
	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m, cmd := update(t, m, click)
	if cmd == nil || !m.GameState().Started {
		t.Fatal("left click should start the game")
	}

	m, _ = update(t, m, click)
	if !m.inputFrame.Has(core.ActionJump) {
		t.Error("left click while running should queue a jump")
	}
	m, _ = update(t, m, TickMsg{})
	if m.inputFrame.Has(core.ActionJump) {
		t.Error("the jump should be consumed by the tick")
	}
}

func TestModelStopsTickingWhenGameEnds(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = tickUntilDone(t, m)
	if !m.GameState().GameOver {
		t.Fatalf("expected a lost game without input, got %+v", m.GameState())
	}

	for i := 0; i < 5; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{})
		if cmd != nil {
			t.Fatal("no tick should be scheduled after the game ends")
		}
	}

	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view should show GAME OVER")
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t)

	// Restart is ignored while running
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	seed := m.config.Seed
	m, cmd := update(t, m, runeKey('r'))
	if cmd != nil || m.config.Seed != seed {
		t.Fatal("restart while running should be ignored")
	}

	m = tickUntilDone(t, m)

	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should arm a new tick loop")
	}
	st := m.GameState()
	if !st.Running() || st.Score != 0 {
		t.Errorf("restart should start a fresh session, got %+v", st)
	}
	if m.config.Seed == seed {
		t.Error("restart should pick a new seed")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, one row is reserved for help", m.screen.Height())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}

	// The start trigger uses the size current at start time
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	game := m.game.(*runner.Game)
	if vp := game.Session().Snapshot().Viewport; vp.W != 800 || vp.H != 480 {
		t.Errorf("viewport = %+v, expected 800x480", vp)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewShowsHelp(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "Press Enter or Space to start") {
		t.Error("view should show the start screen")
	}
	if !strings.Contains(view, "jump") || !strings.Contains(view, "quit") {
		t.Error("view should show the key help footer")
	}
}

func TestWriteScreenshot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	screen := core.NewScreen(10, 2)
	screen.DrawText(0, 0, "hello", core.ColorHUD)

	path, err := writeScreenshot("runner", screen)
	if err != nil {
		t.Fatalf("writeScreenshot() error: %v", err)
	}
	if !strings.Contains(path, ".cinnarun") {
		t.Errorf("path = %q, expected it under .cinnarun", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.HasPrefix(string(data), "hello") {
		t.Errorf("screenshot = %q, expected the screen text", data)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(12, 2)
	screen.DrawText(0, 0, "Score: 7", core.ColorHUD)
	screen.DrawText(0, 1, "▀▀▀", core.ColorFloor)

	out := RenderScreen(screen)
	if !strings.Contains(out, "Score: 7") || !strings.Contains(out, "▀▀▀") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 1 newline, got %d", got)
	}
}
