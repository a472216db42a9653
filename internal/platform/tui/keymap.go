package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cinnarun/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Start      key.Binding
	Jump       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Screenshot, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Jump},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up/w", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea input messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper matches against.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Start):
		return core.ActionConfirm, false
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapMouse translates a mouse message to an action.
// Only a left button press counts; it jumps like the space bar.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionJump
	}
	return core.ActionNone
}
