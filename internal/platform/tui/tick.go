// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used when a non-positive rate is requested.
const DefaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// one interval at the given rate. The model re-arms it after every tick
// that leaves the game running.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
