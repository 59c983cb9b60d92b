// Package tui provides the Bubble Tea front end for the flappy session.
// It owns the clock, maps keys and mouse clicks to commands, and turns the
// session's draw calls into a styled terminal frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// a tick interval at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
