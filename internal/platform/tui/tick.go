// Package tui is the Bubble Tea front end: the frame loop, key and mouse
// mapping, the intro menu, the session scoreboard and the Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game frame.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after one frame at tickRate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
