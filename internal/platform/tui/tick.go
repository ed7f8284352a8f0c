// Package tui provides the Bubble Tea host for Dodgey.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

// nextID returns a unique tick loop ID. A model only reacts to its own
// ticks, so a loop left over from a finished round is ignored.
func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is sent to trigger a simulation tick.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
