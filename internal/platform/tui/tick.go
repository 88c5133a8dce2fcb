// Package tui provides the Bubble Tea integration for the interpreter.
// It handles the terminal UI loop, input mapping, and machine pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next auto-run step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages after the
// configured step delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
