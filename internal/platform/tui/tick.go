// Package tui runs the game in a terminal with Bubble Tea and serves it
// over SSH with Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(core.TickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
