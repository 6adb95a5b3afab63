// Package tui runs games in the terminal with Bubble Tea: the frame loop,
// key mapping, the scoreboard overlay and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to step the game once.
type TickMsg time.Time

// frameInterval is the time between ticks at rate; non-positive rates run at 60.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
