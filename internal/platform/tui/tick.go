// Package tui hosts the runner in the terminal with Bubble Tea.
// It owns the fixed-rate tick loop, maps keys to actions, and wires the audio
// and ledger listeners to the game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg asks the model to advance the game one fixed step.
type TickMsg time.Time

// tickInterval is the delay between ticks at rate ticks per second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
