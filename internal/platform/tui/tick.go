// Package tui runs sweeper games in a terminal with Bubble Tea: the
// fixed-rate tick loop, key and mouse mapping, colour rendering, the preset
// menu, the results history and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// TickMsg advances the game by one step. Each step processes at most one
// ring of a reveal cascade, so the rate is also the cascade speed.
type TickMsg time.Time

// tickInterval is the time between two ticks at rate ticks per second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
