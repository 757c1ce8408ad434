// Package tui runs Space Defender in a terminal through Bubble Tea.
// It handles the frame loop, key mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the game model whose tag it carries.
type TickMsg struct {
	Tag int64
	At  time.Time
}

// tickTags hands every game model its own tag, so a tick still in flight when
// a game is left never reaches the next one and doubles its frame rate.
var tickTags atomic.Int64

func nextTickTag() int64 {
	return tickTags.Add(1)
}

// frameInterval is the time between ticks at rate ticks per second.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next tick for tag.
func tickCmd(tag int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Tag: tag, At: t}
	})
}
