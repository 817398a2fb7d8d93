// Package tui drives the game in the terminal with Bubble Tea: the fixed
// rate frame loop, key latching, colour rendering, the title menu, the
// scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID ties the tick to
// the game model that scheduled it, so a tick still in flight when the
// player leaves for the menu never drives the next game.
type TickMsg struct {
	Time time.Time
	ID   int64
}

var lastTickID atomic.Int64

func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// The tick is also the frame cap: the loop never runs faster than tickRate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
