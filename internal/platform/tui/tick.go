// Package tui provides the Bubble Tea integration for the game platform.
// It runs the terminal UI loop and maps keys to game actions, locally or
// over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// GameModel that scheduled it; other models ignore it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var lastTickGen atomic.Uint64

// nextTickGen returns a tick generation no other GameModel has used.
func nextTickGen() uint64 {
	return lastTickGen.Add(1)
}

// tickInterval returns the wall-clock period of one tick. Non-positive rates
// fall back to the default rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next simulation tick.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
