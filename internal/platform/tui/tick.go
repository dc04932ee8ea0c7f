// Package tui runs a game in the terminal with Bubble Tea.
// It owns the frame loop, maps keys and mouse events to input, and presents
// the game's window.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps dt after a stall so a resumed frame does not jump the
// game far ahead.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// [0, maxFrameDelta]. The first frame uses the nominal interval.
func frameDelta(last, now time.Time, interval time.Duration) float64 {
	if last.IsZero() {
		return min(interval.Seconds(), maxFrameDelta)
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrameDelta)
}
