package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyState turns terminal key events into held-key state.
// Terminals only report presses and auto-repeats, so a key counts as held
// while its last event is younger than the hold window. The pointer follows
// the mouse and is nudged by the left/right actions.
type KeyState struct {
	hold    time.Duration
	step    float64
	now     func() time.Time
	pressed map[core.Action]time.Time

	pointerX, pointerY float64
	width, height      int
}

// NewKeyState creates a key state for a width x height playfield with the
// pointer centered.
func NewKeyState(hold time.Duration, step float64, width, height int) *KeyState {
	k := &KeyState{
		hold:    hold,
		step:    step,
		now:     time.Now,
		pressed: make(map[core.Action]time.Time),
	}
	k.Reset(width, height)
	return k
}

// Reset forgets held keys and recenters the pointer.
func (k *KeyState) Reset(width, height int) {
	k.width = width
	k.height = height
	k.pointerX = float64(width) / 2
	k.pointerY = float64(height) / 2
	clear(k.pressed)
}

// Press records a key event for a.
func (k *KeyState) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	k.pressed[a] = k.now()

	switch a {
	case core.ActionLeft:
		k.MoveTo(k.pointerX-k.step, k.pointerY)
	case core.ActionRight:
		k.MoveTo(k.pointerX+k.step, k.pointerY)
	}
}

// MoveTo places the pointer, clamped to the playfield.
func (k *KeyState) MoveTo(x, y float64) {
	k.pointerX = core.ClampF(x, 0, float64(core.Max(k.width-1, 0)))
	k.pointerY = core.ClampF(y, 0, float64(core.Max(k.height-1, 0)))
}

// IsPressed reports whether a had an event within the hold window.
func (k *KeyState) IsPressed(a core.Action) bool {
	t, ok := k.pressed[a]
	return ok && k.now().Sub(t) <= k.hold
}

// Pointer returns the pointer position in cells.
func (k *KeyState) Pointer() (x, y float64) {
	return k.pointerX, k.pointerY
}
