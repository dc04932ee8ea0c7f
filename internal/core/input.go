package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - nudge the pointer left
	ActionRight          // D, Right arrow - nudge the pointer right
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSource is polled by the game every frame. IsPressed reports whether an
// action's key is currently held; Pointer returns the cursor position in
// window cells.
type InputSource interface {
	IsPressed(a Action) bool
	Pointer() (x, y float64)
}

// InputFrame is a fixed snapshot of input state. It satisfies InputSource and
// is what tests and replays feed the game.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions  map[Action]bool
	PointerX float64
	PointerY float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Release marks an action as no longer held.
func (f *InputFrame) Release(a Action) {
	delete(f.Actions, a)
}

// MoveTo sets the pointer position.
func (f *InputFrame) MoveTo(x, y float64) {
	f.PointerX = x
	f.PointerY = y
}

// IsPressed returns true if the given action is held in this frame.
func (f InputFrame) IsPressed(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Pointer returns the pointer position.
func (f InputFrame) Pointer() (float64, float64) {
	return f.PointerX, f.PointerY
}

// Clear releases all actions.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
