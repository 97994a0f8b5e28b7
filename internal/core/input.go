package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A - shift piece left
	ActionRight           // Right arrow, D - shift piece right
	ActionSoftDrop        // Down arrow, S - single down-step
	ActionRotate          // Up arrow, W - rotate clockwise
	ActionHardDrop        // Space - drop to rest and lock
	ActionPause           // P - pause/unpause game
	ActionRestart         // R - restart game
	ActionBack            // B, Escape - go back to menu
	ActionQuit            // Q, Ctrl+C - exit game/session
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Actions are kept in arrival order and repeated presses are not merged, so
// every key press reaches the game as its own command.
type InputFrame struct {
	queue []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		queue: make([]Action, 0, 8),
	}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.queue = append(f.queue, a)
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.queue
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.queue = f.queue[:0]
}
