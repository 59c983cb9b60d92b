package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard, mouse and scripted input all reduce to these.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space, Up, W, left click - flap (starts the game when not running)
	ActionStart        // Enter, R - start or restart unconditionally
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
// Used by scripted drivers that feed a whole frame of input at once.
type InputFrame struct {
	// Actions in arrival order. Order matters: start-then-flap differs
	// from flap-then-start when the session is over.
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
