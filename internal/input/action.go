// Package input normalizes host input for the engine: keyboard input is
// abstracted into semantic actions collected per frame, and raw pointer,
// mouse, touch, and wheel events are translated into a Pointer sample
// carrying every engine coordinate space.
package input

// Action represents a semantic game action, abstracted from physical key
// presses. Screens work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move/aim up
	ActionDown           // move/aim down
	ActionLeft           // move left
	ActionRight          // move right
	ActionJump           // primary action (jump, spawn)
	ActionConfirm        // confirm selection in a menu
	ActionBack           // back to the menu state
	ActionRestart        // restart the active screen
	ActionQuit           // exit the engine
	ActionPause          // pause/resume the run loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Frame collects the actions triggered during one simulation tick.
type Frame struct {
	actions map[Action]bool
}

// NewFrame creates an empty input frame.
func NewFrame() *Frame {
	return &Frame{actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *Frame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f *Frame) Has(a Action) bool {
	return f.actions[a]
}

// Clear resets all actions for the next frame.
func (f *Frame) Clear() {
	for k := range f.actions {
		delete(f.actions, k)
	}
}
