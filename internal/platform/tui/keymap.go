package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-engine/internal/input"
)

// KeyMapper translates Bubble Tea key messages to engine actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action input.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return input.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return input.ActionUp, false
	case "s", "down":
		return input.ActionDown, false
	case "a", "left":
		return input.ActionLeft, false
	case "d", "right":
		return input.ActionRight, false
	case " ": // Space for the primary action
		return input.ActionJump, false
	case "enter":
		return input.ActionConfirm, false
	case "b", "esc":
		return input.ActionBack, false
	case "p":
		return input.ActionPause, false
	case "r":
		return input.ActionRestart, false
	}

	return input.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *input.Frame) bool {
	action, isQuit := km.MapKey(msg)
	if action != input.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a Bubble Tea mouse message into a host pointer
// event for the normalizer. Returns nil for mouse message kinds the
// engine does not consume.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) *input.Event {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp {
			return &input.Event{Type: input.EventWheel, WheelDelta: 40}
		}
		if msg.Button == tea.MouseButtonWheelDown {
			return &input.Event{Type: input.EventWheel, WheelDelta: -40}
		}
		return &input.Event{Type: input.EventPointerDown, Button: int(msg.Button)}
	case tea.MouseActionRelease:
		return &input.Event{Type: input.EventPointerUp, Button: int(msg.Button)}
	case tea.MouseActionMotion:
		return &input.Event{Type: input.EventPointerMove}
	}
	return nil
}
