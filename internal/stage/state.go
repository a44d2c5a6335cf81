// Package stage implements the engine's state machine: it tracks which
// screen is active, owns the run-loop lifecycle, and performs deferred,
// optionally fade-transitioned, state switches.
//
// A Stage is an explicit instance owned by the surrounding application,
// never package-level state; create one per engine.
package stage

import "github.com/vovakirdan/tui-engine/internal/gfx"

// State identifies a registered screen. The engine reserves the block
// below; identifiers at and above StateUser are free for games.
type State int

const (
	// StateNone is the sentinel for "no active state".
	StateNone State = -1

	StateLoading  State = 0
	StateMenu     State = 1
	StateReady    State = 2
	StatePlay     State = 3
	StateGameOver State = 4
	StateGameEnd  State = 5
	StateScore    State = 6
	StateCredits  State = 7
	StateSettings State = 8

	// StateUser is the start of the identifier range reserved for
	// game-defined states.
	StateUser State = 100
)

// Screen is a registered game-state handler. The stage calls Reset when
// the screen becomes active (forwarding the extra arguments given to
// Change), Destroy when it is switched away from, and Update/Draw once
// per frame while it is active.
type Screen interface {
	// Reset initializes the screen. The args are those passed to Change.
	Reset(args ...any)

	// Destroy releases the screen's resources when switched away from.
	Destroy()

	// Update advances the screen by one tick and reports whether anything
	// changed (used to decide whether a repaint is needed).
	Update(dt float64) bool

	// Draw renders the screen into the frame target.
	Draw(dst *gfx.Screen)
}

// AudioHook lets the stage pause and resume a background track alongside
// the run loop. It is optional.
type AudioHook interface {
	PauseTrack()
	ResumeTrack()
}
