package stage

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-engine/internal/gfx"
)

// slot holds a registered screen and its per-state transition flag.
type slot struct {
	screen     Screen
	transition bool
}

// Stage is the engine's state machine. It registers screens under integer
// state identifiers, drives the per-frame update/draw loop through a
// Scheduler, and performs deferred state switches: the actual switch runs
// after the current frame finishes so an in-flight update or draw never
// observes a partially-destroyed screen.
//
// All Stage methods must be called from the game-logic goroutine (that is,
// from within frame callbacks or before the loop starts).
type Stage struct {
	target *gfx.Screen
	sched  Scheduler
	logger *log.Logger
	audio  AudioHook

	screens   map[State]*slot
	current   State
	extraArgs []any

	// pending is the single-slot deferred switch, drained at end of frame.
	pending          *State
	onSwitchComplete func()
	repaint          bool

	running        bool
	paused         bool
	frameHandle    uint64
	frameScheduled bool
	lastFrame      time.Time

	// pauseTime backs both stop->restart and pause->resume elapsed time.
	pauseTime time.Time

	frameDuration time.Duration
	fadeCfg       FadeConfig
	fade          fader

	listeners []func(Event)

	// User-assignable lifecycle callbacks, invoked after the matching
	// event is published.
	OnStop    func()
	OnPause   func()
	OnResume  func()
	OnRestart func()
}

// New creates a stage drawing into target and scheduling frames through
// sched. The stage starts with no active state and a stopped loop.
func New(target *gfx.Screen, sched Scheduler) *Stage {
	return &Stage{
		target:        target,
		sched:         sched,
		logger:        log.New(io.Discard),
		screens:       make(map[State]*slot),
		current:       StateNone,
		frameDuration: time.Second / 60,
	}
}

// SetLogger replaces the stage's logger. The default discards output so a
// library user's terminal is never written to unasked.
func (st *Stage) SetLogger(l *log.Logger) {
	if l != nil {
		st.logger = l
	}
}

// SetAudioHook attaches a background track to the loop lifecycle.
func (st *Stage) SetAudioHook(a AudioHook) {
	st.audio = a
}

// SetTickRate sets the nominal frame rate used to normalize the tick value
// passed to screen updates. A rate of zero or below defaults to 60.
func (st *Stage) SetTickRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	st.frameDuration = time.Second / time.Duration(rate)
}

// Set registers a screen under the given state identifier, with fade
// transitions enabled by default. Registering over an existing state
// replaces its screen.
func (st *Stage) Set(state State, screen Screen) error {
	if screen == nil {
		return fmt.Errorf("stage: nil screen for state %d", state)
	}
	st.screens[state] = &slot{screen: screen, transition: true}
	return nil
}

// SetTransition toggles fade eligibility for one state.
func (st *Stage) SetTransition(state State, enabled bool) error {
	s, ok := st.screens[state]
	if !ok {
		return fmt.Errorf("stage: state %d is not registered", state)
	}
	s.transition = enabled
	return nil
}

// SetFade configures the global fade transition applied to any change into
// a transition-enabled state. A zero duration disables fades.
func (st *Stage) SetFade(color gfx.Color, duration time.Duration) {
	st.fadeCfg = FadeConfig{Color: color, Duration: duration}
}

// Change requests a switch to the given state. The switch itself is
// deferred past the current frame; when a global fade is configured and
// the target state has transitions enabled, the sequence is fade out,
// switch, fade back in. Changing to the current state is a no-op. The
// extra arguments are forwarded to the new screen's Reset.
func (st *Stage) Change(state State, args ...any) error {
	target, ok := st.screens[state]
	if !ok {
		return fmt.Errorf("stage: state %d is not registered", state)
	}
	if state == st.current {
		return nil
	}

	st.extraArgs = args

	if st.fadeCfg.Duration > 0 && target.transition {
		st.onSwitchComplete = func() {
			st.fade.start(st.fadeCfg.Color, st.fadeCfg.Duration, false, nil)
		}
		st.fade.start(st.fadeCfg.Color, st.fadeCfg.Duration, true, func() {
			st.schedulePending(state)
		})
	} else {
		st.schedulePending(state)
	}

	// The deferred switch needs frames to drain; the very first change
	// happens before the loop ever started.
	if !st.running {
		st.startLoop()
	}
	return nil
}

// schedulePending stores the deferred switch target. A later request
// overwrites an undrained one.
func (st *Stage) schedulePending(state State) {
	s := state
	st.pending = &s
}

// Current returns the active screen, or nil when no state is active.
func (st *Stage) Current() Screen {
	if s, ok := st.screens[st.current]; ok {
		return s.screen
	}
	return nil
}

// CurrentState returns the active state identifier, StateNone when
// uninitialized.
func (st *Stage) CurrentState() State {
	return st.current
}

// IsCurrent reports whether the given state is the active one.
func (st *Stage) IsCurrent(state State) bool {
	return st.current == state
}
