package stage

import (
	"time"

	"github.com/vovakirdan/tui-engine/internal/gfx"
)

// FadeConfig is the global fade transition: the overlay color and how long
// each half of the fade takes. A zero duration disables transitions.
type FadeConfig struct {
	Color    gfx.Color
	Duration time.Duration
}

// fader tracks the overlay opacity across a fade-out/switch/fade-in
// sequence. level is the current opacity in [0, 1]; it stays at 1 between
// the end of the fade-out and the start of the fade-in.
type fader struct {
	active     bool
	out        bool // overlay appearing (toward 1) vs disappearing
	color      gfx.Color
	duration   time.Duration
	elapsed    time.Duration
	level      float64
	onComplete func()
}

func (f *fader) start(color gfx.Color, duration time.Duration, out bool, onComplete func()) {
	f.active = true
	f.out = out
	f.color = color
	f.duration = duration
	f.elapsed = 0
	f.onComplete = onComplete
}

// advance progresses the fade by the elapsed wall time, firing onComplete
// exactly once when the fade finishes.
func (f *fader) advance(d time.Duration) {
	if !f.active {
		return
	}
	f.elapsed += d

	progress := 1.0
	if f.duration > 0 && f.elapsed < f.duration {
		progress = float64(f.elapsed) / float64(f.duration)
	}
	if f.out {
		f.level = progress
	} else {
		f.level = 1 - progress
	}

	if progress >= 1 {
		f.active = false
		cb := f.onComplete
		f.onComplete = nil
		if cb != nil {
			cb()
		}
	}
}

// FadeAlpha returns the current fade overlay opacity in [0, 1]. The
// platform layer blends the frame toward FadeColor by this amount.
func (st *Stage) FadeAlpha() float64 {
	return st.fade.level
}

// FadeColor returns the color of the active fade overlay.
func (st *Stage) FadeColor() gfx.Color {
	return st.fade.color
}
