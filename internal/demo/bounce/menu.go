package bounce

import (
	"github.com/vovakirdan/tui-engine/internal/gfx"
	"github.com/vovakirdan/tui-engine/internal/input"
	"github.com/vovakirdan/tui-engine/internal/stage"
)

// menuScreen is the demo's title screen.
type menuScreen struct {
	st *stage.Stage
	in *input.Frame
}

func newMenuScreen(st *stage.Stage, in *input.Frame) *menuScreen {
	return &menuScreen{st: st, in: in}
}

func (m *menuScreen) Reset(args ...any) {}

func (m *menuScreen) Destroy() {}

func (m *menuScreen) Update(dt float64) bool {
	if m.in.Has(input.ActionConfirm) || m.in.Has(input.ActionJump) {
		m.st.Change(stage.StatePlay)
		return true
	}
	return false
}

func (m *menuScreen) Draw(dst *gfx.Screen) {
	dst.Clear()
	dst.DrawBox(0, 0, dst.Width(), dst.Height())

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "B O U N C E   C H A M B E R")
	dst.DrawTextCentered(mid, "Boxes fall, bounce, and pile up.")
	dst.DrawTextCentered(mid+1, "Keep dropping more until the chamber overflows.")
	dst.DrawTextCentered(mid+3, "Press ENTER or SPACE to start")
}
