package bounce

import (
	"fmt"

	"github.com/vovakirdan/tui-engine/internal/gfx"
	"github.com/vovakirdan/tui-engine/internal/input"
	"github.com/vovakirdan/tui-engine/internal/stage"
)

// gameOverScreen shows the final score after the chamber overflows.
type gameOverScreen struct {
	st    *stage.Stage
	in    *input.Frame
	score int
}

func newGameOverScreen(st *stage.Stage, in *input.Frame) *gameOverScreen {
	return &gameOverScreen{st: st, in: in}
}

// Reset picks the final score out of the Change arguments.
func (g *gameOverScreen) Reset(args ...any) {
	g.score = 0
	if len(args) > 0 {
		if s, ok := args[0].(int); ok {
			g.score = s
		}
	}
}

func (g *gameOverScreen) Destroy() {}

func (g *gameOverScreen) Update(dt float64) bool {
	if g.in.Has(input.ActionRestart) || g.in.Has(input.ActionConfirm) {
		g.st.Change(stage.StatePlay)
		return true
	}
	if g.in.Has(input.ActionBack) {
		g.st.Change(stage.StateMenu)
		return true
	}
	return false
}

func (g *gameOverScreen) Draw(dst *gfx.Screen) {
	dst.Clear()
	dst.DrawBox(0, 0, dst.Width(), dst.Height())

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "CHAMBER OVERFLOW")
	dst.DrawTextCentered(mid, fmt.Sprintf("Final bounces: %d", g.score))
	dst.DrawTextCentered(mid+2, "r: play again   esc: menu")
}
