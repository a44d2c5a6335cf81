// Package bounce implements the bounce chamber demo: boxes with physics
// bodies fall under gravity and bounce inside a walled chamber. Boxes are
// spawned by keyboard or by clicking a cell, and the run ends when the
// chamber overflows.
package bounce

import (
	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/input"
	"github.com/vovakirdan/tui-engine/internal/registry"
	"github.com/vovakirdan/tui-engine/internal/stage"
)

// Demo wires the chamber's screens onto a stage.
type Demo struct {
	play *playScreen
}

// New creates a new bounce demo instance.
func New() *Demo {
	return &Demo{}
}

// ID returns the unique identifier for this demo.
func (d *Demo) ID() string {
	return "bounce"
}

// Title returns the display name for this demo.
func (d *Demo) Title() string {
	return "Bounce Chamber"
}

// Install registers the demo's screens and returns the starting state.
func (d *Demo) Install(st *stage.Stage, cfg config.RuntimeConfig, in *input.Frame) (stage.State, error) {
	d.play = newPlayScreen(st, cfg, in)

	if err := st.Set(stage.StateMenu, newMenuScreen(st, in)); err != nil {
		return stage.StateNone, err
	}
	if err := st.Set(stage.StatePlay, d.play); err != nil {
		return stage.StateNone, err
	}
	if err := st.Set(stage.StateGameOver, newGameOverScreen(st, in)); err != nil {
		return stage.StateNone, err
	}

	return stage.StateMenu, nil
}

// Score returns the bounce count of the current or last run.
func (d *Demo) Score() int {
	if d.play == nil {
		return 0
	}
	return d.play.Score()
}

// HandlePointer drops a box at the pointer's world position on press.
func (d *Demo) HandlePointer(p *input.Pointer) {
	if d.play == nil {
		return
	}
	if p.Type != input.EventPointerDown {
		return
	}
	d.play.SpawnAt(p.WorldX, p.WorldY)
}

func init() {
	registry.Register("bounce", func() registry.Demo {
		return New()
	})
}
