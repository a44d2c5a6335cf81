package bounce

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/geom"
	"github.com/vovakirdan/tui-engine/internal/gfx"
	"github.com/vovakirdan/tui-engine/internal/input"
	"github.com/vovakirdan/tui-engine/internal/physics"
	"github.com/vovakirdan/tui-engine/internal/stage"
)

// Tuning constants for the chamber simulation.
const (
	Bounciness   = 0.85 // Velocity retained after a wall hit
	MaxFallSpeed = 1.6  // Terminal velocity in cells per tick
	MaxSideSpeed = 1.2
	LaunchSpeedX = 0.8 // Initial horizontal kick for spawned boxes
	MaxEntities  = 24  // Chamber capacity; exceeding it ends the run
	BoxRune      = '■'
)

// playScreen runs the simulation: boxes fall under gravity, bounce off
// the chamber walls, and new boxes are spawned by keyboard or pointer.
type playScreen struct {
	st  *stage.Stage
	cfg config.RuntimeConfig
	in  *input.Frame

	entities []*Entity
	walls    []geom.Rect
	rng      *rand.Rand

	score     int // Total wall bounces this run
	tickCount int
	jumpHeld  bool
}

func newPlayScreen(st *stage.Stage, cfg config.RuntimeConfig, in *input.Frame) *playScreen {
	return &playScreen{st: st, cfg: cfg, in: in}
}

// Reset initializes or restarts the simulation.
func (p *playScreen) Reset(args ...any) {
	w := float64(p.cfg.ScreenW)
	h := float64(p.cfg.ScreenH)

	p.rng = rand.New(rand.NewSource(p.cfg.Seed))
	p.entities = nil
	p.score = 0
	p.tickCount = 0
	p.jumpHeld = false

	// Chamber walls: thick zones outside the visible box so fast bodies
	// cannot tunnel through in one tick.
	p.walls = []geom.Rect{
		{X: -10, Y: h - 1, W: w + 20, H: 10}, // floor
		{X: -10, Y: -10, W: w + 20, H: 11},   // ceiling
		{X: -10, Y: 0, W: 10, H: h},          // left wall
		{X: w, Y: 0, W: 10, H: h},            // right wall
	}

	// Seed the chamber with a few boxes
	for i := 0; i < 3; i++ {
		p.spawn(w/2+float64(i-1)*6, 2)
	}
}

// Destroy releases the simulation's bodies.
func (p *playScreen) Destroy() {
	for _, e := range p.entities {
		e.Body.Destroy()
	}
	p.entities = nil
}

// spawn adds a bouncing box at the given world position.
func (p *playScreen) spawn(x, y float64) {
	colors := []gfx.Color{gfx.ColorCyan, gfx.ColorYellow, gfx.ColorMagenta, gfx.ColorGreen}
	e := NewEntity(x, y, 2, 1, BoxRune, colors[p.rng.Intn(len(colors))])
	e.Body.Bounce = Bounciness
	if p.cfg.Gravity != 0 {
		e.Body.Gravity = p.cfg.Gravity
	}
	e.Body.SetMaxVelocity(MaxSideSpeed, MaxFallSpeed)
	e.Body.Vel.X = (p.rng.Float64()*2 - 1) * LaunchSpeedX
	p.entities = append(p.entities, e)
}

// SpawnAt drops a box at pointer world coordinates.
func (p *playScreen) SpawnAt(x, y float64) {
	if p.st.CurrentState() != stage.StatePlay {
		return
	}
	p.spawn(x, y)
}

// Update advances the simulation by one tick.
func (p *playScreen) Update(dt float64) bool {
	p.tickCount++

	if p.in.Has(input.ActionBack) {
		p.st.Change(stage.StateMenu)
		return true
	}
	if p.in.Has(input.ActionRestart) {
		p.Reset()
		return true
	}

	// Edge-trigger spawning so a held key does not flood the chamber
	if p.in.Has(input.ActionJump) {
		if !p.jumpHeld {
			p.spawn(2+p.rng.Float64()*float64(p.cfg.ScreenW-6), 1)
		}
		p.jumpHeld = true
	} else {
		p.jumpHeld = false
	}

	for _, e := range p.entities {
		e.Body.Update(dt)
		p.collideWalls(e)
	}

	if len(p.entities) > MaxEntities {
		p.st.Change(stage.StateGameOver, p.score)
	}

	return true
}

// collideWalls resolves penetration between an entity and the chamber
// walls, counting each resolved hit toward the score.
func (p *playScreen) collideWalls(e *Entity) {
	for _, wall := range p.walls {
		wb := e.WorldBounds()
		if !wb.Intersects(wall) {
			continue
		}
		resp := physics.Response{
			A:        e.Body,
			OverlapV: wb.Overlap(wall),
		}
		e.Body.RespondToCollision(&resp)
		p.score++
	}
}

// Draw renders the chamber, its boxes, and the HUD.
func (p *playScreen) Draw(dst *gfx.Screen) {
	dst.Clear()
	dst.DrawBox(0, 0, dst.Width(), dst.Height())

	for _, e := range p.entities {
		wb := e.WorldBounds()
		for dy := 0; dy < int(wb.H+0.5); dy++ {
			for dx := 0; dx < int(wb.W+0.5); dx++ {
				dst.SetCell(int(wb.X)+dx, int(wb.Y)+dy, e.Rune, e.Color)
			}
		}
	}

	hud := fmt.Sprintf(" Bounces: %d  Boxes: %d/%d ", p.score, len(p.entities), MaxEntities)
	dst.DrawText(2, 0, hud)
	dst.DrawTextColored(2, dst.Height()-1, " space/click: drop  r: reset  esc: menu ", gfx.ColorGray)
}

// Score returns the bounce count for the current run.
func (p *playScreen) Score() int {
	return p.score
}
