package bounce

import (
	"github.com/vovakirdan/tui-engine/internal/geom"
	"github.com/vovakirdan/tui-engine/internal/gfx"
	"github.com/vovakirdan/tui-engine/internal/physics"
)

// Entity is a positioned object with a physics body attached. It is the
// anchor the body moves when integrating velocity.
type Entity struct {
	Pos   geom.Vec2
	Body  *physics.Body
	Rune  rune
	Color gfx.Color
}

// NewEntity creates an entity at (x, y) with a w*h rectangular body.
func NewEntity(x, y, w, h float64, r rune, c gfx.Color) *Entity {
	e := &Entity{
		Pos:   geom.Vec2{X: x, Y: y},
		Rune:  r,
		Color: c,
	}
	e.Body = physics.NewBody(e, geom.Rect{W: w, H: h})
	return e
}

// Position returns the entity's world position.
func (e *Entity) Position() geom.Vec2 {
	return e.Pos
}

// SetPosition moves the entity to the given world position.
func (e *Entity) SetPosition(x, y float64) {
	e.Pos.X = x
	e.Pos.Y = y
}

// WorldBounds returns the body's bounding box translated to world space.
func (e *Entity) WorldBounds() geom.Rect {
	b := e.Body.Bounds
	b.X += e.Pos.X
	b.Y += e.Pos.Y
	return b
}
