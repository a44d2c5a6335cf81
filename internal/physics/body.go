package physics

import (
	"math"

	"github.com/vovakirdan/tui-engine/internal/geom"
)

// Body is the physics and collision aggregate owned by a scene entity.
// It holds the entity's collision shapes, its kinematic state, and a cached
// bounding rectangle equal to the union of all shape bounds.
//
// All mutation happens on the game-logic goroutine between frames; bodies
// are never shared.
type Body struct {
	ancestor Ancestor
	shapes   []geom.Shape

	// Bounds is the cached union of all shape bounds, recomputed by
	// UpdateBounds whenever shapes change.
	Bounds geom.Rect

	CollisionType CollisionType
	CollisionMask CollisionType

	Vel      geom.Vec2
	Accel    geom.Vec2
	Friction geom.Vec2
	MaxVel   geom.Vec2

	// Bounce is the rebound factor applied on collision: 0 is no rebound,
	// 1 a full rebound. It is not clamped.
	Bounce float64

	// Gravity is the per-body vertical acceleration, DefaultGravity unless
	// overridden.
	Gravity float64

	// Falling and Jumping are derived each update from the velocity sign
	// relative to the gravity direction.
	Falling bool
	Jumping bool

	// OnBodyUpdate, when set, is invoked after every bounds recomputation.
	OnBodyUpdate func(*Body)
}

// NewBody creates a body attached to the given ancestor with an optional
// initial shape list. Rectangles are converted to polygons on insertion.
func NewBody(ancestor Ancestor, shapes ...geom.Shape) *Body {
	b := &Body{
		ancestor:      ancestor,
		CollisionType: CollisionWorld,
		CollisionMask: CollisionAll,
		MaxVel:        geom.Vec2{X: 1000, Y: 1000},
		Gravity:       DefaultGravity,
	}
	for _, s := range shapes {
		b.AddShape(s, true)
	}
	b.UpdateBounds()
	return b
}

// Ancestor returns the owning entity, or nil after Destroy.
func (b *Body) Ancestor() Ancestor {
	return b.ancestor
}

// AddShape appends a shape to the body's shape list and returns the new
// shape count. Rectangles are converted to an equivalent polygon. When
// batch is true the bounds recomputation is skipped; the caller must then
// invoke UpdateBounds once after the batch.
func (b *Body) AddShape(shape geom.Shape, batch bool) int {
	if r, ok := shape.(geom.Rect); ok {
		shape = r.ToPolygon()
	}
	b.shapes = append(b.shapes, shape)
	if !batch {
		b.UpdateBounds()
	}
	return len(b.shapes)
}

// Shape returns the shape at the given index, or nil if out of range.
func (b *Body) Shape(index int) geom.Shape {
	if index < 0 || index >= len(b.shapes) {
		return nil
	}
	return b.shapes[index]
}

// ShapeCount returns the number of shapes attached to the body.
func (b *Body) ShapeCount() int {
	return len(b.shapes)
}

// RemoveShape removes the given shape by identity and returns the new
// shape count. Removing a shape that is not present is a no-op.
func (b *Body) RemoveShape(shape geom.Shape) int {
	for i, s := range b.shapes {
		if s == shape {
			return b.RemoveShapeAt(i)
		}
	}
	return len(b.shapes)
}

// RemoveShapeAt removes the shape at the given index and returns the new
// shape count. Bounds are always recomputed.
func (b *Body) RemoveShapeAt(index int) int {
	if index < 0 || index >= len(b.shapes) {
		return len(b.shapes)
	}
	b.shapes = append(b.shapes[:index], b.shapes[index+1:]...)
	b.UpdateBounds()
	return len(b.shapes)
}

// SetCollisionMask sets which collision types this body collides with.
func (b *Body) SetCollisionMask(mask CollisionType) {
	b.CollisionMask = mask
}

// SetVelocity sets the body's acceleration. A zero argument leaves the
// acceleration unchanged on that axis; only nonzero values overwrite.
// As a side effect the max velocity is reset to the same magnitudes.
func (b *Body) SetVelocity(x, y float64) {
	if x != 0 {
		b.Accel.X = x
	}
	if y != 0 {
		b.Accel.Y = y
	}
	b.SetMaxVelocity(x, y)
}

// SetMaxVelocity caps the body's velocity on each axis.
func (b *Body) SetMaxVelocity(x, y float64) {
	b.MaxVel.X = x
	b.MaxVel.Y = y
}

// SetFriction sets the per-axis friction opposing the body's motion.
func (b *Body) SetFriction(x, y float64) {
	b.Friction.X = x
	b.Friction.Y = y
}

// UpdateBounds recomputes the body's bounding rectangle as the union of
// all shape bounds, seeded by shape 0. With an empty shape list the
// geometry is left untouched. The OnBodyUpdate callback, if set, is
// invoked in either case.
func (b *Body) UpdateBounds() geom.Rect {
	if len(b.shapes) > 0 {
		bounds := b.shapes[0].Bounds()
		for _, s := range b.shapes[1:] {
			bounds = bounds.Union(s.Bounds())
		}
		b.Bounds = bounds
	}
	if b.OnBodyUpdate != nil {
		b.OnBodyUpdate(b)
	}
	return b.Bounds
}

// computeVelocity applies gravity, friction, and the max velocity clamp to
// the body's velocity for one tick. dt scales both gravity and friction.
func (b *Body) computeVelocity(dt float64) {
	if b.Gravity != 0 {
		b.Vel.Y += b.Gravity * dt

		// Falling once velocity points along gravity; a fall cancels a jump.
		b.Falling = b.Vel.Y*geom.Sign(b.Gravity) > 0
		if b.Falling {
			b.Jumping = false
		}
	}

	if b.Friction.X != 0 || b.Friction.Y != 0 {
		b.applyFriction(dt)
	}

	// Zero velocity is left exactly zero rather than clamped, so an
	// at-rest axis never picks up a -0 artifact.
	if b.Vel.X != 0 {
		b.Vel.X = geom.Clamp(b.Vel.X, -b.MaxVel.X, b.MaxVel.X)
	}
	if b.Vel.Y != 0 {
		b.Vel.Y = geom.Clamp(b.Vel.Y, -b.MaxVel.Y, b.MaxVel.Y)
	}
}

// applyFriction decays the velocity toward zero on each axis. Friction
// opposes the direction of motion and is never allowed to push the
// velocity past zero.
func (b *Body) applyFriction(dt float64) {
	fx := b.Friction.X * dt
	nx := b.Vel.X + fx
	x := b.Vel.X - fx
	fy := b.Friction.Y * dt
	ny := b.Vel.Y + fy
	y := b.Vel.Y - fy

	switch {
	case nx < 0:
		b.Vel.X = nx
	case x > 0:
		b.Vel.X = x
	default:
		b.Vel.X = 0
	}

	switch {
	case ny < 0:
		b.Vel.Y = ny
	case y > 0:
		b.Vel.Y = y
	default:
		b.Vel.Y = 0
	}
}

// Update integrates the body's motion for one tick and moves the ancestor
// by the resulting velocity. It reports whether the body is still moving
// on either axis.
func (b *Body) Update(dt float64) bool {
	b.computeVelocity(dt)
	pos := b.ancestor.Position()
	b.ancestor.SetPosition(pos.X+b.Vel.X, pos.Y+b.Vel.Y)
	return b.Vel.X != 0 || b.Vel.Y != 0
}

// RespondToCollision moves the ancestor out of penetration by the overlap
// vector and nudges the velocity: on each overlapping axis the corrected
// velocity is rounded to the nearest integer, then sign-flipped and scaled
// by Bounce when Bounce is positive. A vertical overlap recomputes the
// Falling and Jumping flags from the overlap sign relative to gravity.
//
// This is a discrete positional correction, not an impulse solver.
func (b *Body) RespondToCollision(response *Response) {
	overlap := response.OverlapV

	pos := b.ancestor.Position()
	b.ancestor.SetPosition(pos.X-overlap.X, pos.Y-overlap.Y)

	if overlap.X != 0 {
		b.Vel.X = roundVelocity(b.Vel.X - overlap.X)
		if b.Bounce > 0 {
			b.Vel.X *= -b.Bounce
		}
	}
	if overlap.Y != 0 {
		b.Vel.Y = roundVelocity(b.Vel.Y - overlap.Y)
		if b.Bounce > 0 {
			b.Vel.Y *= -b.Bounce
		}

		// Project the overlap onto the gravity direction so an inverted
		// gravity body classifies its ceiling-floor the same way.
		dir := geom.Sign(b.Gravity)
		if dir == 0 {
			dir = 1
		}
		b.Falling = overlap.Y*dir >= 1
		b.Jumping = overlap.Y*dir <= -1
	}
}

// roundVelocity truncates 0.5+v toward zero, normalizing -0 to 0.
func roundVelocity(v float64) float64 {
	r := math.Trunc(0.5 + v)
	if r == 0 {
		return 0
	}
	return r
}

// Destroy clears the shape list and severs the ancestor back-reference and
// the bounds-update hook. The body must not be used afterwards.
func (b *Body) Destroy() {
	b.shapes = nil
	b.ancestor = nil
	b.OnBodyUpdate = nil
}
