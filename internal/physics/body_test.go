package physics

import (
	"testing"

	"github.com/vovakirdan/tui-engine/internal/geom"
)

// testEntity is a minimal ancestor for exercising bodies.
type testEntity struct {
	pos geom.Vec2
}

func (e *testEntity) Position() geom.Vec2 {
	return e.pos
}

func (e *testEntity) SetPosition(x, y float64) {
	e.pos.X = x
	e.pos.Y = y
}

func newTestBody(shapes ...geom.Shape) (*Body, *testEntity) {
	e := &testEntity{}
	return NewBody(e, shapes...), e
}

func TestNewBodyDefaults(t *testing.T) {
	b, _ := newTestBody()

	if b.CollisionType != CollisionWorld {
		t.Errorf("CollisionType = %v, want world", b.CollisionType)
	}
	if b.CollisionMask != CollisionAll {
		t.Errorf("CollisionMask = %v, want all", b.CollisionMask)
	}
	if b.MaxVel != (geom.Vec2{X: 1000, Y: 1000}) {
		t.Errorf("MaxVel = %+v", b.MaxVel)
	}
	if b.Gravity != DefaultGravity {
		t.Errorf("Gravity = %v, want %v", b.Gravity, DefaultGravity)
	}
}

func TestAddShapeConvertsRect(t *testing.T) {
	b, _ := newTestBody()

	n := b.AddShape(geom.NewRect(0, 0, 4, 2), false)
	if n != 1 {
		t.Fatalf("shape count = %d, want 1", n)
	}
	if _, ok := b.Shape(0).(*geom.Polygon); !ok {
		t.Errorf("rectangle should be stored as a polygon, got %T", b.Shape(0))
	}
	if b.Bounds != geom.NewRect(0, 0, 4, 2) {
		t.Errorf("Bounds = %+v", b.Bounds)
	}
}

func TestUpdateBoundsUnion(t *testing.T) {
	b, _ := newTestBody(
		geom.NewRect(0, 0, 2, 2),
		geom.NewRect(4, 4, 2, 2),
	)

	want := geom.NewRect(0, 0, 6, 6)
	if b.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", b.Bounds, want)
	}

	// Order independence
	b2, _ := newTestBody(
		geom.NewRect(4, 4, 2, 2),
		geom.NewRect(0, 0, 2, 2),
	)
	if b2.Bounds != want {
		t.Errorf("reversed insertion Bounds = %+v, want %+v", b2.Bounds, want)
	}
}

func TestUpdateBoundsEmptyKeepsGeometry(t *testing.T) {
	b, _ := newTestBody(geom.NewRect(1, 1, 2, 2))
	before := b.Bounds

	b.RemoveShapeAt(0)
	// Emptying the shape list must not zero the cached rectangle
	if b.Bounds != before {
		t.Errorf("Bounds changed after removing last shape: %+v", b.Bounds)
	}
}

func TestUpdateBoundsCallback(t *testing.T) {
	b, _ := newTestBody()

	calls := 0
	b.OnBodyUpdate = func(got *Body) {
		calls++
		if got != b {
			t.Error("callback should receive the body itself")
		}
	}

	b.UpdateBounds()
	b.AddShape(geom.NewRect(0, 0, 1, 1), false)
	if calls != 2 {
		t.Errorf("callback ran %d times, want 2", calls)
	}
}

func TestRemoveShape(t *testing.T) {
	s1 := geom.NewPolygon(geom.Vec2{}, geom.Vec2{X: 1}, geom.Vec2{X: 1, Y: 1})
	s2 := geom.NewPolygon(geom.Vec2{X: 5}, geom.Vec2{X: 6}, geom.Vec2{X: 6, Y: 1})
	b, _ := newTestBody(s1, s2)

	if n := b.RemoveShape(s1); n != 1 {
		t.Errorf("count after remove = %d, want 1", n)
	}
	if b.Shape(0) != s2 {
		t.Error("wrong shape removed")
	}

	// Removing an absent shape is a no-op
	if n := b.RemoveShape(s1); n != 1 {
		t.Errorf("count after absent remove = %d, want 1", n)
	}
}

func TestSetVelocityZeroConvention(t *testing.T) {
	b, _ := newTestBody()
	b.Accel = geom.Vec2{X: 3, Y: 4}

	b.SetVelocity(0, 7)

	if b.Accel.X != 3 {
		t.Errorf("zero x should leave Accel.X unchanged, got %v", b.Accel.X)
	}
	if b.Accel.Y != 7 {
		t.Errorf("Accel.Y = %v, want 7", b.Accel.Y)
	}
	// Max velocity tracks the arguments, zero included
	if b.MaxVel != (geom.Vec2{X: 0, Y: 7}) {
		t.Errorf("MaxVel = %+v", b.MaxVel)
	}
}

func TestUpdateAppliesGravity(t *testing.T) {
	b, e := newTestBody()
	b.Gravity = 0.5

	moving := b.Update(1)

	if !moving {
		t.Error("body under gravity should report moving")
	}
	if b.Vel.Y != 0.5 {
		t.Errorf("Vel.Y = %v, want 0.5", b.Vel.Y)
	}
	if !b.Falling {
		t.Error("downward velocity under positive gravity means falling")
	}
	if e.pos.Y != 0.5 {
		t.Errorf("ancestor Y = %v, want 0.5", e.pos.Y)
	}
}

func TestFallingCancelsJumping(t *testing.T) {
	b, _ := newTestBody()
	b.Gravity = 1
	b.Jumping = true
	b.Vel.Y = -0.4 // still rising

	b.Update(1) // velocity becomes 0.6, pointing along gravity

	if !b.Falling {
		t.Error("body should be falling")
	}
	if b.Jumping {
		t.Error("falling should cancel jumping")
	}
}

func TestInvertedGravityFalling(t *testing.T) {
	b, _ := newTestBody()
	b.Gravity = -1

	b.Update(1)

	if b.Vel.Y != -1 {
		t.Errorf("Vel.Y = %v, want -1", b.Vel.Y)
	}
	if !b.Falling {
		t.Error("upward velocity under negative gravity still means falling")
	}
}

func TestMaxVelocityClamp(t *testing.T) {
	b, _ := newTestBody()
	b.Gravity = 0
	b.SetMaxVelocity(2, 3)
	b.Vel = geom.Vec2{X: 10, Y: -10}

	b.Update(1)

	if b.Vel.X != 2 {
		t.Errorf("Vel.X = %v, want 2", b.Vel.X)
	}
	if b.Vel.Y != -3 {
		t.Errorf("Vel.Y = %v, want -3", b.Vel.Y)
	}
}

func TestFrictionConvergesToZero(t *testing.T) {
	b, _ := newTestBody()
	b.Gravity = 0
	b.SetFriction(0.5, 0)
	b.Vel.X = 2

	for i := 0; i < 10 && b.Vel.X != 0; i++ {
		b.Update(1)
	}

	if b.Vel.X != 0 {
		t.Errorf("Vel.X = %v, friction should reach exactly zero", b.Vel.X)
	}
}

func TestFrictionNeverReversesMotion(t *testing.T) {
	b, _ := newTestBody()
	b.Gravity = 0
	b.SetFriction(5, 0) // friction far larger than speed
	b.Vel.X = 1

	b.Update(1)

	if b.Vel.X != 0 {
		t.Errorf("Vel.X = %v, overshooting friction must stop at zero", b.Vel.X)
	}
}

func TestFrictionNegativeVelocity(t *testing.T) {
	b, _ := newTestBody()
	b.Gravity = 0
	b.SetFriction(0.5, 0)
	b.Vel.X = -2

	b.Update(1)

	if b.Vel.X != -1.5 {
		t.Errorf("Vel.X = %v, want -1.5", b.Vel.X)
	}
}

func TestRespondToCollisionLanding(t *testing.T) {
	b, e := newTestBody(geom.NewRect(0, 0, 2, 2))
	e.pos = geom.Vec2{X: 0, Y: 9}
	b.Vel = geom.Vec2{X: 0, Y: 3}
	b.Falling = true

	// Landed one unit deep into the floor
	b.RespondToCollision(&Response{A: b, OverlapV: geom.Vec2{Y: 1}})

	if e.pos.Y != 8 {
		t.Errorf("ancestor Y = %v, want 8", e.pos.Y)
	}
	// round(0.5 + 3 - 1) = 2
	if b.Vel.Y != 2 {
		t.Errorf("Vel.Y = %v, want 2", b.Vel.Y)
	}
	if !b.Falling || b.Jumping {
		t.Errorf("flags after landing: falling=%v jumping=%v", b.Falling, b.Jumping)
	}
}

func TestRespondToCollisionBounce(t *testing.T) {
	b, _ := newTestBody(geom.NewRect(0, 0, 2, 2))
	b.Bounce = 1
	b.Vel = geom.Vec2{Y: 3}

	b.RespondToCollision(&Response{A: b, OverlapV: geom.Vec2{Y: 1}})

	if b.Vel.Y != -2 {
		t.Errorf("Vel.Y = %v, want -2 after full bounce", b.Vel.Y)
	}
}

func TestRespondToCollisionCeiling(t *testing.T) {
	b, _ := newTestBody(geom.NewRect(0, 0, 2, 2))
	b.Vel = geom.Vec2{Y: -3}

	b.RespondToCollision(&Response{A: b, OverlapV: geom.Vec2{Y: -1}})

	if b.Falling {
		t.Error("ceiling hit should not set falling")
	}
	if !b.Jumping {
		t.Error("ceiling hit should set jumping")
	}
}

func TestRespondToCollisionInvertedGravityLanding(t *testing.T) {
	b, e := newTestBody(geom.NewRect(0, 0, 2, 2))
	b.Gravity = -1
	e.pos = geom.Vec2{X: 0, Y: 3}
	b.Vel = geom.Vec2{Y: -3}

	// Rising body lands on its ceiling-floor, pushed back down one unit
	b.RespondToCollision(&Response{A: b, OverlapV: geom.Vec2{Y: -1}})

	if e.pos.Y != 4 {
		t.Errorf("ancestor Y = %v, want 4", e.pos.Y)
	}
	if !b.Falling {
		t.Error("landing along inverted gravity should set falling")
	}
	if b.Jumping {
		t.Error("landing along inverted gravity should not set jumping")
	}
}

func TestRespondToCollisionInvertedGravityCeiling(t *testing.T) {
	b, _ := newTestBody(geom.NewRect(0, 0, 2, 2))
	b.Gravity = -1
	b.Vel = geom.Vec2{Y: 3}

	// Moving against inverted gravity into the downward ceiling
	b.RespondToCollision(&Response{A: b, OverlapV: geom.Vec2{Y: 1}})

	if b.Falling {
		t.Error("ceiling hit under inverted gravity should not set falling")
	}
	if !b.Jumping {
		t.Error("ceiling hit under inverted gravity should set jumping")
	}
}

func TestRespondToCollisionHorizontalKeepsFlags(t *testing.T) {
	b, e := newTestBody(geom.NewRect(0, 0, 2, 2))
	e.pos = geom.Vec2{X: 5}
	b.Vel = geom.Vec2{X: 2}
	b.Falling = true
	b.Jumping = false

	b.RespondToCollision(&Response{A: b, OverlapV: geom.Vec2{X: 1}})

	if e.pos.X != 4 {
		t.Errorf("ancestor X = %v, want 4", e.pos.X)
	}
	if !b.Falling || b.Jumping {
		t.Error("horizontal-only overlap must leave falling/jumping unchanged")
	}
}

func TestRespondToCollisionNoNegativeZero(t *testing.T) {
	b, _ := newTestBody(geom.NewRect(0, 0, 2, 2))
	b.Vel = geom.Vec2{Y: 0.2}

	b.RespondToCollision(&Response{A: b, OverlapV: geom.Vec2{Y: 0.4}})

	// round(0.5 + 0.2 - 0.4) truncates to 0, never -0
	if b.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, want 0", b.Vel.Y)
	}
}

func TestDestroy(t *testing.T) {
	b, _ := newTestBody(geom.NewRect(0, 0, 1, 1))
	b.OnBodyUpdate = func(*Body) {}

	b.Destroy()

	if b.ShapeCount() != 0 {
		t.Error("Destroy should clear shapes")
	}
	if b.Ancestor() != nil {
		t.Error("Destroy should sever the ancestor reference")
	}
	if b.OnBodyUpdate != nil {
		t.Error("Destroy should clear the update hook")
	}
}
