// Package physics implements the rigid body attached to scene entities:
// shape management, velocity/gravity/friction integration, and the
// positional collision response applied when two bodies overlap.
//
// This is not a full physics engine. There is no broad-phase partitioning
// and no polygon-polygon solver; the body integrates its own motion and
// resolves a single overlap vector reported by the collision check.
package physics

import "github.com/vovakirdan/tui-engine/internal/geom"

// DefaultGravity is the default vertical acceleration applied to every
// new body. Individual bodies override it through their Gravity field.
const DefaultGravity = 0.98

// CollisionType is a bitmask used to filter which bodies may collide.
// A body collides with another only if the other body's type intersects
// this body's collision mask.
type CollisionType uint32

// Built-in collision layers. Values at and above CollisionUser are free
// for game-defined layers.
const (
	CollisionNone        CollisionType = 0
	CollisionPlayer      CollisionType = 1 << 0
	CollisionNPC         CollisionType = 1 << 1
	CollisionEnemy       CollisionType = 1 << 2
	CollisionCollectable CollisionType = 1 << 3
	CollisionAction      CollisionType = 1 << 4
	CollisionProjectile  CollisionType = 1 << 5
	CollisionWorld       CollisionType = 1 << 6
	CollisionUser        CollisionType = 1 << 7
	CollisionAll         CollisionType = 0xFFFFFFFF
)

// Ancestor is the owning entity of a body. The body moves its ancestor
// when integrating velocity and when correcting collision overlap; it
// never outlives it.
type Ancestor interface {
	Position() geom.Vec2
	SetPosition(x, y float64)
}

// Response describes a detected penetration between two bodies.
// OverlapV is the minimum translation vector resolving the penetration,
// pointing from B into A: subtracting it from A's position separates them.
type Response struct {
	A, B     *Body
	OverlapV geom.Vec2
}
