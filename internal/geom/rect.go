package geom

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
// It doubles as a collision shape: a body converts it to an equivalent
// polygon on insertion, but callers can use it directly for bounds math.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether this rectangle overlaps another.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := r.X
	if o.X < x {
		x = o.X
	}
	y := r.Y
	if o.Y < y {
		y = o.Y
	}
	right := r.Right()
	if o.Right() > right {
		right = o.Right()
	}
	bottom := r.Bottom()
	if o.Bottom() > bottom {
		bottom = o.Bottom()
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// Overlap returns the minimum translation vector that separates r from o,
// or the zero vector if the rectangles do not intersect. The vector points
// from o into r along the axis of least penetration.
func (r Rect) Overlap(o Rect) Vec2 {
	if !r.Intersects(o) {
		return Vec2{}
	}

	left := r.Right() - o.X   // push r left
	right := o.Right() - r.X  // push r right
	up := r.Bottom() - o.Y    // push r up
	down := o.Bottom() - r.Y  // push r down

	dx := left
	if right < left {
		dx = -right
	}
	dy := up
	if down < up {
		dy = -down
	}

	if abs(dx) < abs(dy) {
		return Vec2{X: dx}
	}
	return Vec2{Y: dy}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Bounds implements the Shape interface.
func (r Rect) Bounds() Rect {
	return r
}

// Clone implements the Shape interface.
func (r Rect) Clone() Shape {
	return r
}

// ToPolygon converts the rectangle to an equivalent 4-point polygon.
func (r Rect) ToPolygon() *Polygon {
	return NewPolygon(
		Vec2{X: r.X, Y: r.Y},
		Vec2{X: r.Right(), Y: r.Y},
		Vec2{X: r.Right(), Y: r.Bottom()},
		Vec2{X: r.X, Y: r.Bottom()},
	)
}
