package geom

// Shape is the capability set a body requires from its collision shapes:
// an axis-aligned bounding rectangle and value-semantics cloning.
type Shape interface {
	Bounds() Rect
	Clone() Shape
}

// Polygon is a collision shape defined by an ordered list of points.
type Polygon struct {
	Points []Vec2
}

// NewPolygon creates a polygon from the given points.
func NewPolygon(points ...Vec2) *Polygon {
	return &Polygon{Points: points}
}

// Bounds returns the axis-aligned bounding rectangle of the polygon.
// An empty polygon has zero bounds.
func (p *Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Clone returns a deep copy of the polygon.
func (p *Polygon) Clone() Shape {
	points := make([]Vec2, len(p.Points))
	copy(points, p.Points)
	return &Polygon{Points: points}
}

// Ellipse is a collision shape defined by a center point and two radii.
// A circle is an ellipse with equal radii.
type Ellipse struct {
	Pos     Vec2 // center
	RadiusX float64
	RadiusY float64
}

// NewEllipse creates an ellipse centered at (x, y).
func NewEllipse(x, y, rx, ry float64) *Ellipse {
	return &Ellipse{Pos: Vec2{X: x, Y: y}, RadiusX: rx, RadiusY: ry}
}

// Bounds returns the axis-aligned bounding rectangle of the ellipse.
func (e *Ellipse) Bounds() Rect {
	return Rect{
		X: e.Pos.X - e.RadiusX,
		Y: e.Pos.Y - e.RadiusY,
		W: e.RadiusX * 2,
		H: e.RadiusY * 2,
	}
}

// Clone returns a copy of the ellipse.
func (e *Ellipse) Clone() Shape {
	c := *e
	return &c
}
