package geom

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: -1, Y: 2}

	if got := a.Add(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot: got %v, want 5", got)
	}
	if got := a.Length(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Length: got %v, want 5", got)
	}
	if !(Vec2{}).IsZero() {
		t.Error("zero vector should report IsZero")
	}
	if a.IsZero() {
		t.Error("non-zero vector should not report IsZero")
	}
}

func TestClampAndSign(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp above: got %v", got)
	}
	if got := Clamp(-2, 0, 3); got != 0 {
		t.Errorf("Clamp below: got %v", got)
	}
	if got := Clamp(1.5, 0, 3); got != 1.5 {
		t.Errorf("Clamp inside: got %v", got)
	}

	if Sign(-0.3) != -1 || Sign(2) != 1 || Sign(0) != 0 {
		t.Error("Sign mapping wrong")
	}
}

func TestRectEdgesAndContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("edges: right=%v bottom=%v", r.Right(), r.Bottom())
	}
	if c := r.Center(); c != (Vec2{X: 4, Y: 5.5}) {
		t.Errorf("Center: got %+v", c)
	}
	if !r.Contains(2, 3) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(6, 3) {
		t.Error("right edge is exclusive")
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 4, 4), NewRect(2, 2, 4, 4), true},
		{"touching edges", NewRect(0, 0, 4, 4), NewRect(4, 0, 4, 4), false},
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(10, 10, 2, 2), false},
		{"contained", NewRect(0, 0, 10, 10), NewRect(3, 3, 2, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	b := NewRect(5, 5, 3, 3)

	got := a.Union(b)
	want := NewRect(0, 0, 8, 8)
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	// Union is commutative
	if b.Union(a) != want {
		t.Error("Union should not depend on argument order")
	}
}

func TestRectOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Vec2
	}{
		{
			name: "landing from above",
			a:    NewRect(0, 8, 2, 3), // bottom edge at 11
			b:    NewRect(-5, 10, 20, 5),
			want: Vec2{Y: 1},
		},
		{
			name: "hitting from below",
			a:    NewRect(0, 4, 2, 2), // top edge at 4
			b:    NewRect(-5, 0, 20, 5),
			want: Vec2{Y: -1},
		},
		{
			name: "pushing into right wall",
			a:    NewRect(9, 0, 2, 2),
			b:    NewRect(10, -5, 5, 20),
			want: Vec2{X: 1},
		},
		{
			name: "no intersection",
			a:    NewRect(0, 0, 2, 2),
			b:    NewRect(10, 10, 2, 2),
			want: Vec2{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Overlap(tt.b)
			if got != tt.want {
				t.Errorf("Overlap = %+v, want %+v", got, tt.want)
			}

			// Subtracting the overlap must separate the rectangles
			if tt.want != (Vec2{}) {
				moved := tt.a
				moved.X -= got.X
				moved.Y -= got.Y
				if moved.Intersects(tt.b) {
					t.Error("subtracting the overlap should separate the rectangles")
				}
			}
		})
	}
}

func TestRectToPolygon(t *testing.T) {
	p := NewRect(1, 2, 3, 4).ToPolygon()

	if len(p.Points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(p.Points))
	}
	if b := p.Bounds(); b != NewRect(1, 2, 3, 4) {
		t.Errorf("polygon bounds = %+v", b)
	}
}

func TestShapeBounds(t *testing.T) {
	poly := NewPolygon(
		Vec2{X: 1, Y: 1},
		Vec2{X: 5, Y: 2},
		Vec2{X: 3, Y: 7},
	)
	if b := poly.Bounds(); b != NewRect(1, 1, 4, 6) {
		t.Errorf("polygon bounds = %+v", b)
	}

	ell := NewEllipse(10, 10, 3, 2)
	if b := ell.Bounds(); b != NewRect(7, 8, 6, 4) {
		t.Errorf("ellipse bounds = %+v", b)
	}
}

func TestShapeClone(t *testing.T) {
	poly := NewPolygon(Vec2{X: 1, Y: 1}, Vec2{X: 2, Y: 1}, Vec2{X: 2, Y: 2})
	clone, ok := poly.Clone().(*Polygon)
	if !ok {
		t.Fatal("polygon clone should be a polygon")
	}
	clone.Points[0].X = 99
	if poly.Points[0].X == 99 {
		t.Error("clone should not share point storage")
	}
}
