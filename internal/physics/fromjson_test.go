package physics

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-engine/internal/geom"
)

const flatDoc = `{
	"crate": [
		{"shape": [0, 0, 4, 0, 4, 4, 0, 4]},
		{"shape": [4, 0, 6, 0, 6, 2]}
	]
}`

const rigidDoc = `{
	"rigidBodies": [
		{
			"name": "ball",
			"origin": {"x": 0.5, "y": 0.5},
			"polygons": [
				[{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}]
			],
			"circles": [
				{"cx": 0.5, "cy": 0.25, "r": 0.25}
			]
		}
	]
}`

func TestAddShapesFromJSONFlat(t *testing.T) {
	b, _ := newTestBody()

	n, err := b.AddShapesFromJSON([]byte(flatDoc), "crate", 1)
	if err != nil {
		t.Fatalf("AddShapesFromJSON() failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("shape count = %d, want 2", n)
	}

	poly, ok := b.Shape(0).(*geom.Polygon)
	if !ok {
		t.Fatalf("shape 0 is %T, want polygon", b.Shape(0))
	}
	if len(poly.Points) != 4 {
		t.Errorf("shape 0 has %d points, want 4", len(poly.Points))
	}
	if b.Bounds != geom.NewRect(0, 0, 6, 4) {
		t.Errorf("Bounds = %+v", b.Bounds)
	}
}

func TestAddShapesFromJSONFlatScaled(t *testing.T) {
	b, _ := newTestBody()

	if _, err := b.AddShapesFromJSON([]byte(flatDoc), "crate", 2); err != nil {
		t.Fatalf("AddShapesFromJSON() failed: %v", err)
	}
	if b.Bounds != geom.NewRect(0, 0, 12, 8) {
		t.Errorf("scaled Bounds = %+v", b.Bounds)
	}
}

func TestAddShapesFromJSONRigidBody(t *testing.T) {
	b, _ := newTestBody()

	n, err := b.AddShapesFromJSON([]byte(rigidDoc), "ball", 10)
	if err != nil {
		t.Fatalf("AddShapesFromJSON() failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("shape count = %d, want 2", n)
	}

	// Polygon Y coordinates are flipped: y=0 -> 10, y=1 -> 0
	poly, ok := b.Shape(0).(*geom.Polygon)
	if !ok {
		t.Fatalf("shape 0 is %T, want polygon", b.Shape(0))
	}
	if poly.Points[0] != (geom.Vec2{X: 0, Y: 10}) {
		t.Errorf("point 0 = %+v, want {0 10}", poly.Points[0])
	}
	if poly.Points[2] != (geom.Vec2{X: 10, Y: 0}) {
		t.Errorf("point 2 = %+v, want {10 0}", poly.Points[2])
	}

	// Circle center is flipped too: cy=0.25 -> 7.5
	ell, ok := b.Shape(1).(*geom.Ellipse)
	if !ok {
		t.Fatalf("shape 1 is %T, want ellipse", b.Shape(1))
	}
	if ell.Pos != (geom.Vec2{X: 5, Y: 7.5}) {
		t.Errorf("circle center = %+v, want {5 7.5}", ell.Pos)
	}
	if ell.RadiusX != 2.5 || ell.RadiusY != 2.5 {
		t.Errorf("circle radii = %v/%v, want 2.5", ell.RadiusX, ell.RadiusY)
	}
}

func TestAddShapesFromJSONZeroScale(t *testing.T) {
	b, _ := newTestBody()

	// Zero and negative scale mean 1
	if _, err := b.AddShapesFromJSON([]byte(flatDoc), "crate", 0); err != nil {
		t.Fatalf("AddShapesFromJSON() failed: %v", err)
	}
	if b.Bounds != geom.NewRect(0, 0, 6, 4) {
		t.Errorf("Bounds = %+v", b.Bounds)
	}
}

func TestAddShapesFromJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		id      string
		wantErr string
	}{
		{
			name:    "missing identifier",
			doc:     flatDoc,
			id:      "barrel",
			wantErr: `"barrel" undefined`,
		},
		{
			name:    "missing rigid body name",
			doc:     rigidDoc,
			id:      "cube",
			wantErr: `"cube" not found in rigid body list`,
		},
		{
			name:    "odd coordinate count",
			doc:     `{"crate": [{"shape": [0, 0, 4]}]}`,
			id:      "crate",
			wantErr: "odd coordinate count",
		},
		{
			name:    "invalid document",
			doc:     `not json`,
			id:      "crate",
			wantErr: "invalid shape JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBody()
			_, err := b.AddShapesFromJSON([]byte(tt.doc), tt.id, 1)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
