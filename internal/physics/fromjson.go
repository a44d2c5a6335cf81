package physics

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/tui-engine/internal/geom"
)

// Physics Editor export schemas. The flat variant maps an identifier to a
// list of flattened coordinate pairs; the rigid-body variant carries named
// bodies with polygons, circles, and an origin point, authored with a
// bottom-left origin so every Y coordinate is flipped on import.

type flatShape struct {
	Shape []float64 `json:"shape"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonCircle struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	R  float64 `json:"r"`
}

type rigidBody struct {
	Name     string        `json:"name"`
	Origin   jsonPoint     `json:"origin"`
	Polygons [][]jsonPoint `json:"polygons"`
	Circles  []jsonCircle  `json:"circles"`
}

// AddShapesFromJSON imports collision shapes from a Physics Editor JSON
// document, accepting both the flat and the rigid-body schema. A scale of
// zero or below means 1. It returns the new shape count; bounds are
// recomputed once at the end. The error names the missing identifier when
// id is not found in either schema.
func (b *Body) AddShapesFromJSON(doc []byte, id string, scale float64) (int, error) {
	if scale <= 0 {
		scale = 1
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		return len(b.shapes), fmt.Errorf("physics: invalid shape JSON: %w", err)
	}

	if raw, ok := top[id]; ok {
		if err := b.addFlatShapes(raw, id, scale); err != nil {
			return len(b.shapes), err
		}
		b.UpdateBounds()
		return len(b.shapes), nil
	}

	if raw, ok := top["rigidBodies"]; ok {
		var bodies []rigidBody
		if err := json.Unmarshal(raw, &bodies); err != nil {
			return len(b.shapes), fmt.Errorf("physics: invalid rigid body JSON: %w", err)
		}
		for _, rb := range bodies {
			if rb.Name != id {
				continue
			}
			b.addRigidBody(rb, scale)
			b.UpdateBounds()
			return len(b.shapes), nil
		}
		return len(b.shapes), fmt.Errorf("physics: identifier %q not found in rigid body list", id)
	}

	return len(b.shapes), fmt.Errorf("physics: identifier %q undefined for JSON data", id)
}

// addFlatShapes imports the flat schema variant: an array of shapes, each
// a flattened list of x/y coordinate pairs.
func (b *Body) addFlatShapes(raw json.RawMessage, id string, scale float64) error {
	var shapes []flatShape
	if err := json.Unmarshal(raw, &shapes); err != nil {
		return fmt.Errorf("physics: invalid shape list for %q: %w", id, err)
	}
	for i, s := range shapes {
		if len(s.Shape)%2 != 0 {
			return fmt.Errorf("physics: odd coordinate count in shape %d for %q", i, id)
		}
		points := make([]geom.Vec2, 0, len(s.Shape)/2)
		for j := 0; j < len(s.Shape); j += 2 {
			points = append(points, geom.Vec2{
				X: s.Shape[j] * scale,
				Y: s.Shape[j+1] * scale,
			})
		}
		b.AddShape(geom.NewPolygon(points...), true)
	}
	return nil
}

// addRigidBody imports one named body of the rigid-body schema variant,
// flipping the Y axis (1 - y) to convert from the authoring tool's
// bottom-left origin to the engine's top-left origin.
func (b *Body) addRigidBody(rb rigidBody, scale float64) {
	for _, verts := range rb.Polygons {
		points := make([]geom.Vec2, 0, len(verts))
		for _, p := range verts {
			points = append(points, geom.Vec2{
				X: p.X * scale,
				Y: (1 - p.Y) * scale,
			})
		}
		b.AddShape(geom.NewPolygon(points...), true)
	}
	for _, c := range rb.Circles {
		b.AddShape(geom.NewEllipse(c.CX*scale, (1-c.CY)*scale, c.R*scale, c.R*scale), true)
	}
}
