package assets

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/rockflight/internal/core"
	"github.com/vovakirdan/rockflight/internal/physics"
)

// Shapes maps a sprite key to its convex collider outlines in sprite-local
// pixels.
type Shapes map[string][]physics.Polygon

type shapeVertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type shapeFixture struct {
	Vertices [][]shapeVertex `json:"vertices"`
}

type shapeBody struct {
	Fixtures []shapeFixture `json:"fixtures"`
}

// ParseShapes decodes a collider document laid out like PhysicsEditor's
// output: an object keyed by sprite, each holding fixtures whose vertex
// lists are convex parts.
func ParseShapes(data []byte) (Shapes, error) {
	var doc map[string]shapeBody
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse shapes: %w", err)
	}

	shapes := make(Shapes, len(doc))
	for key, body := range doc {
		var parts []physics.Polygon
		for _, fixture := range body.Fixtures {
			for _, verts := range fixture.Vertices {
				if len(verts) < 3 {
					return nil, fmt.Errorf("shape %q: part with %d vertices", key, len(verts))
				}
				poly := make(physics.Polygon, len(verts))
				for i, v := range verts {
					poly[i] = core.Vec2{X: v.X, Y: v.Y}
				}
				parts = append(parts, poly)
			}
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("shape %q has no parts", key)
		}
		shapes[key] = parts
	}
	return shapes, nil
}

// Parts returns the outlines for key.
func (s Shapes) Parts(key string) ([]physics.Polygon, error) {
	parts, ok := s[key]
	if !ok {
		return nil, fmt.Errorf("no shape for %q", key)
	}
	return parts, nil
}

// Require checks that every key has a shape.
func (s Shapes) Require(keys ...string) error {
	for _, key := range keys {
		if _, ok := s[key]; !ok {
			return fmt.Errorf("no shape for %q", key)
		}
	}
	return nil
}
