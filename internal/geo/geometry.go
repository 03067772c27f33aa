// Package geo holds the 3D geometry model and its planar reprojection.
//
// Geometries carry full (x, y, z) coordinates. Reprojection applies a 2D
// transform to x and y only; z passes through untouched, and vertex counts and
// ring structure are always preserved.
package geo

import (
	"fmt"

	"github.com/ctessum/geom/proj"
)

// Geom is a geometry that can be reprojected with a planar transform.
type Geom interface {
	Transform(proj.Transformer) (Geom, error)
	Validate() error
}

// Point is a single 3D position.
type Point struct {
	X, Y, Z float64
}

// LineString is an ordered open sequence of positions.
type LineString []Point

// Polygon is a list of rings. Ring 0 is the exterior; each ring repeats its
// first vertex at the end.
type Polygon [][]Point

// Transform shifts the planar coordinates of p according to t.
func (p Point) Transform(t proj.Transformer) (Geom, error) {
	x, y, err := t(p.X, p.Y)
	if err != nil {
		return nil, err
	}
	return Point{X: x, Y: y, Z: p.Z}, nil
}

// Transform shifts the planar coordinates of l according to t.
func (l LineString) Transform(t proj.Transformer) (Geom, error) {
	l2 := make(LineString, len(l))
	for i, p := range l {
		x, y, err := t(p.X, p.Y)
		if err != nil {
			return nil, err
		}
		l2[i] = Point{X: x, Y: y, Z: p.Z}
	}
	return l2, nil
}

// Transform shifts the planar coordinates of pg according to t.
func (pg Polygon) Transform(t proj.Transformer) (Geom, error) {
	pg2 := make(Polygon, len(pg))
	for i, ring := range pg {
		ring2 := make([]Point, len(ring))
		for j, p := range ring {
			x, y, err := t(p.X, p.Y)
			if err != nil {
				return nil, err
			}
			ring2[j] = Point{X: x, Y: y, Z: p.Z}
		}
		pg2[i] = ring2
	}
	return pg2, nil
}

// Validate reports nothing for a point; a point is always usable.
func (p Point) Validate() error { return nil }

// Validate checks the line has at least two vertices.
func (l LineString) Validate() error {
	if len(l) < 2 {
		return fmt.Errorf("geo: linestring has %d vertices, need at least 2", len(l))
	}
	return nil
}

// Validate checks every ring is closed and has at least 4 vertices
// including the closing repeat.
func (pg Polygon) Validate() error {
	if len(pg) == 0 {
		return fmt.Errorf("geo: polygon has no rings")
	}
	for i, ring := range pg {
		if len(ring) < 4 {
			return fmt.Errorf("geo: polygon ring %d has %d vertices, need at least 4", i, len(ring))
		}
		if ring[0] != ring[len(ring)-1] {
			return fmt.Errorf("geo: polygon ring %d is not closed", i)
		}
	}
	return nil
}

// Feature couples one geometry with its flat property map.
type Feature struct {
	Geometry   Geom
	Properties map[string]interface{}
}
