// Package processor turns drawing entities into reprojected GeoJSON features.
package processor

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
	"github.com/woozymasta/dxf2geojson/internal/dxf"
	"github.com/woozymasta/dxf2geojson/internal/geo"
)

// coordEps is the componentwise tolerance below which two consecutive
// vertices count as the same point. It removes numerical-noise duplicates,
// not a general simplification.
const coordEps = 1e-8

// zStats summarizes the elevation of a normalized vertex list.
type zStats struct {
	Min, Max, Mean float64
}

func near(a, b geo.Point) bool {
	return math.Abs(a.X-b.X) < coordEps &&
		math.Abs(a.Y-b.Y) < coordEps &&
		math.Abs(a.Z-b.Z) < coordEps
}

// normalizePolyline resolves per-vertex Z, drops consecutive duplicate
// vertices, resolves ring closure and classifies the result.
//
// Z is resolved top-down: the vertex's own Z when the drawing carried one,
// otherwise the entity's base elevation (which defaults to 0). A ring is
// closed either by the entity's closed flag (with at least 3 distinct
// vertices) or by an already coincident first/last pair. Closed rings with
// at least 4 vertices including the closing repeat become polygons;
// everything else degrades to a line string, never an error.
func normalizePolyline(vs []dxf.Vertex, elevation float64, closed bool) (geo.Geom, zStats, error) {
	pts := make([]geo.Point, 0, len(vs)+1)
	for _, v := range vs {
		z := elevation
		if v.HasZ {
			z = v.Z
		}
		p := geo.Point{X: v.X, Y: v.Y, Z: z}
		if len(pts) > 0 && near(pts[len(pts)-1], p) {
			continue
		}
		pts = append(pts, p)
	}

	if len(pts) == 0 {
		return nil, zStats{}, fmt.Errorf("no usable vertices")
	}

	ring := false
	if first := pts[0]; near(first, pts[len(pts)-1]) && len(pts) > 1 {
		if len(pts) >= 4 {
			// Snap the closing repeat exactly onto the first vertex.
			pts[len(pts)-1] = first
			ring = true
		}
	} else if closed && len(pts) >= 3 {
		pts = append(pts, first)
		ring = true
	}

	zs := make([]float64, len(pts))
	for i, p := range pts {
		zs[i] = p.Z
	}
	stats := zStats{
		Min:  floats.Min(zs),
		Max:  floats.Max(zs),
		Mean: floats.Sum(zs) / float64(len(zs)),
	}

	if ring && len(pts) >= 4 {
		return geo.Polygon{pts}, stats, nil
	}
	return geo.LineString(pts), stats, nil
}
