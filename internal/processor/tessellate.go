package processor

import (
	"math"

	"github.com/woozymasta/dxf2geojson/internal/dxf"
	"github.com/woozymasta/dxf2geojson/internal/geo"
)

// Fixed angular resolutions. Determinism over fidelity: the segment counts do
// not adapt to radius or output scale.
const (
	circleSegments = 32
	arcSegments    = 16
)

// tessellateCircle approximates a full circle as a closed ring of
// circleSegments+1 vertices, the last an exact repeat of the first.
// Every vertex shares the center's Z.
func tessellateCircle(e dxf.Entity) geo.Polygon {
	ring := make([]geo.Point, circleSegments+1)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		ring[i] = geo.Point{
			X: e.X + e.Radius*math.Cos(a),
			Y: e.Y + e.Radius*math.Sin(a),
			Z: e.Z,
		}
	}
	ring[circleSegments] = ring[0]
	return geo.Polygon{ring}
}

// tessellateArc approximates a circular arc as an open line of
// arcSegments+1 vertices swept in the increasing-angle direction.
// End angles numerically below the start are unwrapped past 360 degrees,
// so an arc from 350 to 10 degrees passes through 0.
func tessellateArc(e dxf.Entity) geo.LineString {
	start := e.StartAngle * math.Pi / 180
	end := e.EndAngle * math.Pi / 180
	if end < start {
		end += 2 * math.Pi
	}

	line := make(geo.LineString, arcSegments+1)
	step := (end - start) / arcSegments
	for i := 0; i <= arcSegments; i++ {
		a := start + step*float64(i)
		line[i] = geo.Point{
			X: e.X + e.Radius*math.Cos(a),
			Y: e.Y + e.Radius*math.Sin(a),
			Z: e.Z,
		}
	}
	return line
}
