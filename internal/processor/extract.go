package processor

import (
	"fmt"

	"github.com/woozymasta/dxf2geojson/internal/dxf"
	"github.com/woozymasta/dxf2geojson/internal/geo"
)

// Extract converts one entity into a feature.
//
// The returned feature is nil without error for entity kinds the converter
// does not support; a non-nil error means this entity is malformed and should
// be skipped, never that the file is bad.
func Extract(e dxf.Entity) (*geo.Feature, error) {
	props := map[string]interface{}{
		"layer":   e.Layer,
		"color":   e.Color,
		"dxftype": e.Kind.String(),
	}

	switch e.Kind {
	case dxf.KindPoint:
		return &geo.Feature{
			Geometry:   geo.Point{X: e.X, Y: e.Y, Z: e.Z},
			Properties: props,
		}, nil

	case dxf.KindLine:
		return &geo.Feature{
			Geometry: geo.LineString{
				{X: e.StartX, Y: e.StartY, Z: e.StartZ},
				{X: e.EndX, Y: e.EndY, Z: e.EndZ},
			},
			Properties: props,
		}, nil

	case dxf.KindLWPolyline, dxf.KindPolyline:
		g, stats, err := normalizePolyline(e.Vertices, e.Elevation, e.Closed)
		if err != nil {
			return nil, fmt.Errorf("%s on layer %q: %w", e.Kind, e.Layer, err)
		}
		props["elevation"] = e.Elevation
		props["z_min"] = stats.Min
		props["z_max"] = stats.Max
		props["z_mean"] = stats.Mean
		return &geo.Feature{Geometry: g, Properties: props}, nil

	case dxf.KindCircle:
		if e.Radius <= 0 {
			return nil, fmt.Errorf("%s on layer %q: radius %g", e.Kind, e.Layer, e.Radius)
		}
		props["radius"] = e.Radius
		return &geo.Feature{Geometry: tessellateCircle(e), Properties: props}, nil

	case dxf.KindArc:
		if e.Radius <= 0 {
			return nil, fmt.Errorf("%s on layer %q: radius %g", e.Kind, e.Layer, e.Radius)
		}
		props["radius"] = e.Radius
		props["start_angle"] = e.StartAngle
		props["end_angle"] = e.EndAngle
		return &geo.Feature{Geometry: tessellateArc(e), Properties: props}, nil

	default:
		return nil, nil
	}
}
