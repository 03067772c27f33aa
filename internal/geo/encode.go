package geo

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// NewFeatureCollection encodes features into a GeoJSON document annotated
// with the destination CRS. Coordinates are emitted as (x, y, z) triples.
// Features with degenerate geometries are rejected, not silently dropped;
// the caller decides whether that is fatal.
func NewFeatureCollection(features []Feature, crsName string) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	fc.CRS = map[string]interface{}{
		"type":       "name",
		"properties": map[string]interface{}{"name": crsName},
	}

	for i, f := range features {
		if err := f.Geometry.Validate(); err != nil {
			return nil, fmt.Errorf("geo: feature %d: %w", i, err)
		}

		var g *geojson.Geometry
		switch geom := f.Geometry.(type) {
		case Point:
			g = geojson.NewPointGeometry(triple(geom))
		case LineString:
			g = geojson.NewLineStringGeometry(triples(geom))
		case Polygon:
			geom.OrientExterior()
			rings := make([][][]float64, len(geom))
			for j, ring := range geom {
				rings[j] = triples(ring)
			}
			g = geojson.NewPolygonGeometry(rings)
		default:
			return nil, fmt.Errorf("geo: feature %d: unsupported geometry %T", i, f.Geometry)
		}

		feat := geojson.NewFeature(g)
		feat.Properties = f.Properties
		fc.AddFeature(feat)
	}

	return fc, nil
}

func triple(p Point) []float64 {
	return []float64{p.X, p.Y, p.Z}
}

func triples(points []Point) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = triple(p)
	}
	return out
}
