package processor

import (
	"math"
	"testing"

	"github.com/woozymasta/dxf2geojson/internal/dxf"
	"github.com/woozymasta/dxf2geojson/internal/geo"
)

func vtx(x, y float64) dxf.Vertex { return dxf.Vertex{X: x, Y: y} }

func vtxZ(x, y, z float64) dxf.Vertex { return dxf.Vertex{X: x, Y: y, Z: z, HasZ: true} }

func TestNormalizeClosedPolygon(t *testing.T) {
	g, stats, err := normalizePolyline(
		[]dxf.Vertex{vtx(0, 0), vtx(10, 0), vtx(10, 10), vtx(0, 10)}, 1, true)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	pg, ok := g.(geo.Polygon)
	if !ok {
		t.Fatalf("got %T, want Polygon", g)
	}
	ring := pg[0]
	if len(ring) != 5 {
		t.Fatalf("ring length = %d, want distinct count + closing repeat = 5", len(ring))
	}
	if ring[0] != ring[4] {
		t.Error("ring is not closed with an exact repeat")
	}
	if stats.Min != 1 || stats.Max != 1 || stats.Mean != 1 {
		t.Errorf("z stats = %+v, want all 1 from base elevation", stats)
	}
}

func TestNormalizeDeduplicates(t *testing.T) {
	g, _, err := normalizePolyline([]dxf.Vertex{
		vtx(0, 0),
		vtx(0, 5e-9), // within tolerance of the previous vertex
		vtx(10, 0),
		vtx(10, 10),
	}, 0, false)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	l, ok := g.(geo.LineString)
	if !ok {
		t.Fatalf("got %T, want LineString", g)
	}
	if len(l) != 3 {
		t.Errorf("vertex count = %d, want 3 after deduplication", len(l))
	}
}

func TestNormalizeDegradesToLine(t *testing.T) {
	// Closed flag set, but deduplication leaves only two distinct vertices.
	g, _, err := normalizePolyline([]dxf.Vertex{
		vtx(0, 0), vtx(10, 0), vtx(10, 1e-9),
	}, 0, true)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if _, ok := g.(geo.LineString); !ok {
		t.Errorf("got %T, want LineString by the degrade policy", g)
	}
}

func TestNormalizeDegenerateClosure(t *testing.T) {
	// No closed flag, but first and last coincide: still a ring.
	g, _, err := normalizePolyline([]dxf.Vertex{
		vtx(0, 0), vtx(10, 0), vtx(10, 10), vtx(0, 10), vtx(0, 1e-9),
	}, 0, false)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	pg, ok := g.(geo.Polygon)
	if !ok {
		t.Fatalf("got %T, want Polygon", g)
	}
	ring := pg[0]
	if ring[0] != ring[len(ring)-1] {
		t.Error("closing vertex was not snapped onto the first vertex")
	}
}

func TestNormalizeZPriority(t *testing.T) {
	g, stats, err := normalizePolyline([]dxf.Vertex{
		vtxZ(0, 0, 7), // explicit vertex z wins
		vtx(10, 0),    // falls back to the base elevation
		vtxZ(10, 10, 1),
	}, 3, false)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	l := g.(geo.LineString)
	if l[0].Z != 7 || l[1].Z != 3 || l[2].Z != 1 {
		t.Errorf("resolved z = %g, %g, %g, want 7, 3, 1", l[0].Z, l[1].Z, l[2].Z)
	}
	if stats.Min != 1 || stats.Max != 7 {
		t.Errorf("z range = %g..%g, want 1..7", stats.Min, stats.Max)
	}
	if math.Abs(stats.Mean-11.0/3) > 1e-12 {
		t.Errorf("z mean = %g, want %g", stats.Mean, 11.0/3)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if _, _, err := normalizePolyline(nil, 0, false); err == nil {
		t.Error("expected error for empty vertex sequence")
	}
}

func TestNormalizeSingleVertex(t *testing.T) {
	g, _, err := normalizePolyline([]dxf.Vertex{vtx(1, 2)}, 0, true)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	l, ok := g.(geo.LineString)
	if !ok || len(l) != 1 {
		t.Errorf("got %T len %d; a lone vertex stays a degenerate line for the caller to validate", g, len(l))
	}
}
