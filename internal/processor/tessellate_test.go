package processor

import (
	"math"
	"testing"

	"github.com/woozymasta/dxf2geojson/internal/dxf"
)

func TestTessellateCircle(t *testing.T) {
	e := dxf.Entity{Kind: dxf.KindCircle, X: 2, Y: -3, Z: 7, Radius: 5}
	pg := tessellateCircle(e)

	if len(pg) != 1 {
		t.Fatalf("ring count = %d, want 1", len(pg))
	}
	ring := pg[0]
	if len(ring) != 33 {
		t.Fatalf("vertex count = %d, want 33", len(ring))
	}
	if ring[0] != ring[32] {
		t.Error("first and last vertices differ, ring not explicitly closed")
	}

	for i, p := range ring {
		if p.Z != 7 {
			t.Fatalf("vertex %d z = %g, want center z 7", i, p.Z)
		}
		d := math.Hypot(p.X-2, p.Y+3)
		if math.Abs(d-5) > 1e-9 {
			t.Fatalf("vertex %d is %g from center, want radius 5", i, d)
		}
	}

	if err := pg.Validate(); err != nil {
		t.Errorf("tessellated circle invalid: %v", err)
	}
}

func TestTessellateArc(t *testing.T) {
	e := dxf.Entity{Kind: dxf.KindArc, Radius: 5, StartAngle: 30, EndAngle: 120}
	line := tessellateArc(e)

	if len(line) != 17 {
		t.Fatalf("vertex count = %d, want 17", len(line))
	}
	if line[0] == line[16] {
		t.Error("arc should not be closed")
	}

	// Angles must increase monotonically from start to end.
	prev := math.Atan2(line[0].Y, line[0].X)
	for i := 1; i < len(line); i++ {
		a := math.Atan2(line[i].Y, line[i].X)
		if a < prev {
			t.Fatalf("angle decreased at vertex %d", i)
		}
		prev = a
	}

	start := math.Atan2(line[0].Y, line[0].X) * 180 / math.Pi
	end := math.Atan2(line[16].Y, line[16].X) * 180 / math.Pi
	if math.Abs(start-30) > 1e-9 || math.Abs(end-120) > 1e-9 {
		t.Errorf("arc sweeps %.6f..%.6f degrees, want 30..120", start, end)
	}
}

func TestTessellateArcWraparound(t *testing.T) {
	// 350 to 10 degrees must sweep the short way through 0, not backwards.
	e := dxf.Entity{Kind: dxf.KindArc, Radius: 5, StartAngle: 350, EndAngle: 10}
	line := tessellateArc(e)

	if len(line) != 17 {
		t.Fatalf("vertex count = %d, want 17", len(line))
	}

	// Midpoint of the sweep sits at 0 degrees: (radius, 0).
	mid := line[8]
	if math.Abs(mid.X-5) > 1e-9 || math.Abs(mid.Y) > 1e-9 {
		t.Errorf("sweep midpoint = (%g, %g), want (5, 0) on the 0-degree axis", mid.X, mid.Y)
	}

	// Total sweep is 20 degrees, not 340 the other way.
	for i := range line {
		d := math.Hypot(line[i].X-5, line[i].Y)
		if d > 5*20*math.Pi/180 { // chord bound for a 20-degree arc
			t.Fatalf("vertex %d strayed outside the short sweep", i)
		}
	}
}
