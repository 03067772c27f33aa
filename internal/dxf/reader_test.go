package dxf

import (
	"strings"
	"testing"
)

// sample is a minimal drawing with a header section and one entity of every
// supported kind, plus a TEXT entity that must be skipped.
const sample = `0
SECTION
2
HEADER
9
$ACADVER
1
AC1027
0
ENDSEC
0
SECTION
2
ENTITIES
0
POINT
8
TOPO
62
3
10
100.5
20
200.25
30
5.75
0
LINE
8
GRID
10
0
20
0
30
1
11
10
21
5
31
2
0
LWPOLYLINE
8
WALL
90
4
70
1
38
3.5
10
0
20
0
10
10
20
0
10
10
20
10
10
0
20
10
0
TEXT
8
NOTES
10
1
20
2
1
ignored
0
POLYLINE
8
ROAD
70
0
0
VERTEX
8
ROAD
10
0
20
0
30
1
0
VERTEX
8
ROAD
10
5
20
5
30
2
0
SEQEND
8
ROAD
0
CIRCLE
8
PIPE
10
3
20
4
30
9
40
2.5
0
ARC
8
PIPE
10
0
20
0
30
0
40
5
50
350
51
10
0
ENDSEC
0
EOF
`

func TestParseSample(t *testing.T) {
	entities, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entities) != 6 {
		t.Fatalf("entity count = %d, want 6", len(entities))
	}

	pt := entities[0]
	if pt.Kind != KindPoint || pt.Layer != "TOPO" || pt.Color != 3 {
		t.Errorf("point header = %v %q color %d", pt.Kind, pt.Layer, pt.Color)
	}
	if pt.X != 100.5 || pt.Y != 200.25 || pt.Z != 5.75 {
		t.Errorf("point location = (%g, %g, %g)", pt.X, pt.Y, pt.Z)
	}

	ln := entities[1]
	if ln.Kind != KindLine {
		t.Fatalf("entity 1 kind = %v, want LINE", ln.Kind)
	}
	if ln.StartX != 0 || ln.StartY != 0 || ln.StartZ != 1 {
		t.Errorf("line start = (%g, %g, %g)", ln.StartX, ln.StartY, ln.StartZ)
	}
	if ln.EndX != 10 || ln.EndY != 5 || ln.EndZ != 2 {
		t.Errorf("line end = (%g, %g, %g)", ln.EndX, ln.EndY, ln.EndZ)
	}
	if ln.Color != 256 {
		t.Errorf("line color = %d, want BYLAYER default 256", ln.Color)
	}

	lw := entities[2]
	if lw.Kind != KindLWPolyline || lw.Layer != "WALL" {
		t.Fatalf("entity 2 = %v %q, want LWPOLYLINE on WALL", lw.Kind, lw.Layer)
	}
	if !lw.Closed {
		t.Error("lwpolyline closed flag not set")
	}
	if lw.Elevation != 3.5 {
		t.Errorf("lwpolyline elevation = %g, want 3.5", lw.Elevation)
	}
	if len(lw.Vertices) != 4 {
		t.Fatalf("lwpolyline vertex count = %d, want 4", len(lw.Vertices))
	}
	for i, v := range lw.Vertices {
		if v.HasZ {
			t.Errorf("lwpolyline vertex %d claims an explicit z", i)
		}
	}
	if lw.Vertices[2].X != 10 || lw.Vertices[2].Y != 10 {
		t.Errorf("lwpolyline vertex 2 = (%g, %g)", lw.Vertices[2].X, lw.Vertices[2].Y)
	}

	pl := entities[3]
	if pl.Kind != KindPolyline || pl.Layer != "ROAD" {
		t.Fatalf("entity 3 = %v %q, want POLYLINE on ROAD", pl.Kind, pl.Layer)
	}
	if pl.Closed {
		t.Error("polyline closed flag should be unset")
	}
	if len(pl.Vertices) != 2 {
		t.Fatalf("polyline vertex count = %d, want 2", len(pl.Vertices))
	}
	if v := pl.Vertices[1]; v.X != 5 || v.Y != 5 || v.Z != 2 || !v.HasZ {
		t.Errorf("polyline vertex 1 = %+v", v)
	}

	ci := entities[4]
	if ci.Kind != KindCircle || ci.X != 3 || ci.Y != 4 || ci.Z != 9 || ci.Radius != 2.5 {
		t.Errorf("circle = %+v", ci)
	}

	arc := entities[5]
	if arc.Kind != KindArc || arc.Radius != 5 {
		t.Fatalf("entity 5 = %v r=%g, want ARC r=5", arc.Kind, arc.Radius)
	}
	if arc.StartAngle != 350 || arc.EndAngle != 10 {
		t.Errorf("arc angles = %g..%g, want 350..10", arc.StartAngle, arc.EndAngle)
	}
}

func TestParseNoEntitiesSection(t *testing.T) {
	doc := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n0\nEOF\n"
	if _, err := Parse(strings.NewReader(doc)); err == nil {
		t.Error("expected error for drawing without ENTITIES section")
	}
}

func TestParseBadNumericValue(t *testing.T) {
	doc := "0\nSECTION\n2\nENTITIES\n0\nPOINT\n10\nnot-a-number\n0\nENDSEC\n0\nEOF\n"
	if _, err := Parse(strings.NewReader(doc)); err == nil {
		t.Error("expected error for unparseable coordinate")
	}
}

func TestParseEmptyEntitiesSection(t *testing.T) {
	doc := "0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF\n"
	entities, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entities) != 0 {
		t.Errorf("entity count = %d, want 0", len(entities))
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("no-such-file.dxf"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestKindString(t *testing.T) {
	if got := KindLWPolyline.String(); got != "LWPOLYLINE" {
		t.Errorf("KindLWPolyline.String() = %q", got)
	}
	if got := Kind(42).String(); got != "UNKNOWN" {
		t.Errorf("out-of-range kind String() = %q", got)
	}
}
