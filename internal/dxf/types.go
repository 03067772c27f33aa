// Package dxf reads entity records from ASCII DXF drawings.
//
// Only the ENTITIES section is consumed, and only the entity kinds the
// converter understands are materialized; everything else is skipped at read
// time. The reader is deliberately small: group code / value pairs in, typed
// records out.
package dxf

// Kind tags the shape of an entity record.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindLWPolyline
	KindPolyline
	KindCircle
	KindArc
)

var kindNames = [...]string{"POINT", "LINE", "LWPOLYLINE", "POLYLINE", "CIRCLE", "ARC"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Vertex is one polyline vertex. HasZ reports whether the drawing carried an
// explicit Z for this vertex; LWPOLYLINE vertices never do (their group 42
// value is a bulge, not an elevation).
type Vertex struct {
	X, Y, Z float64
	Bulge   float64
	HasZ    bool
}

// Entity is one drawing entity with its kind-specific fields populated.
type Entity struct {
	Kind  Kind
	Layer string
	Color int

	// Point location or curve center.
	X, Y, Z float64

	// Line endpoints.
	StartX, StartY, StartZ float64
	EndX, EndY, EndZ       float64

	// Polyline data. Elevation is the per-entity base Z used for vertices
	// without their own.
	Vertices  []Vertex
	Elevation float64
	Closed    bool

	// Curve data. Angles are in degrees, counterclockwise from east.
	Radius     float64
	StartAngle float64
	EndAngle   float64
}
