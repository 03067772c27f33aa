package geo

// SignedArea returns twice the signed planar area of a ring using the
// shoelace sum. Positive means counterclockwise winding.
func SignedArea(ring []Point) float64 {
	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// reverse flips ring winding in place.
func reverse(ring []Point) {
	for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
		ring[i], ring[j] = ring[j], ring[i]
	}
}

// OrientExterior makes the exterior ring counterclockwise and any holes
// clockwise, the winding GeoJSON consumers expect.
func (pg Polygon) OrientExterior() {
	for i, ring := range pg {
		ccw := SignedArea(ring) > 0
		if i == 0 && !ccw {
			reverse(ring)
		} else if i > 0 && ccw {
			reverse(ring)
		}
	}
}
