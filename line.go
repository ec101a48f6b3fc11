package bezier

// Line is a line segment between two curve samples.
type Line struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval evaluates the segment at parameter t, interpolating linearly between
// its endpoints.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Midpoint returns the point halfway along the segment.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// Start returns the segment's start point.
func (l Line) Start() Point { return l.P0 }

// End returns the segment's end point.
func (l Line) End() Point { return l.P1 }
