package bezier

import "fmt"

// DefaultCapacity is the control point capacity used by
// [NewControlPoints].
const DefaultCapacity = 256

// ControlPoints is a capacity-bounded, ordered sequence of control points.
// Points are appended in insertion order and may be repositioned in place,
// but never removed; insertion order defines both the Bézier construction
// order and the hit-testing priority.
type ControlPoints struct {
	pts []Point
	cap int
}

// NewControlPoints returns an empty set holding at most [DefaultCapacity]
// points.
func NewControlPoints() *ControlPoints {
	return NewControlPointsCap(DefaultCapacity)
}

// NewControlPointsCap returns an empty set holding at most capacity points.
// It panics if capacity is not positive.
func NewControlPointsCap(capacity int) *ControlPoints {
	if capacity <= 0 {
		panic(fmt.Sprintf("bezier: control point capacity must be positive, got %d", capacity))
	}
	return &ControlPoints{
		pts: make([]Point, 0, capacity),
		cap: capacity,
	}
}

// Len returns the number of points in the set.
func (cp *ControlPoints) Len() int {
	return len(cp.pts)
}

// Cap returns the maximum number of points the set can hold.
func (cp *ControlPoints) Cap() int {
	return cp.cap
}

// At returns the point at index i. It panics if i is out of range.
func (cp *ControlPoints) At(i int) Point {
	cp.check(i)
	return cp.pts[i]
}

// Points returns the points in insertion order. The slice aliases the set's
// storage and remains valid across [ControlPoints.Replace]; callers must not
// grow or reorder it.
func (cp *ControlPoints) Points() []Point {
	return cp.pts
}

// Add appends a point and returns its index. When the set is at capacity the
// point is rejected: Add returns (-1, false) and the set is unchanged.
func (cp *ControlPoints) Add(pt Point) (int, bool) {
	if len(cp.pts) >= cp.cap {
		return -1, false
	}
	cp.pts = append(cp.pts, pt)
	return len(cp.pts) - 1, true
}

// Replace overwrites the coordinates of the point at index i, keeping its
// position in the sequence. It panics if i is out of range.
func (cp *ControlPoints) Replace(i int, pt Point) {
	cp.check(i)
	cp.pts[i] = pt
}

// HitTest reports the first point, in insertion order, whose centered
// size×size axis-aligned square contains pos. The square's edges are
// inclusive. If no point's square contains pos, HitTest returns (-1, false).
func (cp *ControlPoints) HitTest(pos Point, size float64) (int, bool) {
	box := Sz(size, size)
	for i, pt := range cp.pts {
		if NewRectFromCenter(pt, box).Contains(pos) {
			return i, true
		}
	}
	return -1, false
}

func (cp *ControlPoints) check(i int) {
	if i < 0 || i >= len(cp.pts) {
		panic(fmt.Sprintf("bezier: control point index %d out of range [0, %d)", i, len(cp.pts)))
	}
}
