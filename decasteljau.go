package bezier

// Eval evaluates the Bézier curve defined by pts at parameter t, using de
// Casteljau's construction generalized to any number of control points.
//
// The control points are copied into a scratch buffer which is then
// repeatedly collapsed: each adjacent pair is replaced by its interpolation
// at t until a single point remains. pts is never mutated, so repeated
// evaluation at different t values always starts from the same control
// points.
//
// A single control point defines a zero-degree curve and is returned
// unchanged for any t. Values of t outside [0, 1] extrapolate. Eval panics
// if pts is empty.
//
// Evaluation is O(n²) in the number of control points. Eval allocates a
// scratch buffer per call; use an [Evaluator] to amortize the allocation
// across per-frame sampling.
func Eval(pts []Point, t float64) Point {
	if len(pts) == 0 {
		panic("bezier: Eval of empty control point sequence")
	}
	buf := make([]Point, len(pts))
	return evalInto(buf, pts, t)
}

// An Evaluator evaluates Bézier curves while reusing a single scratch buffer
// across calls. The zero value is ready for use. An Evaluator must not be
// used concurrently.
type Evaluator struct {
	buf []Point
}

// Eval is like the package-level [Eval], reusing the evaluator's scratch
// buffer. The buffer grows to the largest control point count seen.
func (ev *Evaluator) Eval(pts []Point, t float64) Point {
	if len(pts) == 0 {
		panic("bezier: Eval of empty control point sequence")
	}
	if cap(ev.buf) < len(pts) {
		ev.buf = make([]Point, len(pts))
	}
	return evalInto(ev.buf[:len(pts)], pts, t)
}

func evalInto(buf, pts []Point, t float64) Point {
	copy(buf, pts)
	for n := len(buf); n > 1; n-- {
		for i := range n - 1 {
			buf[i] = buf[i].Lerp(buf[i+1], t)
		}
	}
	return buf[0]
}
