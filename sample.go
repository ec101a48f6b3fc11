package bezier

import "iter"

// sampleEpsilon absorbs the rounding error of computing t as k·step, so that
// steps like 0.1 still reach t = 1 even though 10 × 0.1 > 1 in floating
// point.
const sampleEpsilon = 1e-9

// Samples yields points on the Bézier curve defined by pts at
// t = step, 2·step, 3·step, … for as long as t ≤ 1.
//
// The first sample is at t = step, not t = 0, so the curve's exact start
// point is never yielded; with step = 0.25 the samples are at t = 0.25, 0.5,
// 0.75 and 1. The parameter is computed as k·step from an integer counter
// rather than by repeated addition, so it does not drift for small steps.
//
// Samples panics if pts is empty or step is not positive.
func Samples(pts []Point, step float64) iter.Seq[Point] {
	checkSampling(pts, step)
	return func(yield func(Point) bool) {
		var ev Evaluator
		for k := 1; float64(k)*step <= 1+sampleEpsilon; k++ {
			if !yield(ev.Eval(pts, float64(k)*step)) {
				return
			}
		}
	}
}

// Segments yields line segments joining successive curve samples,
// approximating the Bézier curve defined by pts as a polyline. The segment
// starts follow the same t = k·step sequence as [Samples]; each segment ends
// at the sample one step further, so the final segment may extrapolate past
// t = 1 by up to one step.
//
// Segments panics if pts is empty or step is not positive.
func Segments(pts []Point, step float64) iter.Seq[Line] {
	checkSampling(pts, step)
	return func(yield func(Line) bool) {
		var ev Evaluator
		for k := 1; float64(k)*step <= 1+sampleEpsilon; k++ {
			seg := Line{
				P0: ev.Eval(pts, float64(k)*step),
				P1: ev.Eval(pts, float64(k+1)*step),
			}
			if !yield(seg) {
				return
			}
		}
	}
}

func checkSampling(pts []Point, step float64) {
	if len(pts) == 0 {
		panic("bezier: sampling of empty control point sequence")
	}
	if step <= 0 {
		panic("bezier: sample step must be positive")
	}
}
