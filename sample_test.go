package bezier

import (
	"math"
	"slices"
	"testing"
)

func TestSamplesQuarterStep(t *testing.T) {
	got := slices.Collect(Samples(sCurve, 0.25))
	if len(got) != 4 {
		t.Fatalf("got %d samples, want 4", len(got))
	}
	// The first sample is at t = step, not t = 0.
	want := []Point{
		Eval(sCurve, 0.25),
		Eval(sCurve, 0.5),
		Eval(sCurve, 0.75),
		Eval(sCurve, 1.0),
	}
	diff(t, want, got)
}

func TestSamplesReachesOne(t *testing.T) {
	// 10 × 0.1 exceeds 1 in floating point; the t = 1 sample must not be
	// lost to rounding.
	pts := []Point{Pt(0, 0), Pt(10, 10)}
	got := slices.Collect(Samples(pts, 0.1))
	if len(got) != 10 {
		t.Fatalf("got %d samples, want 10", len(got))
	}
	assertNear(t, Pt(10, 10), got[len(got)-1], 1e-9)
}

func TestSamplesLargeStep(t *testing.T) {
	got := slices.Collect(Samples(sCurve, 1))
	diff(t, []Point{Eval(sCurve, 1)}, got)
}

func TestSegmentsCollinear(t *testing.T) {
	// Four collinear control points keep the curve on the line y = x.
	pts := []Point{Pt(0, 0), Pt(10, 10), Pt(20, 20), Pt(30, 30)}
	segs := slices.Collect(Segments(pts, 0.1))
	if len(segs) != 10 {
		t.Fatalf("got %d segments, want 10", len(segs))
	}
	const epsilon = 1e-9
	for i, seg := range segs {
		if d := math.Abs(seg.P0.Y - seg.P0.X); d > epsilon {
			t.Errorf("segment %d start %v is off the line by %g", i, seg.P0, d)
		}
		if d := math.Abs(seg.P1.Y - seg.P1.X); d > epsilon {
			t.Errorf("segment %d end %v is off the line by %g", i, seg.P1, d)
		}
		// Segments must be connected end to start.
		if i > 0 {
			assertNear(t, segs[i-1].P1, seg.P0, epsilon)
		}
	}
	// The final segment starts at t = 1 and extrapolates one step past
	// the curve's end.
	assertNear(t, Eval(pts, 1.0), segs[9].P0, epsilon)
	assertNear(t, Eval(pts, 1.1), segs[9].P1, epsilon)
}

func TestSamplingArgumentPanics(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func()
	}{
		{"samples empty", func() { Samples(nil, 0.1)(func(Point) bool { return true }) }},
		{"segments empty", func() { Segments(nil, 0.1)(func(Line) bool { return true }) }},
		{"samples zero step", func() { Samples(sCurve, 0)(func(Point) bool { return true }) }},
		{"segments negative step", func() { Segments(sCurve, -0.5)(func(Line) bool { return true }) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("should have panicked")
				}
			}()
			tc.fn()
		})
	}
}
