package bezier_test

import (
	"fmt"

	"github.com/casteljau/bezier"
)

func ExampleEval() {
	// The classic cubic S-curve: collapsing the control points pairwise at
	// t = 0.5 gives (0,50), (50,100), (100,50), then (25,75), (75,75), and
	// finally the curve point.
	pts := []bezier.Point{
		bezier.Pt(0, 0),
		bezier.Pt(0, 100),
		bezier.Pt(100, 100),
		bezier.Pt(100, 0),
	}
	fmt.Println(bezier.Eval(pts, 0.5))
	// Output:
	// (50, 75)
}

func ExampleSamples() {
	pts := []bezier.Point{
		bezier.Pt(0, 0),
		bezier.Pt(100, 100),
	}
	// Sampling starts at t = step and walks to t = 1.
	for pt := range bezier.Samples(pts, 0.25) {
		fmt.Println(pt)
	}
	// Output:
	// (25, 25)
	// (50, 50)
	// (75, 75)
	// (100, 100)
}
