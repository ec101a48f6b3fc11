// Package bezier evaluates Bézier curves of arbitrary degree and maintains
// the control points that define them.
//
// The central routine is [Eval], which computes a point on the curve defined
// by any number of control points using de Casteljau's construction: the
// control points are repeatedly collapsed pairwise by linear interpolation
// until a single point remains. [Samples] and [Segments] walk the parameter
// from 0 to 1 in fixed increments and yield the discrete samples or the
// connecting line segments of the resulting polyline.
//
// [ControlPoints] is a capacity-bounded, ordered point sequence supporting
// in-place repositioning and hit-testing against square markers, the model
// behind interactive placement and dragging of control points.
//
// The package holds geometry only; drawing and input are the concern of its
// callers (see the sketch package).
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bezier
