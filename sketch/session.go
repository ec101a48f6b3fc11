// Package sketch implements the interactive Bézier sketching session: a
// control point editor driven by pointer input, rendered with Ebitengine.
package sketch

import (
	"github.com/casteljau/bezier"
)

const (
	// MarkerSize is the side length of the square markers drawn for
	// control points and curve samples. The same square is the pick
	// target for dragging.
	MarkerSize = 15

	// CurveThreshold is the number of control points required before the
	// curve itself is rendered. Below it only the placed markers show.
	CurveThreshold = 4

	// StepNotch is the change in sample step per wheel notch.
	StepNotch = 0.001

	// MinStep and MaxStep bound the adjustable sample step.
	MinStep = 0.001
	MaxStep = 1.0

	// DefaultStep is the sample step of a fresh session.
	DefaultStep = 0.05
)

// Mode selects how the curve is rendered.
type Mode int

const (
	// ModeMarkers draws discrete square markers at each curve sample.
	ModeMarkers Mode = iota
	// ModeCurve draws line segments joining successive samples.
	ModeCurve
)

func (m Mode) String() string {
	switch m {
	case ModeMarkers:
		return "markers"
	case ModeCurve:
		return "curve"
	default:
		return "unknown"
	}
}

// noSelection marks the absence of a dragged point.
const noSelection = -1

// Session holds the whole state of one sketching session: the control
// points, the current drag selection, the sample step and the display mode.
// It interprets abstract pointer and wheel gestures; it knows nothing about
// the windowing layer.
//
// A session is single-owner state. The render loop drains all input into it
// before drawing, so every frame sees a fully consistent snapshot.
type Session struct {
	points   *bezier.ControlPoints
	selected int
	step     float64
	mode     Mode
}

// NewSession returns a session with no control points, no selection, the
// default sample step, and marker display mode.
func NewSession() *Session {
	return &Session{
		points:   bezier.NewControlPoints(),
		selected: noSelection,
		step:     DefaultStep,
		mode:     ModeMarkers,
	}
}

// Points returns the session's control points.
func (s *Session) Points() *bezier.ControlPoints {
	return s.points
}

// Step returns the current sample step.
func (s *Session) Step() float64 {
	return s.step
}

// Mode returns the current display mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Selected returns the index of the point being dragged, or -1 if none.
func (s *Session) Selected() int {
	return s.selected
}

// Dragging reports whether a point is currently being dragged.
func (s *Session) Dragging() bool {
	return s.selected != noSelection
}

// PointerDown handles a press at pos. Over an existing marker it starts
// dragging that point (the earliest-placed point wins on overlap); over
// empty space it places a new control point there. When the set is full the
// place gesture is dropped.
func (s *Session) PointerDown(pos bezier.Point) {
	if idx, ok := s.points.HitTest(pos, MarkerSize); ok {
		s.selected = idx
		return
	}
	s.points.Add(pos)
}

// PointerMove handles pointer motion. While a point is being dragged it
// follows the pointer; otherwise motion is ignored.
func (s *Session) PointerMove(pos bezier.Point) {
	if s.selected == noSelection {
		return
	}
	s.points.Replace(s.selected, pos)
}

// PointerUp ends a drag, if one is in progress.
func (s *Session) PointerUp() {
	s.selected = noSelection
}

// ToggleMode switches between marker and curve rendering. It does not touch
// the selection.
func (s *Session) ToggleMode() {
	if s.mode == ModeMarkers {
		s.mode = ModeCurve
	} else {
		s.mode = ModeMarkers
	}
}

// StepUp increases the sample step by one notch, saturating at MaxStep.
func (s *Session) StepUp() {
	s.step = min(s.step+StepNotch, MaxStep)
}

// StepDown decreases the sample step by one notch, saturating at MinStep.
func (s *Session) StepDown() {
	s.step = max(s.step-StepNotch, MinStep)
}
