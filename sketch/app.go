package sketch

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/casteljau/bezier"
)

const (
	// ScreenWidth and ScreenHeight define the logical render target. The
	// window may be resized freely; coordinates stay in this space.
	ScreenWidth  = 640
	ScreenHeight = 480

	// TPS is the fixed update rate of the session loop.
	TPS = 60
)

// ToggleKey switches between marker and curve rendering.
const ToggleKey = ebiten.KeyCapsLock

// App drives a [Session] with Ebitengine input and renders it once per
// frame. It implements [ebiten.Game].
type App struct {
	session *Session
}

// NewApp returns an app around a fresh session.
func NewApp() *App {
	return &App{session: NewSession()}
}

// Session returns the session owned by the app.
func (a *App) Session() *Session {
	return a.session
}

// Update drains this tick's input into the session. It runs to completion
// before Draw, so a frame never renders a half-updated state.
func (a *App) Update() error {
	x, y := ebiten.CursorPosition()
	pos := bezier.Pt(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.session.PointerDown(pos)
	}
	a.session.PointerMove(pos)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.session.PointerUp()
	}

	if inpututil.IsKeyJustPressed(ToggleKey) {
		a.session.ToggleMode()
	}

	if _, dy := ebiten.Wheel(); dy > 0 {
		a.session.StepUp()
	} else if dy < 0 {
		a.session.StepDown()
	}

	return nil
}

// Draw renders the session: the control polygon, the curve in the current
// display mode once enough points are placed, and a marker for every
// control point.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor.Color())

	pts := a.session.Points().Points()

	for i := 1; i < len(pts); i++ {
		drawLine(screen, bezier.Line{P0: pts[i-1], P1: pts[i]}, PolygonColor)
	}

	if len(pts) >= CurveThreshold {
		switch a.session.Mode() {
		case ModeMarkers:
			for pt := range bezier.Samples(pts, a.session.Step()) {
				drawMarker(screen, pt, CurveColor)
			}
		case ModeCurve:
			for seg := range bezier.Segments(pts, a.session.Step()) {
				drawLine(screen, seg, CurveColor)
			}
		}
	}

	for _, pt := range pts {
		drawMarker(screen, pt, PointColor)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("mode: %s  step: %.3f", a.session.Mode(), a.session.Step()))
}

// Layout fixes the logical resolution regardless of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// drawMarker fills a MarkerSize square centered on pt.
func drawMarker(dst *ebiten.Image, pt bezier.Point, c RGBA) {
	box := bezier.NewRectFromCenter(pt, bezier.Sz(MarkerSize, MarkerSize))
	x, y := box.Origin().Splat()
	w, h := box.Size().Splat()
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c.Color(), false)
}

func drawLine(dst *ebiten.Image, l bezier.Line, c RGBA) {
	vector.StrokeLine(dst,
		float32(l.P0.X), float32(l.P0.Y),
		float32(l.P1.X), float32(l.P1.Y),
		1, c.Color(), false)
}
