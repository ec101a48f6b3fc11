// Command bezier is an interactive Bézier curve visualizer. Left-click
// places control points; dragging a marker moves it. Once four points are
// placed the curve appears, either as discrete sample markers or as a
// polyline (Caps Lock toggles). The mouse wheel adjusts the sample step.
package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/casteljau/bezier/sketch"
)

func main() {
	ebiten.SetWindowTitle("Bézier Curves")
	ebiten.SetWindowSize(sketch.ScreenWidth, sketch.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(sketch.TPS)

	if err := ebiten.RunGame(sketch.NewApp()); err != nil {
		slog.Error("session loop failed", "err", err)
		os.Exit(1)
	}
}
