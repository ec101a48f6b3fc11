package bezier

import "fmt"

// Size is a 2D extent.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Splat returns the size's width and height.
func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// AsVec2 converts the size to a displacement.
func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}
