package sketch

import "image/color"

// RGBA is a color packed into a 32-bit 0xRRGGBBAA constant: bits 24–31 carry
// red, 16–23 green, 8–15 blue, and 0–7 alpha.
type RGBA uint32

// Color unpacks the four 8-bit channels.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

// The session palette.
const (
	BackgroundColor RGBA = 0x353535FF
	PointColor      RGBA = 0xDA2C38FF
	CurveColor      RGBA = 0x87C38FFF
	PolygonColor    RGBA = 0x748CABFF
)
