package field

import (
	"image/color"
	"math"
)

// Anchor colors of the dot gradient, matching the site palette.
var (
	Accent = color.RGBA{R: 0x7c, G: 0x5c, B: 0xff, A: 0xff}
	Cyan   = color.RGBA{R: 0x2d, G: 0xd6, B: 0xc1, A: 0xff}
)

// Mix interpolates per channel between the accent and cyan anchors.
// t=0 yields the accent color, t=1 the cyan one.
func Mix(t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(Accent.R, Cyan.R, t),
		G: lerpChannel(Accent.G, Cyan.G, t),
		B: lerpChannel(Accent.B, Cyan.B, t),
		A: 0xff,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
