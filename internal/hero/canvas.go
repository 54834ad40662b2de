// Package hero runs the site's animated hero background in a desktop
// window, backed by ebiten.
package hero

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Background behind the mesh, matching the hero section of the site.
var background = color.RGBA{R: 0x0b, G: 0x0e, B: 0x17, A: 0xff}

// canvas adapts the game's backing buffer to the field's drawing contract.
// The buffer is sized in physical pixels; logical coordinates are scaled up
// by the device scale factor on every call, so the field never sees pixel
// density.
type canvas struct {
	g *Game
}

func (c *canvas) Clear() {
	c.g.buffer.Fill(background)
}

func (c *canvas) FillCircle(x, y, r float64, col color.RGBA, alpha float64) {
	s := c.g.scale
	vector.DrawFilledCircle(c.g.buffer,
		float32(x*s), float32(y*s), float32(r*s),
		premultiply(col, alpha), true)
}

func (c *canvas) StrokeLine(x1, y1, x2, y2, width float64, col color.RGBA, alpha float64) {
	s := c.g.scale
	vector.StrokeLine(c.g.buffer,
		float32(x1*s), float32(y1*s),
		float32(x2*s), float32(y2*s),
		float32(width*s), premultiply(col, alpha), true)
}

// premultiply folds the draw alpha into the color, as ebiten expects.
func premultiply(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R)*alpha + 0.5),
		G: uint8(float64(c.G)*alpha + 0.5),
		B: uint8(float64(c.B)*alpha + 0.5),
		A: uint8(alpha*255 + 0.5),
	}
}
