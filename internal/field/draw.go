package field

import (
	"image/color"
	"math"
)

// Canvas is the minimal drawing surface the field renders onto. Coordinates
// are logical pixels; alpha is passed separately so the backend decides how
// to premultiply.
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, c color.RGBA, alpha float64)
	StrokeLine(x1, y1, x2, y2, width float64, c color.RGBA, alpha float64)
}

// Draw clears the canvas, draws every particle as a filled dot, then draws a
// faint line between every pair closer than LinkDistance. Link opacity fades
// linearly with distance and vanishes at the cutoff. The pair pass is O(n²),
// fine for at most MaxParticles points.
func (f *Field) Draw(c Canvas) {
	if c == nil {
		return
	}
	c.Clear()

	for i := range f.Particles {
		p := &f.Particles[i]
		c.FillCircle(p.X, p.Y, p.Radius, Mix(p.T), DotAlpha)
	}

	for i := 0; i < len(f.Particles); i++ {
		for j := i + 1; j < len(f.Particles); j++ {
			a, b := &f.Particles[i], &f.Particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d >= LinkDistance {
				continue
			}
			alpha := (1 - d/LinkDistance) * LinkAlpha
			c.StrokeLine(a.X, a.Y, b.X, b.Y, LinkWidth, Mix((a.T+b.T)/2), alpha)
		}
	}
}
