// Package field implements the hero background animation: a drifting
// particle mesh with proximity links, sized from the viewport and redrawn
// once per display frame.
package field

import (
	"math"
	"math/rand"
	"time"
)

// Tunable parameters for the particle mesh.
const (
	// MaxParticles caps the set on wide viewports.
	MaxParticles = 70

	// PixelsPerParticle scales the particle count with viewport width, so
	// narrow screens draw fewer points.
	PixelsPerParticle = 16

	// LinkDistance is the cutoff below which two particles get a
	// connecting line, in logical pixels.
	LinkDistance = 160.0

	// WrapMargin is the overscan band around the viewport. Particles wrap
	// only after drifting this far past an edge, so they never pop in
	// exactly at the boundary.
	WrapMargin = 10.0

	DotAlpha    = 0.65
	LinkAlpha   = 0.18
	LinkWidth   = 0.8
	MinRadius   = 0.8
	MaxRadius   = 2.6
	MaxVelocity = 0.45
)

// Particle is a single drifting point. Velocity, radius and the color mix
// factor are fixed at creation; only the position changes afterwards.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	T      float64 // mix between the accent and cyan anchors, [0,1)
}

// Field owns the particle set for one viewport. Resize replaces the whole
// set; Step advances it by one frame.
type Field struct {
	Width  float64
	Height float64

	Particles []Particle

	rng *rand.Rand
}

// New creates a field sized to the given logical viewport and populates it.
func New(width, height float64) *Field {
	f := &Field{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	f.Resize(width, height)
	return f
}

// ParticleCount returns how many particles a viewport of the given logical
// width gets: one per PixelsPerParticle of width, capped at MaxParticles.
func ParticleCount(width float64) int {
	n := int(math.Floor(width / PixelsPerParticle))
	if n < 0 {
		n = 0
	}
	if n > MaxParticles {
		n = MaxParticles
	}
	return n
}

// Resize rebuilds the entire particle set for the new viewport. Prior
// positions and velocities are discarded.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height

	count := ParticleCount(width)
	f.Particles = make([]Particle, count)
	for i := range f.Particles {
		f.Particles[i] = f.spawn()
	}
}

func (f *Field) spawn() Particle {
	return Particle{
		X:      f.rng.Float64() * f.Width,
		Y:      f.rng.Float64() * f.Height,
		VX:     (f.rng.Float64() - 0.5) * MaxVelocity,
		VY:     (f.rng.Float64() - 0.5) * MaxVelocity,
		Radius: MinRadius + f.rng.Float64()*(MaxRadius-MinRadius),
		T:      f.rng.Float64(),
	}
}

// Step advances every particle by its velocity and wraps it toroidally once
// it drifts past the overscan margin: exiting one edge re-enters just
// outside the opposite edge.
func (f *Field) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X > f.Width+WrapMargin {
			p.X = -WrapMargin
		} else if p.X < -WrapMargin {
			p.X = f.Width + WrapMargin
		}
		if p.Y > f.Height+WrapMargin {
			p.Y = -WrapMargin
		} else if p.Y < -WrapMargin {
			p.Y = f.Height + WrapMargin
		}
	}
}
