package particles

import (
	"math"
	"math/rand"
)

// Particle is a single dot in the field.
type Particle struct {
	X, Y    float64
	Radius  float64
	VX, VY  float64
	Opacity float64
}

func newParticle(p Params, width, height float64, rng *rand.Rand) Particle {
	return Particle{
		X:       rng.Float64() * width,
		Y:       rng.Float64() * height,
		Radius:  p.MinRadius + rng.Float64()*(p.MaxRadius-p.MinRadius),
		VX:      (rng.Float64() - 0.5) * 2 * p.MaxSpeed,
		VY:      (rng.Float64() - 0.5) * 2 * p.MaxSpeed,
		Opacity: p.MinOpacity + rng.Float64()*(p.MaxOpacity-p.MinOpacity),
	}
}

// Repulsion returns the displacement applied to a particle whose offset to
// the pointer is (dx, dy), i.e. dx = pointerX - x. The displacement points
// away from the pointer and is zero at or beyond the repel radius and at
// zero distance.
func Repulsion(dx, dy float64, p Params) (float64, float64) {
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist >= p.RepelRadius {
		return 0, 0
	}
	force := (p.RepelRadius - dist) / p.RepelRadius * p.RepelStrength
	return -dx / dist * force, -dy / dist * force
}

// Wrap resets a coordinate that left [0, max) to the opposite bound.
func Wrap(v, max float64) float64 {
	if v >= max {
		return 0
	}
	if v < 0 {
		return math.Nextafter(max, 0)
	}
	return v
}

// LinkOpacity is the opacity of the line joining two particles dist apart,
// or zero when they are too far apart to be linked.
func LinkOpacity(dist float64, p Params) float64 {
	if dist >= p.LinkDistance {
		return 0
	}
	return p.LinkOpacity * (1 - dist/p.LinkDistance)
}
