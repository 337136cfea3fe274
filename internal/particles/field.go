package particles

import (
	"fmt"
	"math"
	"math/rand"
)

// Field is a fixed-size particle pool bound to a drawing area.
type Field struct {
	params        Params
	width, height float64
	particles     []Particle

	pointerX, pointerY float64
	hasPointer         bool
}

// New allocates a field sized for the viewport width. The pool size never
// changes afterwards.
func New(p Params, width, height float64, rng *rand.Rand) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !(width > 0 && height > 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidBounds, width, height)
	}
	n := p.CountFor(width)
	f := &Field{
		params:    p,
		width:     width,
		height:    height,
		particles: make([]Particle, n),
	}
	for i := range f.particles {
		f.particles[i] = newParticle(p, width, height, rng)
	}
	return f, nil
}

// Resize changes the drawing area. Particles are not rescaled; any that now
// sit outside the area are wrapped on the next Step.
func (f *Field) Resize(width, height float64) error {
	if !(width > 0 && height > 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidBounds, width, height)
	}
	f.width, f.height = width, height
	return nil
}

func (f *Field) Size() (float64, float64) { return f.width, f.height }

// SetPointer records the latest pointer position for the next Step.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

// ClearPointer forgets the pointer; no repulsion applies until SetPointer.
func (f *Field) ClearPointer() { f.hasPointer = false }

func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	for i := range f.particles {
		pt := &f.particles[i]
		x := pt.X + pt.VX
		y := pt.Y + pt.VY

		if f.hasPointer {
			ox, oy := Repulsion(f.pointerX-x, f.pointerY-y, f.params)
			x += ox
			y += oy
		}

		pt.X = Wrap(x, f.width)
		pt.Y = Wrap(y, f.height)
	}
}

// Render clears the surface and draws particles and their links. Links are
// drawn for every unordered pair closer than the link distance.
func (f *Field) Render(s Surface) {
	s.Clear()
	for i := range f.particles {
		a := f.particles[i]
		s.FillCircle(a.X, a.Y, a.Radius, a.Opacity)
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j]
			op := LinkOpacity(math.Hypot(b.X-a.X, b.Y-a.Y), f.params)
			if op > 0 {
				s.Line(a.X, a.Y, b.X, b.Y, op)
			}
		}
	}
}

// Frame is one animation callback: Step followed by Render.
func (f *Field) Frame(s Surface) {
	f.Step()
	f.Render(s)
}

func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the pool.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}
