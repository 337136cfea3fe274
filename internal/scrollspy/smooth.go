package scrollspy

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SmoothScroller eases a scroll offset towards a target on a critically
// damped spring, one frame per Step.
type SmoothScroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

func NewSmoothScroller(fps int) *SmoothScroller {
	return &SmoothScroller{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

// ScrollTo starts a scroll from the current offset to target.
func (s *SmoothScroller) ScrollTo(from, target float64) {
	s.pos, s.vel, s.target = from, 0, target
	s.active = true
}

// Step advances one frame and returns the new offset. Once within half a unit
// of the target the offset snaps to it and the scroller stops.
func (s *SmoothScroller) Step() float64 {
	if !s.active {
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.pos, s.vel = s.target, 0
		s.active = false
	}
	return s.pos
}

func (s *SmoothScroller) Active() bool { return s.active }

// Cancel stops an in-flight scroll where it is.
func (s *SmoothScroller) Cancel() { s.active = false }
