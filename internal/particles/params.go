package particles

import "fmt"

const (
	DefaultBreakpoint    = 768.0
	DefaultLowCount      = 30
	DefaultHighCount     = 50
	DefaultMinRadius     = 1.0
	DefaultMaxRadius     = 3.0
	DefaultMaxSpeed      = 0.25
	DefaultMinOpacity    = 0.2
	DefaultMaxOpacity    = 0.7
	DefaultRepelRadius   = 100.0
	DefaultRepelStrength = 2.0
	DefaultLinkDistance  = 150.0
	DefaultLinkOpacity   = 0.1
)

// Params tunes a Field. Distances are in drawing-surface units.
type Params struct {
	// Breakpoint is the viewport width below which LowCount particles are used.
	Breakpoint float64 `yaml:"breakpoint"`
	LowCount   int     `yaml:"low_count"`
	HighCount  int     `yaml:"high_count"`

	MinRadius  float64 `yaml:"min_radius"`
	MaxRadius  float64 `yaml:"max_radius"`
	MaxSpeed   float64 `yaml:"max_speed"`
	MinOpacity float64 `yaml:"min_opacity"`
	MaxOpacity float64 `yaml:"max_opacity"`

	RepelRadius   float64 `yaml:"repel_radius"`
	RepelStrength float64 `yaml:"repel_strength"`

	LinkDistance float64 `yaml:"link_distance"`
	// LinkOpacity is the opacity of a link between two coincident particles.
	LinkOpacity float64 `yaml:"link_opacity"`
}

func DefaultParams() Params {
	return Params{
		Breakpoint:    DefaultBreakpoint,
		LowCount:      DefaultLowCount,
		HighCount:     DefaultHighCount,
		MinRadius:     DefaultMinRadius,
		MaxRadius:     DefaultMaxRadius,
		MaxSpeed:      DefaultMaxSpeed,
		MinOpacity:    DefaultMinOpacity,
		MaxOpacity:    DefaultMaxOpacity,
		RepelRadius:   DefaultRepelRadius,
		RepelStrength: DefaultRepelStrength,
		LinkDistance:  DefaultLinkDistance,
		LinkOpacity:   DefaultLinkOpacity,
	}
}

// Validate reports the first inconsistent setting.
func (p Params) Validate() error {
	switch {
	case p.LowCount < 0 || p.HighCount < 0:
		return fmt.Errorf("%w: negative particle count", ErrInvalidParams)
	case p.MinRadius < 0 || p.MaxRadius < p.MinRadius:
		return fmt.Errorf("%w: radius range [%g, %g)", ErrInvalidParams, p.MinRadius, p.MaxRadius)
	case p.MaxSpeed < 0:
		return fmt.Errorf("%w: negative speed", ErrInvalidParams)
	case p.MinOpacity < 0 || p.MaxOpacity > 1 || p.MaxOpacity < p.MinOpacity:
		return fmt.Errorf("%w: opacity range [%g, %g)", ErrInvalidParams, p.MinOpacity, p.MaxOpacity)
	case p.RepelRadius < 0 || p.LinkDistance < 0:
		return fmt.Errorf("%w: negative distance", ErrInvalidParams)
	}
	return nil
}

// CountFor picks the pool size for a viewport width. There are exactly two
// tiers.
func (p Params) CountFor(viewportWidth float64) int {
	if viewportWidth < p.Breakpoint {
		return p.LowCount
	}
	return p.HighCount
}
