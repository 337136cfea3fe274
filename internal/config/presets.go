package config

import (
	"sort"

	"github.com/san-kum/folio/internal/particles"
)

// Presets are named particle backgrounds selectable with --preset.
var Presets = map[string]ParticleConfig{
	"subtle": {
		Params: withParams(func(p *particles.Params) {
			p.LowCount, p.HighCount = 15, 25
			p.MaxOpacity = 0.4
			p.LinkOpacity = 0.05
		}),
		Enabled: true, Scale: DefaultParticleScale,
	},
	"default": {
		Params:  withParams(func(*particles.Params) {}),
		Enabled: true, Scale: DefaultParticleScale,
	},
	"lively": {
		Params: withParams(func(p *particles.Params) {
			p.MaxSpeed = 0.6
			p.RepelRadius = 140
			p.RepelStrength = 3
			p.LinkOpacity = 0.2
		}),
		Enabled: true, Scale: DefaultParticleScale,
	},
	"off": {
		Params:  withParams(func(*particles.Params) {}),
		Enabled: false, Scale: DefaultParticleScale,
	},
}

func GetPreset(name string) (ParticleConfig, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func withParams(tweak func(*particles.Params)) particles.Params {
	p := particles.DefaultParams()
	tweak(&p)
	return p
}
