// Package counter animates achievement numbers from zero up to their target
// the first time their container becomes visible.
package counter

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/san-kum/folio/internal/anim"
)

const (
	// DefaultThreshold is the visible fraction of the container that starts
	// the animation.
	DefaultThreshold = 0.3
	// DefaultSteps is the number of increments needed to reach a target.
	DefaultSteps = 200
	// DefaultInterval is the delay between increments.
	DefaultInterval = 10 * time.Millisecond
)

// Spec describes one counter.
type Spec struct {
	Label  string `yaml:"label"`
	Target int    `yaml:"target"`
	Suffix string `yaml:"suffix"`
}

type Animation struct {
	specs     []Spec
	values    []float64
	texts     []string
	finished  []bool
	threshold float64
	steps     float64
	interval  time.Duration
	started   bool
}

func New(specs []Spec) *Animation {
	a := &Animation{
		specs:     specs,
		values:    make([]float64, len(specs)),
		texts:     make([]string, len(specs)),
		finished:  make([]bool, len(specs)),
		threshold: DefaultThreshold,
		steps:     DefaultSteps,
		interval:  DefaultInterval,
	}
	for i, s := range specs {
		a.texts[i] = "0" + s.Suffix
	}
	return a
}

func (a *Animation) Interval() time.Duration { return a.interval }

// Started reports whether the animation has been triggered.
func (a *Animation) Started() bool { return a.started }

// Trigger starts the animation when at least the threshold fraction of the
// container is visible. It returns true only for the call that starts it;
// later calls are no-ops. The first increment is applied immediately.
func (a *Animation) Trigger(visibleRatio float64) bool {
	if a.started || visibleRatio < a.threshold {
		return false
	}
	a.started = true
	a.Step()
	return true
}

// Step applies one increment to every unfinished counter and reports whether
// another Step is needed.
func (a *Animation) Step() bool {
	if !a.started {
		return false
	}
	pending := false
	for i, s := range a.specs {
		if a.finished[i] {
			continue
		}
		target := float64(s.Target)
		if a.values[i] < target {
			a.values[i] += target / a.steps
			shown := math.Min(math.Ceil(a.values[i]), target)
			a.texts[i] = strconv.Itoa(int(shown)) + s.Suffix
			pending = true
			continue
		}
		a.texts[i] = strconv.Itoa(s.Target) + s.Suffix
		a.finished[i] = true
	}
	return pending
}

// Done reports whether every counter shows its final value.
func (a *Animation) Done() bool {
	if !a.started {
		return false
	}
	for _, f := range a.finished {
		if !f {
			return false
		}
	}
	return true
}

// Texts returns the displayed value of every counter.
func (a *Animation) Texts() []string {
	out := make([]string, len(a.texts))
	copy(out, a.texts)
	return out
}

func (a *Animation) Specs() []Spec { return a.specs }

// Progress is how far counter i is towards its target, in [0, 1].
func (a *Animation) Progress(i int) float64 {
	if !a.started || i < 0 || i >= len(a.specs) {
		return 0
	}
	if a.finished[i] || a.specs[i].Target <= 0 {
		return 1
	}
	return math.Min(a.values[i]/float64(a.specs[i].Target), 1)
}

// Run steps a triggered animation on clock until it completes or ctx is done.
// update receives the displayed values after every step.
func (a *Animation) Run(ctx context.Context, clock anim.Clock, update func([]string)) error {
	if !a.started {
		return nil
	}
	for !a.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(a.interval):
		}
		a.Step()
		if update != nil {
			update(a.Texts())
		}
	}
	return nil
}
