// Package typewriter cycles a headline through a list of phrases, typing and
// deleting one character at a time.
package typewriter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/san-kum/folio/internal/anim"
)

var (
	ErrNoPhrases   = errors.New("typewriter: phrase list is empty")
	ErrEmptyPhrase = errors.New("typewriter: phrase is empty")
)

type State int

const (
	Typing State = iota
	PausingAfterType
	Deleting
	PausingAfterDelete
)

func (s State) String() string {
	switch s {
	case Typing:
		return "typing"
	case PausingAfterType:
		return "pausing-after-type"
	case Deleting:
		return "deleting"
	case PausingAfterDelete:
		return "pausing-after-delete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Timing holds the delays between steps.
type Timing struct {
	Type       time.Duration `yaml:"type"`
	Delete     time.Duration `yaml:"delete"`
	HoldTyped  time.Duration `yaml:"hold_typed"`
	HoldErased time.Duration `yaml:"hold_erased"`
}

func DefaultTiming() Timing {
	return Timing{
		Type:       100 * time.Millisecond,
		Delete:     50 * time.Millisecond,
		HoldTyped:  2000 * time.Millisecond,
		HoldErased: 500 * time.Millisecond,
	}
}

// Cycle is the typewriter state machine. It never terminates; after the last
// phrase it wraps to the first.
type Cycle struct {
	phrases  [][]rune
	timing   Timing
	index    int
	cursor   int
	deleting bool
	state    State
}

func New(phrases []string, timing Timing) (*Cycle, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	rs := make([][]rune, len(phrases))
	for i, p := range phrases {
		if p == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyPhrase, i)
		}
		rs[i] = []rune(p)
	}
	return &Cycle{phrases: rs, timing: timing, state: Typing}, nil
}

// Step performs one transition and returns the text now displayed together
// with the delay before the next Step.
func (c *Cycle) Step() (string, time.Duration) {
	phrase := c.phrases[c.index]
	if c.deleting {
		c.cursor--
	} else {
		c.cursor++
	}
	text := string(phrase[:c.cursor])

	delay := c.timing.Type
	c.state = Typing
	if c.deleting {
		delay = c.timing.Delete
		c.state = Deleting
	}

	switch {
	case !c.deleting && c.cursor == len(phrase):
		c.deleting = true
		delay = c.timing.HoldTyped
		c.state = PausingAfterType
	case c.deleting && c.cursor == 0:
		c.deleting = false
		c.index = (c.index + 1) % len(c.phrases)
		delay = c.timing.HoldErased
		c.state = PausingAfterDelete
	}
	return text, delay
}

func (c *Cycle) State() State { return c.state }

// Index is the phrase currently being typed or deleted.
func (c *Cycle) Index() int { return c.index }

func (c *Cycle) Len() int { return len(c.phrases) }

// Text is the currently displayed prefix.
func (c *Cycle) Text() string {
	return string(c.phrases[c.index][:c.cursor])
}

// Run drives the cycle with clock until ctx is done, handing every displayed
// text to emit.
func Run(ctx context.Context, c *Cycle, clock anim.Clock, emit func(string)) error {
	for {
		text, delay := c.Step()
		emit(text)
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(delay):
		}
	}
}

// Runner runs a Cycle in its own goroutine until Stop or until the context
// passed to Start is cancelled. `folio preview typewriter` drives one on a
// manual clock; the TUI schedules steps through Bubble Tea instead.
type Runner struct {
	cycle *Cycle
	clock anim.Clock
	emit  func(string)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(c *Cycle, clock anim.Clock, emit func(string)) *Runner {
	return &Runner{cycle: c, clock: clock, emit: emit}
}

// Start launches the loop. Starting a running Runner is a no-op.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		_ = Run(ctx, r.cycle, r.clock, r.emit)
	}(r.done)
}

// Stop cancels the loop and waits for it to exit.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}
