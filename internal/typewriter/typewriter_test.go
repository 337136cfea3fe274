package typewriter

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/anim"
)

func TestNew_Validation(t *testing.T) {
	g := NewWithT(t)

	_, err := New(nil, DefaultTiming())
	g.Expect(err).To(MatchError(ErrNoPhrases))

	_, err = New([]string{"ok", ""}, DefaultTiming())
	g.Expect(err).To(MatchError(ErrEmptyPhrase))
}

func TestCycle_TypesThenDeletes(t *testing.T) {
	g := NewWithT(t)
	c, err := New([]string{"Go", "Rust"}, DefaultTiming())
	g.Expect(err).NotTo(HaveOccurred())

	tests := []struct {
		text  string
		delay time.Duration
		state State
		index int
	}{
		{"G", 100 * time.Millisecond, Typing, 0},
		{"Go", 2000 * time.Millisecond, PausingAfterType, 0},
		{"G", 50 * time.Millisecond, Deleting, 0},
		{"", 500 * time.Millisecond, PausingAfterDelete, 1},
		{"R", 100 * time.Millisecond, Typing, 1},
	}

	for i, tt := range tests {
		text, delay := c.Step()
		if text != tt.text || delay != tt.delay {
			t.Errorf("step %d: got (%q, %v), want (%q, %v)", i, text, delay, tt.text, tt.delay)
		}
		if c.State() != tt.state {
			t.Errorf("step %d: state %v, want %v", i, c.State(), tt.state)
		}
		if c.Index() != tt.index {
			t.Errorf("step %d: index %d, want %d", i, c.Index(), tt.index)
		}
		if c.Text() != tt.text {
			t.Errorf("step %d: Text() = %q, want %q", i, c.Text(), tt.text)
		}
	}
}

func TestCycle_FullPhraseReturnsToEmpty(t *testing.T) {
	phrases := []string{"Full-Stack Developer", "AI/ML Enthusiast", "Problem Solver"}
	c, err := New(phrases, DefaultTiming())
	if err != nil {
		t.Fatal(err)
	}

	for round := 0; round < 2*len(phrases); round++ {
		start := c.Index()
		n := len([]rune(phrases[start]))
		var text string
		for i := 0; i < 2*n; i++ {
			text, _ = c.Step()
		}
		if text != "" {
			t.Errorf("round %d: text %q, want empty", round, text)
		}
		if want := (start + 1) % len(phrases); c.Index() != want {
			t.Errorf("round %d: index %d, want %d", round, c.Index(), want)
		}
	}
}

func TestCycle_Unicode(t *testing.T) {
	c, err := New([]string{"héllo"}, DefaultTiming())
	if err != nil {
		t.Fatal(err)
	}
	c.Step()
	text, _ := c.Step()
	if text != "hé" {
		t.Errorf("got %q, want %q", text, "hé")
	}
}

func TestRun_UsesClockDelays(t *testing.T) {
	g := NewWithT(t)
	c, err := New([]string{"ab"}, DefaultTiming())
	g.Expect(err).NotTo(HaveOccurred())

	clock := anim.NewManual(time.Unix(0, 0))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var texts []string
	err = Run(ctx, c, clock, func(s string) {
		texts = append(texts, s)
		if len(texts) == 5 {
			cancel()
		}
	})
	g.Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	g.Expect(texts).To(Equal([]string{"a", "ab", "a", "", "a"}))
	g.Expect(clock.Delays).To(Equal([]time.Duration{
		100 * time.Millisecond,
		2000 * time.Millisecond,
		50 * time.Millisecond,
		500 * time.Millisecond,
	}))
}

func TestRunner_StartStop(t *testing.T) {
	c, err := New([]string{"abc"}, DefaultTiming())
	if err != nil {
		t.Fatal(err)
	}

	first := make(chan struct{}, 1)
	r := NewRunner(c, anim.NewManual(time.Unix(0, 0)), func(string) {
		select {
		case first <- struct{}{}:
		default:
		}
	})
	r.Start(context.Background())
	r.Start(context.Background())

	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("runner never emitted")
	}

	r.Stop()
	r.Stop()
}
