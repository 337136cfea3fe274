package export

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/san-kum/folio/internal/particles"
	"github.com/san-kum/folio/internal/viz"
)

var _ particles.Surface = (*SVG)(nil)

func TestSVG_RecordsFieldFrame(t *testing.T) {
	f, err := particles.New(particles.DefaultParams(), 800, 600, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	s := NewSVG(800, 600, "#0a192f", "#64ffda")
	f.Frame(s)

	out := s.String()
	if got := strings.Count(out, "<circle"); got != f.Len() {
		t.Errorf("circles = %d, want %d", got, f.Len())
	}
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Error("malformed document")
	}

	f.Frame(s)
	if got := strings.Count(s.String(), "<circle"); got != f.Len() {
		t.Errorf("second frame not cleared: %d circles", got)
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1, "#000", "#fff") != "" {
		t.Error("nil canvas should produce empty output")
	}

	c := viz.NewCanvas(2, 1, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	out := CanvasToSVG(c, 2, "#000000", "#ffffff")
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("circles = %d, want 2", got)
	}
	if !strings.Contains(out, `cx="3.00" cy="7.00" r="0.80" fill-opacity="1.000"`) {
		t.Errorf("sub-pixel (1,3) not centred in its cell:\n%s", out)
	}
	if !strings.Contains(out, `width="8" height="8"`) {
		t.Errorf("unexpected size header:\n%s", out)
	}
}
