package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/folio/internal/viz"
)

// SVG is a particles.Surface that records shapes as SVG elements.
type SVG struct {
	Width, Height float64
	Background    string
	Ink           string
	elems         []string
}

func NewSVG(width, height float64, background, ink string) *SVG {
	return &SVG{Width: width, Height: height, Background: background, Ink: ink}
}

func (s *SVG) Clear() { s.elems = s.elems[:0] }

func (s *SVG) FillCircle(x, y, radius, opacity float64) {
	s.elems = append(s.elems, fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill-opacity="%.3f"/>`,
		x, y, radius, opacity))
}

func (s *SVG) Line(x0, y0, x1, y1, opacity float64) {
	s.elems = append(s.elems, fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-opacity="%.3f"/>`,
		x0, y0, x1, y1, opacity))
}

// Len is the number of recorded shapes.
func (s *SVG) Len() int { return len(s.elems) }

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s" stroke="%s" stroke-width="0.5">
`, s.Width, s.Height, s.Width, s.Height, s.Background, s.Ink, s.Ink))
	for _, e := range s.elems {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CanvasToSVG redraws a braille canvas as one dot per lit sub-pixel, each at
// its cell's opacity. scale is the output size of one sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64, background, ink string) string {
	if canvas == nil {
		return ""
	}
	out := NewSVG(float64(canvas.Width*2)*scale, float64(canvas.Height*4)*scale, background, ink)
	canvas.Dots(func(x, y int, opacity float64) {
		out.FillCircle((float64(x)+0.5)*scale, (float64(y)+0.5)*scale, scale*0.4, opacity)
	})
	return out.String()
}
