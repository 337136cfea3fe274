package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// opacityLevels is the number of distinct shades a cell can be drawn in.
const opacityLevels = 8

// Canvas is a braille pixel grid. Each cell additionally remembers the
// strongest opacity drawn into it, which selects its shade when rendered.
//
// Canvas implements particles.Surface. Surface coordinates are divided by
// Scale to get sub-pixels; the canvas spans (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	Scale         float64
	Grid          [][]rune
	Level         [][]float64
}

func NewCanvas(w, h int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Scale:  scale,
		Grid:   make([][]rune, h),
		Level:  make([][]float64, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Level[i] = make([]float64, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// Bounds is the canvas extent in surface units.
func (c *Canvas) Bounds() (float64, float64) {
	return float64(c.Width*2) * c.Scale, float64(c.Height*4) * c.Scale
}

// Set lights the sub-pixel (x, y) at full opacity.
func (c *Canvas) Set(x, y int) { c.set(x, y, 1) }

func (c *Canvas) set(x, y int, opacity float64) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if opacity > c.Level[row][col] {
		c.Level[row][col] = opacity
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Level[i][j] = 0
		}
	}
}

func (c *Canvas) toPixel(v float64) int {
	return int(math.Floor(v / c.Scale))
}

// FillCircle draws a filled disc. Discs smaller than a sub-pixel still light
// their centre.
func (c *Canvas) FillCircle(x, y, radius, opacity float64) {
	cx, cy := c.toPixel(x), c.toPixel(y)
	r := radius / c.Scale
	ri := int(math.Ceil(r))
	c.set(cx, cy, opacity)
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				c.set(cx+dx, cy+dy, opacity)
			}
		}
	}
}

// Line draws a straight line between two surface points.
func (c *Canvas) Line(x0, y0, x1, y1, opacity float64) {
	c.drawLine(c.toPixel(x0), c.toPixel(y0), c.toPixel(x1), c.toPixel(y1), opacity)
}

// drawLine uses Bresenham's algorithm.
func (c *Canvas) drawLine(x0, y0, x1, y1 int, opacity float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.set(x0, y0, opacity)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Dots calls fn for every lit sub-pixel with the opacity of its cell, row by
// row.
func (c *Canvas) Dots(fn func(x, y int, opacity float64)) {
	for row := range c.Grid {
		for y := row * 4; y < row*4+4; y++ {
			for col, r := range c.Grid[row] {
				if r == blank {
					continue
				}
				for x := col * 2; x < col*2+2; x++ {
					if r&rune(pixelMap[y%4][x%2]) != 0 {
						fn(x, y, c.Level[row][col])
					}
				}
			}
		}
	}
}

// String renders the raw glyphs without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// Render draws the canvas in ink blended over background by each cell's
// opacity. Empty cells render as spaces.
func (c *Canvas) Render(ink, background lipgloss.Color) string {
	shades := shadeStyles(ink, background)
	var b strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, r := range row {
			if r == blank {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(shades[shadeIndex(c.Level[i][j])].Render(string(r)))
		}
	}
	return b.String()
}

// Cells is the number of non-empty cells.
func (c *Canvas) Cells() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != blank {
				n++
			}
		}
	}
	return n
}

func shadeIndex(opacity float64) int {
	i := int(math.Ceil(opacity*opacityLevels)) - 1
	if i < 0 {
		return 0
	}
	if i >= opacityLevels {
		return opacityLevels - 1
	}
	return i
}

func shadeStyles(ink, background lipgloss.Color) [opacityLevels]lipgloss.Style {
	var out [opacityLevels]lipgloss.Style
	for i := range out {
		t := float64(i+1) / opacityLevels
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(Blend(background, ink, t)))
	}
	return out
}

// Blend mixes two hex colours; t=0 yields from, t=1 yields to. Unparseable
// colours fall back to the other operand.
func Blend(from, to lipgloss.Color, t float64) string {
	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	switch {
	case errA != nil && errB != nil:
		return string(to)
	case errA != nil:
		return b.Hex()
	case errB != nil:
		return a.Hex()
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
