package ui

// Parallax returns the offset of the index-th decorative element for a
// pointer at (x, y) in a viewport of size (w, h). The pointer position is
// normalised to [-0.5, 0.5] around the viewport centre and multiplied by the
// element speed, (index+1)*base.
func Parallax(x, y, w, h float64, index int, base float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	nx := (x - w/2) / w
	ny := (y - h/2) / h
	speed := float64(index+1) * base
	return nx * speed, ny * speed
}

const (
	shapeSpeed = 10.0
	orbSpeed   = 5.0
)

type ornament struct {
	glyph string
	// anchor is the resting column as a fraction of the width.
	anchor float64
	index  int
	base   float64
}

var ornaments = []ornament{
	{"◇", 0.20, 0, shapeSpeed},
	{"○", 0.45, 1, shapeSpeed},
	{"△", 0.75, 2, shapeSpeed},
	{"●", 0.10, 0, orbSpeed},
	{"●", 0.60, 1, orbSpeed},
}
