package particles

// Surface is a 2D drawing target. Opacity is in [0, 1].
type Surface interface {
	Clear()
	FillCircle(x, y, radius, opacity float64)
	Line(x0, y0, x1, y1, opacity float64)
}
