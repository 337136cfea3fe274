package particles

import "errors"

var (
	// ErrInvalidBounds indicates a drawing area with a non-positive dimension.
	ErrInvalidBounds = errors.New("particles: drawing area must have positive width and height")

	// ErrInvalidParams indicates a parameter set that cannot drive a field.
	ErrInvalidParams = errors.New("particles: invalid parameters")
)
