// Package particles implements the decorative, pointer-reactive particle
// background.
//
// A [Field] owns a fixed pool of [Particle] values. Each frame the field
// advances every particle by its velocity, pushes particles away from the
// pointer, wraps them back into the drawing area and renders them, together
// with proximity links, onto a [Surface].
//
// # Example
//
//	field, _ := particles.New(particles.DefaultParams(), 1280, 720, rng)
//	field.SetPointer(640, 360)
//	field.Frame(surface)
//
// # Thread Safety
//
// Field instances are NOT thread-safe. They are meant to be driven from a
// single event loop.
package particles
