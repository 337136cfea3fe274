// Package viz provides the terminal drawing primitives for the portfolio.
//
//   - [Canvas]: braille pixel grid used as the particle drawing surface
//   - [Theme]: light and dark palettes
//   - [Styles]: lipgloss styles derived from a theme
package viz
