package anim

import "github.com/coreman2200/funtimes-sparkle/internal/pixel"

// shades tracks the quarter- and tenth-intensity derivatives of a base
// color, used to render decay trails. Zero value means no shades computed
// yet (first recompute repaints nothing).
type shades struct {
	half  pixel.Color
	dim   pixel.Color
	valid bool
}

// recompute derives the new half/dim shades from c and repaints any pixel
// still holding the previous half or dim shade with the corresponding new
// one. A pixel matching the old half shade is not re-checked against the
// old dim shade in the same pass. Pixels matching neither are untouched,
// even if they coincidentally equal a shade of some other color; the
// matching is by value, not ownership.
func (s *shades) recompute(buf Buffer, c pixel.Color) {
	half := c.Div(4)
	dim := c.Div(10)
	if s.valid {
		for i := 0; i < buf.Len(); i++ {
			switch buf.At(i) {
			case s.half:
				buf.Set(i, half)
			case s.dim:
				buf.Set(i, dim)
			}
		}
	}
	s.half = half
	s.dim = dim
	s.valid = true
}
