package pixel

// Color is one RGBW pixel value. W stays zero on 3-channel strips and is
// ignored by them at serialization time, so Color values compare with ==
// regardless of strip depth.
type Color struct {
	R, G, B, W uint8
}

// RGB builds a 3-channel color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBW builds a 4-channel color.
func RGBW(r, g, b, w uint8) Color {
	return Color{R: r, G: g, B: b, W: w}
}

// Div divides every channel by n with integer floor division.
func (c Color) Div(n uint8) Color {
	if n == 0 {
		return c
	}
	return Color{R: c.R / n, G: c.G / n, B: c.B / n, W: c.W / n}
}

// Scale multiplies every channel by f, truncating to integer and clamping
// into [0, 255].
func (c Color) Scale(f float64) Color {
	return Color{
		R: scale8(c.R, f),
		G: scale8(c.G, f),
		B: scale8(c.B, f),
		W: scale8(c.W, f),
	}
}

func scale8(v uint8, f float64) uint8 {
	s := float64(v) * f
	if s <= 0 {
		return 0
	}
	if s >= 255 {
		return 255
	}
	return uint8(s)
}
