package pixel

import "fmt"

// Flusher pushes a serialized frame to an output sink. len(rgb) is
// Channels()*Len() bytes in pixel order.
type Flusher interface {
	Write(rgb []byte) error
}

// Strip is a linear in-memory pixel buffer backed by a Flusher. Animations
// mutate entries in place and call Show to latch the frame; the strip never
// grows or shrinks after construction.
type Strip struct {
	px  []Color
	bpp int
	out []byte
	drv Flusher
}

// NewStrip allocates a strip of n pixels at bpp bytes per pixel (3 or 4),
// writing frames to drv.
func NewStrip(n, bpp int, drv Flusher) (*Strip, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid pixel count: %d", n)
	}
	if bpp != 3 && bpp != 4 {
		return nil, fmt.Errorf("invalid channel depth: %d", bpp)
	}
	return &Strip{
		px:  make([]Color, n),
		bpp: bpp,
		out: make([]byte, n*bpp),
		drv: drv,
	}, nil
}

func (s *Strip) Len() int { return len(s.px) }

// Channels reports bytes per pixel (3 for RGB, 4 for RGBW).
func (s *Strip) Channels() int { return s.bpp }

func (s *Strip) At(i int) Color { return s.px[i] }

func (s *Strip) Set(i int, c Color) { s.px[i] = c }

// Fill sets every pixel to c without flushing.
func (s *Strip) Fill(c Color) {
	for i := range s.px {
		s.px[i] = c
	}
}

// Show serializes the buffer and writes it to the flusher. The write is
// synchronous; an error means the frame may or may not have reached the
// hardware and is returned uninterpreted.
func (s *Strip) Show() error {
	for i, c := range s.px {
		off := i * s.bpp
		s.out[off] = c.R
		s.out[off+1] = c.G
		s.out[off+2] = c.B
		if s.bpp == 4 {
			s.out[off+3] = c.W
		}
	}
	return s.drv.Write(s.out)
}
