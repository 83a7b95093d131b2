package led

import "periph.io/x/extra/devices/screen"

// Screen renders frames as ANSI color blocks at the console, the fallback
// when no SPI port is present.
type Screen struct {
	dev *screen.Dev
}

func NewScreen(pixels int) *Screen {
	return &Screen{dev: screen.New(pixels)}
}

func (s *Screen) Write(rgb []byte) error {
	_, err := s.dev.Write(rgb)
	return err
}

func (s *Screen) Close() error { return s.dev.Halt() }
