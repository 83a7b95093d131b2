package led

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// NRZ drives WS2812/NeoPixel-class strips over SPI using the periph nrzled
// encoder. Protocol timing and bit encoding live entirely in the device
// driver; this type only moves frames.
type NRZ struct {
	port spi.PortCloser
	dev  *nrzled.Dev
}

// NewNRZ initializes the periph host, opens the named SPI port ("" picks
// the first available) and prepares an nrzled device for pixels LEDs at
// channels bytes per pixel.
func NewNRZ(portName string, pixels, channels int) (*NRZ, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("open SPI port %q: %w", portName, err)
	}
	opts := nrzled.Opts{
		NumPixels: pixels,
		Channels:  channels,
		Freq:      2500 * physic.KiloHertz,
	}
	dev, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("nrzled init: %w", err)
	}
	if err := dev.Halt(); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("nrzled halt: %w", err)
	}
	return &NRZ{port: port, dev: dev}, nil
}

func (n *NRZ) Write(rgb []byte) error {
	if _, err := n.dev.Write(rgb); err != nil {
		return fmt.Errorf("nrzled write: %w", err)
	}
	return nil
}

// Close blanks the strip and releases the SPI port.
func (n *NRZ) Close() error {
	if err := n.dev.Halt(); err != nil {
		_ = n.port.Close()
		return err
	}
	return n.port.Close()
}
