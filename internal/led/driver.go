package led

// Driver abstracts an LED output sink.
type Driver interface {
	// Write pushes one serialized frame to hardware. len(rgb) must be
	// Channels*N for the strip the driver was built for.
	Write(rgb []byte) error
	// Close releases resources.
	Close() error
}

// Fanout writes every frame to several drivers in order, e.g. hardware plus
// a browser preview. The first error stops the pass and is returned; later
// sinks miss that frame.
type Fanout []Driver

func (f Fanout) Write(rgb []byte) error {
	for _, d := range f {
		if err := d.Write(rgb); err != nil {
			return err
		}
	}
	return nil
}

func (f Fanout) Close() error {
	var first error
	for _, d := range f {
		if err := d.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
