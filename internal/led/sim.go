package led

import "sync"

// Sim counts frames and keeps the last one, useful for headless runs and
// tests. Writes never fail.
type Sim struct {
	mu    sync.Mutex
	count int
	last  []byte
}

func NewSim() *Sim { return &Sim{} }

func (s *Sim) Write(rgb []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	if cap(s.last) < len(rgb) {
		s.last = make([]byte, len(rgb))
	}
	s.last = s.last[:len(rgb)]
	copy(s.last, rgb)
	return nil
}

func (s *Sim) Close() error { return nil }

// Frames reports how many frames were written.
func (s *Sim) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Last returns a copy of the most recent frame, or nil before the first
// write.
func (s *Sim) Last() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil
	}
	out := make([]byte, len(s.last))
	copy(out, s.last)
	return out
}
