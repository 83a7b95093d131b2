package anim

import (
	"fmt"
	"time"

	"github.com/coreman2200/funtimes-sparkle/internal/pixel"
)

// SparkleOpts configures a Sparkle animation. Zero values take defaults:
// one sparkle per frame, system clock seeded RNG.
type SparkleOpts struct {
	Color       pixel.Color
	Interval    time.Duration
	NumSparkles int
	Name        string
	Rand        Rand
}

// Sparkle lights random pixels at full color, latches the frame, then
// decays each lit pixel to the half shade and its successor to the dim
// shade and latches again. Two flushes per frame, always.
type Sparkle struct {
	buf      Buffer
	rng      Rand
	name     string
	interval time.Duration
	color    pixel.Color
	num      int
	sh       shades
	picks    []int
}

// NewSparkle validates the buffer and options and returns a ready
// animation. The buffer needs at least 2 pixels because every sparkle
// writes to pick and pick+1.
func NewSparkle(buf Buffer, o SparkleOpts) (*Sparkle, error) {
	if buf == nil || buf.Len() < 2 {
		return nil, fmt.Errorf("%w: sparkle needs at least 2 pixels", ErrInvalidConfig)
	}
	if o.NumSparkles < 0 {
		return nil, fmt.Errorf("%w: negative sparkle count %d", ErrInvalidConfig, o.NumSparkles)
	}
	num := o.NumSparkles
	if num == 0 {
		num = 1
	}
	rng := o.Rand
	if rng == nil {
		rng = defaultRand()
	}
	name := o.Name
	if name == "" {
		name = "sparkle"
	}
	s := &Sparkle{
		buf:      buf,
		rng:      rng,
		name:     name,
		interval: o.Interval,
		num:      num,
		picks:    make([]int, num),
	}
	s.SetBaseColor(o.Color)
	return s, nil
}

func (s *Sparkle) Name() string { return s.name }

func (s *Sparkle) Interval() time.Duration { return s.interval }

// SetBaseColor swaps the animation color and repaints any half/dim trail
// pixels left by the previous color.
func (s *Sparkle) SetBaseColor(c pixel.Color) {
	s.color = c
	s.sh.recompute(s.buf, c)
}

// Draw renders one frame: the bright pass, a flush, the decay pass, a
// second flush. If the first flush fails the decay pass is skipped and the
// buffer is left mid-update.
func (s *Sparkle) Draw() error {
	// Never pick the last index; the decay pass touches pick+1.
	for i := range s.picks {
		s.picks[i] = s.rng.Intn(s.buf.Len() - 1)
	}
	for _, p := range s.picks {
		s.buf.Set(p, s.color)
	}
	if err := s.buf.Show(); err != nil {
		return err
	}
	for _, p := range s.picks {
		s.buf.Set(p, s.sh.half)
		s.buf.Set(p+1, s.sh.dim)
	}
	return s.buf.Show()
}
