package anim

import (
	"fmt"
	"math"
	"time"

	"github.com/coreman2200/funtimes-sparkle/internal/pixel"
)

// SparklePulseOpts configures a SparklePulse animation. Period defaults to
// 5 seconds and the intensity bounds to [0, 1].
type SparklePulseOpts struct {
	Color        pixel.Color
	Interval     time.Duration
	Period       float64
	MinIntensity float64
	MaxIntensity float64
	Name         string
	Clock        Clock
	Rand         Rand
}

// SparklePulse writes the base color, scaled by a triangular intensity
// curve, to one random pixel per frame. The curve ramps from MinIntensity
// up to MaxIntensity at the half period and back down, driven by elapsed
// monotonic time rather than frame count, so it keeps phase under jittery
// scheduling.
type SparklePulse struct {
	buf       Buffer
	rng       Rand
	clock     Clock
	name      string
	interval  time.Duration
	color     pixel.Color
	period    float64
	minI      float64
	delta     float64
	halfP     float64
	posFactor float64
	last      time.Time
	pos       float64
	sh        shades
}

// NewSparklePulse validates the buffer and options and returns a ready
// animation, with the phase origin at the current clock reading.
func NewSparklePulse(buf Buffer, o SparklePulseOpts) (*SparklePulse, error) {
	if buf == nil || buf.Len() < 2 {
		return nil, fmt.Errorf("%w: sparkle pulse needs at least 2 pixels", ErrInvalidConfig)
	}
	period := o.Period
	if period == 0 {
		period = 5
	}
	if period < 0 {
		return nil, fmt.Errorf("%w: period %v must be positive", ErrInvalidConfig, o.Period)
	}
	minI, maxI := o.MinIntensity, o.MaxIntensity
	if minI == 0 && maxI == 0 {
		maxI = 1
	}
	if maxI < minI {
		return nil, fmt.Errorf("%w: max intensity %v below min %v", ErrInvalidConfig, maxI, minI)
	}
	clock := o.Clock
	if clock == nil {
		clock = SystemClock
	}
	rng := o.Rand
	if rng == nil {
		rng = defaultRand()
	}
	name := o.Name
	if name == "" {
		name = "sparkle-pulse"
	}
	p := &SparklePulse{
		buf:       buf,
		rng:       rng,
		clock:     clock,
		name:      name,
		interval:  o.Interval,
		period:    period,
		minI:      minI,
		delta:     maxI - minI,
		halfP:     period / 2,
		posFactor: 1 / (period / 2),
		last:      clock.Now(),
	}
	p.SetBaseColor(o.Color)
	return p, nil
}

func (p *SparklePulse) Name() string { return p.name }

func (p *SparklePulse) Interval() time.Duration { return p.interval }

// SetBaseColor swaps the animation color and repaints stale half/dim
// shades, keeping the shared decay contract with Sparkle.
func (p *SparklePulse) SetBaseColor(c pixel.Color) {
	p.color = c
	p.sh.recompute(p.buf, c)
}

// Draw advances the cycle position by elapsed wall-clock seconds, folds it
// into the ramp-up/ramp-down triangle, scales the base color by the
// resulting intensity and writes it to one random pixel. One flush.
func (p *SparklePulse) Draw() error {
	pick := p.rng.Intn(p.buf.Len() - 1)

	now := p.clock.Now()
	elapsed := now.Sub(p.last).Seconds()
	p.last = now

	p.pos = math.Mod(p.pos+elapsed, p.period)
	pos := p.pos
	if pos > p.halfP {
		pos = p.period - pos
	}
	intensity := p.minI + pos*p.delta*p.posFactor

	p.buf.Set(pick, p.color.Scale(intensity))
	return p.buf.Show()
}
