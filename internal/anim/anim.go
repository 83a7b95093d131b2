// Package anim implements per-frame pixel animations for addressable LED
// strips. Each animation owns its tick: Draw computes the next frame into
// the shared pixel buffer and requests one or more hardware flushes. The
// caller is the scheduler; it invokes Draw at the animation's interval and
// guarantees at most one Draw in flight.
package anim

import (
	"errors"
	"math/rand"
	"time"

	"github.com/coreman2200/funtimes-sparkle/internal/pixel"
)

// ErrInvalidConfig is returned when an animation cannot be constructed from
// the given parameters (buffer too short, inverted intensity bounds, bad
// period). A constructor that returns it leaves no usable animation behind.
var ErrInvalidConfig = errors.New("invalid animation configuration")

// Buffer is the pixel store an animation draws into. It is owned by the
// display driver; animations only mutate entries and request flushes.
type Buffer interface {
	Len() int
	At(i int) pixel.Color
	Set(i int, c pixel.Color)
	Show() error
}

// Clock supplies monotonic time to phase-tracking effects. Injected so
// tests can drive exact intensity curves without real delays.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default Clock, backed by time.Now (which carries a
// monotonic reading on all supported platforms).
var SystemClock Clock = systemClock{}

// Rand supplies uniform random ints in [0, n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

func defaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Animation is one tick-driven effect. A scheduler holds a heterogeneous
// collection of these and calls Draw once per frame.
type Animation interface {
	// Name identifies the animation in logs and playlists.
	Name() string
	// Interval is the requested time between frames.
	Interval() time.Duration
	// Draw renders one frame and flushes it. Flush errors propagate
	// unretried; the caller decides whether to skip the frame or abort.
	Draw() error
	// SetBaseColor changes the animation color while running. Effects with
	// decay trails repaint stale shades across the whole buffer, so the
	// cost is a full scan.
	SetBaseColor(c pixel.Color)
}
