package engine

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/funtimes-sparkle/internal/anim"
)

// Frame rate used when an animation does not request an interval.
const dfltFPS = 30

// Runner drives a Playlist: one goroutine, one ticker, one Draw per tick.
// Animations never see concurrency; the loop is the single writer of the
// pixel buffer.
type Runner struct {
	pl  *Playlist
	log zerolog.Logger
}

func NewRunner(pl *Playlist, log zerolog.Logger) *Runner {
	return &Runner{pl: pl, log: log}
}

// Run ticks the playlist until the context is cancelled, the program ends,
// or a frame flush fails. Flush errors are not retried here; they stop the
// loop and propagate to the caller.
func (r *Runner) Run(ctx context.Context) error {
	r.pl.Start()
	active := r.pl.Active()
	if active == nil {
		return errors.New("nothing to run: playlist is empty or idle")
	}
	r.log.Info().Str("animation", active.Name()).Msg("starting")

	interval := tickInterval(active)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			prev := active
			r.pl.Tick(dt)
			active = r.pl.Active()
			if active == nil {
				r.log.Info().Msg("playlist finished")
				return nil
			}
			if active != prev {
				r.log.Info().Str("animation", active.Name()).Msg("switching animation")
				if ni := tickInterval(active); ni != interval {
					interval = ni
					ticker.Reset(ni)
				}
			}
			if err := active.Draw(); err != nil {
				r.log.Error().Err(err).Str("animation", active.Name()).Msg("frame flush failed")
				return err
			}
		}
	}
}

func tickInterval(a anim.Animation) time.Duration {
	if d := a.Interval(); d > 0 {
		return d
	}
	return time.Second / dfltFPS
}
