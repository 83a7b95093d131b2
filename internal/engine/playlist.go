// Package engine schedules animations: a Playlist decides which animation
// is active at any point of the timeline, a Runner turns that into a tick
// loop that calls Draw at each animation's interval.
package engine

import (
	"errors"

	"github.com/coreman2200/funtimes-sparkle/internal/anim"
)

// Entry pairs an animation with how long it stays active. HoldS <= 0 holds
// the entry forever.
type Entry struct {
	Anim  anim.Animation
	HoldS float64
}

// State enumerates playlist states.
type State string

const (
	Idle    State = "idle"
	Running State = "running"
	Paused  State = "paused"
)

// Playlist owns the program timeline. It never draws; the Runner (or a
// test) calls Tick to advance time and Active to learn what to draw.
type Playlist struct {
	State State

	entries []Entry
	loop    bool
	nowS    float64
	idx     int
}

func NewPlaylist(loop bool) *Playlist {
	return &Playlist{State: Idle, loop: loop}
}

// Load replaces the program. Resets time and state to Idle.
func (p *Playlist) Load(entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("playlist has no entries")
	}
	for _, e := range entries {
		if e.Anim == nil {
			return errors.New("playlist entry has no animation")
		}
	}
	p.entries = entries
	p.nowS = 0
	p.idx = 0
	p.State = Idle
	return nil
}

// Start moves to Running at the head of the program.
func (p *Playlist) Start() {
	if p.State == Running || len(p.entries) == 0 {
		return
	}
	p.State = Running
}

func (p *Playlist) Pause() { p.State = Paused }

func (p *Playlist) Resume() {
	if p.State == Paused {
		p.State = Running
	}
}

// Stop resets to the start of the program.
func (p *Playlist) Stop() {
	p.State = Idle
	p.nowS = 0
	p.idx = 0
}

// Active returns the animation that should be drawing now, or nil when the
// playlist is not running.
func (p *Playlist) Active() anim.Animation {
	if p.State != Running || len(p.entries) == 0 {
		return nil
	}
	return p.entries[p.idx].Anim
}

// Tick advances the timeline by dt seconds, switching entries whose hold
// time has elapsed. A non-looping playlist goes Idle after the last entry.
func (p *Playlist) Tick(dt float64) {
	if p.State != Running || len(p.entries) == 0 {
		return
	}
	if dt <= 0 {
		return
	}
	p.nowS += dt

	for {
		e := p.entries[p.idx]
		if e.HoldS <= 0 || p.nowS < e.HoldS {
			return
		}
		p.nowS -= e.HoldS
		p.idx++
		if p.idx >= len(p.entries) {
			if !p.loop {
				p.State = Idle
				p.idx = 0
				p.nowS = 0
				return
			}
			p.idx = 0
		}
	}
}
