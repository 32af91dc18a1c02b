package motion

import (
	"time"
)

// Clock supplies the elapsed time a timeline samples against
// engine.Scheduler implements it with pause-aware virtual time
type Clock interface {
	Now() time.Duration
}

// Timeline is a sampling animation driver
// Channels evaluate their track lazily at read time, nothing runs between reads.
// Single goroutine only, matching the cooperative scheduler that drives it.
type Timeline struct {
	clock Clock
}

// NewTimeline creates a driver bound to clock
func NewTimeline(clock Clock) *Timeline {
	return &Timeline{clock: clock}
}

// NewChannel implements Driver
func (tl *Timeline) NewChannel(initial float64) Channel {
	return tl.Channel(initial)
}

// Channel creates a concrete timeline channel
func (tl *Timeline) Channel(initial float64) *TimelineChannel {
	return &TimelineChannel{tl: tl, base: initial}
}

// TimelineChannel is a Channel sampled from its Timeline's clock
type TimelineChannel struct {
	tl      *Timeline
	base    float64
	track   Track
	start   time.Duration
	playing bool
}

// Value samples the channel at the current clock time
func (c *TimelineChannel) Value() float64 {
	if !c.playing {
		return c.base
	}
	v, done := Sample(c.track, c.base, c.tl.clock.Now()-c.start)
	if done {
		c.base = v
		c.playing = false
		c.track = Track{}
	}
	return v
}

// Set stops any animation and assigns v
func (c *TimelineChannel) Set(v float64) {
	c.playing = false
	c.track = Track{}
	c.base = v
}

// Play replaces the current animation, continuing from the current value
func (c *TimelineChannel) Play(tr Track) {
	current := c.Value()
	if tr.Empty() {
		c.Set(current)
		return
	}
	if len(tr.Frames) == 0 {
		c.Set(tr.From)
		return
	}
	c.base = current
	c.track = tr
	c.start = c.tl.clock.Now()
	c.playing = true
}

// Cancel freezes the channel where it is
func (c *TimelineChannel) Cancel() {
	c.Set(c.Value())
}

// Playing reports whether an animation is still running
func (c *TimelineChannel) Playing() bool {
	c.Value()
	return c.playing
}

// Target returns the value the current animation will settle on
// Looping tracks report their last frame value
func (c *TimelineChannel) Target() float64 {
	if !c.Playing() {
		return c.base
	}
	return c.track.Final(c.base)
}

// Track returns the active track, zero when idle
func (c *TimelineChannel) Track() Track {
	c.Value()
	return c.track
}
