// Package critter runs the per-sprite lifecycle on top of movement patterns
// Movers cycle a pattern until caught, then play a destroy sequence and respawn.
// Escape and Jumper are one-shot critters that remove themselves when done.
package critter

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/critter/audio"
	"github.com/lixenwraith/critter/engine"
	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

// SoundPlayer plays resolved cues, *audio.SoundManager implements it
type SoundPlayer interface {
	Play(c audio.Cue)
}

// Screen is the drawable area in px
type Screen struct {
	Width  float64
	Height float64
}

// Env bundles the collaborators shared by every critter of a scene
// All critters of one Env must be driven from a single goroutine
type Env struct {
	Sched  *engine.Scheduler
	Driver motion.Driver
	Screen Screen
	Rand   vmath.Rand
	Sound  SoundPlayer        // nil is silent
	Log    logrus.FieldLogger // nil discards
}

// NewEnv creates an Env whose channels sample the scheduler's clock
func NewEnv(sched *engine.Scheduler, screen Screen, r vmath.Rand) *Env {
	return &Env{
		Sched:  sched,
		Driver: motion.NewTimeline(sched),
		Screen: screen,
		Rand:   r,
	}
}

func (e *Env) play(c audio.Cue) {
	if e.Sound != nil && c != audio.CueNone {
		e.Sound.Play(c)
	}
}

func (e *Env) logger() logrus.FieldLogger {
	if e.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.Log = l
	}
	return e.Log
}

// Transform is the composed render state of a critter at one instant
type Transform struct {
	X, Y     float64
	Rotation float64
	Scale    float64
	Opacity  float64
	Visible  bool
}

// Contains reports whether p hits the sprite square of the given size
func (t Transform) Contains(p vmath.Point, size float64) bool {
	if !t.Visible || t.Scale <= 0 {
		return false
	}
	s := size * t.Scale
	cx, cy := t.X+size/2, t.Y+size/2
	return p[0] >= cx-s/2 && p[0] <= cx+s/2 && p[1] >= cy-s/2 && p[1] <= cy+s/2
}
