package critter

import (
	"math"

	"github.com/lixenwraith/critter/constants"
	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

// JitterParams are the wobble amplitudes and half-periods of one sprite
type JitterParams struct {
	Rot   float64
	X     float64
	Y     float64
	RotMs float64
	PosMs float64
}

// NewJitterParams draws wobble parameters scaled to the sprite size
func NewJitterParams(size float64, r vmath.Rand) JitterParams {
	base := math.Max(constants.JitterBaseMin, math.Min(constants.JitterBaseMax, size*constants.JitterBaseFactor))
	return JitterParams{
		Rot:   constants.JitterRotMin + r.Float64()*constants.JitterRotRange,
		X:     base * (constants.JitterXMin + r.Float64()*constants.JitterXRange),
		Y:     base * (constants.JitterYMin + r.Float64()*constants.JitterYRange),
		RotMs: constants.JitterRotMsMin + math.Floor(r.Float64()*constants.JitterRotMsRange),
		PosMs: constants.JitterPosMsMin + math.Floor(r.Float64()*constants.JitterPosMsRange),
	}
}

// Jitter is a continuous idle wobble on rotation and position
type Jitter struct {
	Params JitterParams
	rot    motion.Channel
	x      motion.Channel
	y      motion.Channel
}

// NewJitter creates idle jitter channels on d
func NewJitter(d motion.Driver, p JitterParams) *Jitter {
	return &Jitter{
		Params: p,
		rot:    d.NewChannel(0),
		x:      d.NewChannel(0),
		y:      d.NewChannel(0),
	}
}

// Start loops every channel between -amplitude and +amplitude
func (j *Jitter) Start() {
	p := j.Params
	j.rot.Play(wobble(p.Rot, p.RotMs))
	j.x.Play(wobble(p.X, p.PosMs))
	j.y.Play(wobble(p.Y, p.PosMs+constants.JitterYExtraMs))
}

// Stop freezes and zeroes the wobble
func (j *Jitter) Stop() {
	j.rot.Set(0)
	j.x.Set(0)
	j.y.Set(0)
}

// Value returns the current x, y and rotation offsets
func (j *Jitter) Value() (x, y, rot float64) {
	return j.x.Value(), j.y.Value(), j.rot.Value()
}

// wobble is an endless ease-in-out yoyo of the given amplitude
func wobble(amp, halfMs float64) motion.Track {
	d := motion.Ms(halfMs)
	return motion.Repeat(true,
		motion.To(-amp, d, motion.InOutQuad),
		motion.To(amp, d, motion.InOutQuad),
	)
}
