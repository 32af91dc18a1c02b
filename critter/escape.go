package critter

import (
	"math"
	"time"

	"github.com/lixenwraith/critter/constants"
	"github.com/lixenwraith/critter/engine"
	"github.com/lixenwraith/critter/facing"
	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

// EscapeSpec describes one fleeing critter
type EscapeSpec struct {
	ID         string
	Asset      facing.AssetCode
	Size       float64
	Start      vmath.Point
	Target     vmath.Point
	DurationMs float64
}

// Escape zig-zags from a start point to an off-screen target once, then reports done
type Escape struct {
	spec    EscapeSpec
	pos     motion.Handles
	opacity motion.Channel
	wobble  motion.Channel
	tracker *facing.Tracker
	offset  float64
	timer   *engine.Timer
	done    bool
	onDone  func(id string)
}

// NewEscape spawns and starts an escape, onDone fires once with its id
func NewEscape(env *Env, spec EscapeSpec, onDone func(id string)) *Escape {
	e := &Escape{
		spec:    spec,
		pos:     motion.NewHandles(env.Driver, spec.Start),
		opacity: env.Driver.NewChannel(0),
		wobble:  env.Driver.NewChannel(0),
		tracker: facing.NewTracker(spec.Size),
		offset:  facing.Offset(spec.Asset),
		onDone:  onDone,
	}

	segMs := math.Max(constants.EscapeSegmentMin, math.Round(spec.DurationMs/constants.EscapeSegments))
	points := ZigZag(spec.Start, spec.Target, env.Screen, spec.Size, constants.EscapeSegments, env.Rand)
	durations := make([]time.Duration, len(points))
	for i := range durations {
		durations[i] = motion.Ms(segMs)
	}

	e.pos.Scale.Set(constants.EscapeStartScale)
	e.pos.Scale.Play(motion.Sequence(motion.To(1, constants.EscapeIntro, motion.OutCubic)))
	e.opacity.Play(motion.Sequence(motion.To(1, constants.EscapeIntro, motion.OutCubic)))
	e.wobble.Play(wobble(constants.EscapeJitterRot, constants.EscapeJitterMs))
	e.pos.SetSequence(points, durations)

	doneMs := segMs*constants.EscapeSegments + constants.EscapeDoneSlackMs
	e.timer = env.Sched.AfterFunc(motion.Ms(doneMs), e.finish)
	return e
}

// ZigZag builds segment end points alternating across the start-target line
// Points may leave the screen by up to three sizes, the last point is the target
func ZigZag(start, target vmath.Point, scr Screen, size float64, segments int, r vmath.Rand) []vmath.Point {
	if segments <= 0 {
		return nil
	}
	d := target.Sub(start)
	px, py := vmath.Normalize(-d[1], d[0])
	baseAmp := vmath.Clamp(size*constants.EscapeAmpFactor, constants.EscapeAmpMin, constants.EscapeAmpMax)
	wob := vmath.Clamp(size*constants.EscapeWobbleFactor, constants.EscapeWobbleMin, constants.EscapeWobbleMax)
	bound := size * constants.EscapeBoundsFactor

	points := make([]vmath.Point, segments)
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		dir := -1.0
		if i%2 == 0 {
			dir = 1
		}
		amp := baseAmp * (constants.EscapeAmpRandMin + r.Float64()*constants.EscapeAmpRandSpan)
		x := start[0] + d[0]*t + px*amp*dir + vmath.Signed(r)*wob
		y := start[1] + d[1]*t + py*amp*dir + vmath.Signed(r)*wob
		points[i-1] = vmath.ClampPoint(vmath.Pt(x, y), -bound, -bound, scr.Width+bound, scr.Height+bound)
	}
	points[segments-1] = target
	return points
}

// ID returns the critter id
func (e *Escape) ID() string { return e.spec.ID }

// Done reports whether the escape has finished or been stopped
func (e *Escape) Done() bool { return e.done }

// Size returns the sprite size
func (e *Escape) Size() float64 { return e.spec.Size }

// Asset returns the artwork code
func (e *Escape) Asset() facing.AssetCode { return e.spec.Asset }

// Stop cancels the escape without reporting done
func (e *Escape) Stop() {
	if e.done {
		return
	}
	e.done = true
	e.timer.Stop()
	e.pos.Cancel()
	e.opacity.Cancel()
	e.wobble.Set(0)
}

// Transform samples the current render state
func (e *Escape) Transform() Transform {
	p := e.pos.Read()
	heading := e.tracker.Observe(p)
	return Transform{
		X:        p[0],
		Y:        p[1],
		Rotation: facing.Rotation(heading, e.offset, e.wobble.Value(), 0),
		Scale:    e.pos.Scale.Value(),
		Opacity:  e.opacity.Value(),
		Visible:  !e.done,
	}
}

func (e *Escape) finish() {
	if e.done {
		return
	}
	e.done = true
	if e.onDone != nil {
		e.onDone(e.spec.ID)
	}
}
