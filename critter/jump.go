package critter

import (
	"math"

	"github.com/lixenwraith/critter/constants"
	"github.com/lixenwraith/critter/engine"
	"github.com/lixenwraith/critter/facing"
	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

// JumpSpec describes one jumping critter
// Optional fields are nil when absent
type JumpSpec struct {
	ID            string
	Asset         facing.AssetCode
	Size          float64
	X             float64
	StartX        *float64 // Slide in from here when it differs from X
	Y             *float64 // Horizontal baseline, PeakY when nil
	Horizontal    bool
	ReturnToStart bool
	LingerMs      *float64
	PeakY         float64
	DurationMs    float64
	BaseRotate    float64
}

// JumpTiming is the derived segment schedule of a jump, in ms
type JumpTiming struct {
	SlideMs float64 // Vertical slide-in, 0 without slide
	DownMs  float64
	UpMs    float64
	InMs    float64
	HoldMs  float64
	OutMs   float64
	DoneMs  float64
}

// Jumper pops onto the screen, holds or bounces, then leaves and reports done
type Jumper struct {
	spec    JumpSpec
	timing  JumpTiming
	pos     motion.Handles
	opacity motion.Channel
	wobble  motion.Channel
	tracker *facing.Tracker
	offset  float64
	timer   *engine.Timer
	done    bool
	onDone  func(id string)
}

// slidesIn reports whether the jumper enters from StartX
func (s JumpSpec) slidesIn() bool {
	return s.StartX != nil && !math.IsNaN(*s.StartX) && !math.IsInf(*s.StartX, 0) &&
		math.Abs(*s.StartX-s.X) > constants.JumpSlideMinDelta
}

func (s JumpSpec) offscreenY() float64 {
	return -s.Size * constants.JumpOffscreenY
}

// Timing derives the segment schedule from the duration and options
func (s JumpSpec) Timing() JumpTiming {
	d := s.DurationMs
	if s.Horizontal {
		in := vmath.Clamp(math.Round(d*0.34), 220, 460)
		out := vmath.Clamp(math.Round(d*0.36), 220, 560)
		raw := math.Round(d * 0.55)
		if s.LingerMs != nil && !math.IsNaN(*s.LingerMs) && !math.IsInf(*s.LingerMs, 0) {
			raw = *s.LingerMs
		}
		hold := vmath.Clamp(math.Round(raw), 260, 1100)
		return JumpTiming{
			InMs:   in,
			HoldMs: hold,
			OutMs:  out,
			DoneMs: in + hold + out + constants.JumpHorizontalDoneSlackMs,
		}
	}

	down := math.Max(180, math.Round(d*0.58))
	up := math.Max(140, d-down)
	t := JumpTiming{
		DownMs: down,
		UpMs:   up,
		DoneMs: down + up + constants.JumpVerticalDoneSlackMs,
	}
	if s.slidesIn() {
		t.SlideMs = vmath.Clamp(math.Round(d*0.32), 160, 320)
	}
	return t
}

// NewJumper spawns and starts a jumper, onDone fires once with its id
func NewJumper(env *Env, spec JumpSpec, onDone func(id string)) *Jumper {
	startX := spec.X
	if spec.slidesIn() {
		startX = *spec.StartX
	}
	startY := spec.offscreenY()
	if spec.Horizontal {
		startY = spec.PeakY
		if spec.Y != nil {
			startY = *spec.Y
		}
	}

	tracker := facing.NewTracker(spec.Size)
	tracker.Vertical = true

	j := &Jumper{
		spec:    spec,
		timing:  spec.Timing(),
		pos:     motion.NewHandles(env.Driver, vmath.Pt(startX, startY)),
		opacity: env.Driver.NewChannel(0),
		wobble:  env.Driver.NewChannel(0),
		tracker: tracker,
		offset:  facing.Offset(spec.Asset),
		onDone:  onDone,
	}

	j.pos.Scale.Set(constants.JumpStartScale)
	j.pos.Scale.Play(motion.Sequence(
		motion.To(constants.JumpOvershoot, constants.JumpOvershootIn, motion.OutCubic),
		motion.To(1, constants.JumpOvershootOut, motion.OutCubic),
	))
	j.wobble.Play(wobble(constants.JumpJitterRot, constants.JumpJitterMs))

	if spec.Horizontal {
		j.playHorizontal(startX)
	} else {
		j.playVertical()
	}

	j.timer = env.Sched.AfterFunc(motion.Ms(j.timing.DoneMs), j.finish)
	return j
}

func (j *Jumper) playHorizontal(startX float64) {
	t := j.timing
	exitX := j.spec.X
	if j.spec.ReturnToStart && j.spec.slidesIn() {
		exitX = startX
	}
	j.pos.X.Play(motion.Sequence(
		motion.To(j.spec.X, motion.Ms(t.InMs), motion.OutCubic),
		motion.Hold(j.spec.X, motion.Ms(t.HoldMs)),
		motion.To(exitX, motion.Ms(t.OutMs), motion.InOutCubic),
	))
	j.opacity.Play(motion.Sequence(
		motion.To(1, motion.Ms(constants.JumpHorizontalVisibleMs), motion.InOutQuad),
		motion.Hold(1, motion.Ms(t.InMs+t.HoldMs+math.Round(t.OutMs*0.35))),
		motion.To(0, motion.Ms(math.Round(t.OutMs*0.65)), motion.InQuad),
	))
}

func (j *Jumper) playVertical() {
	t := j.timing
	j.opacity.Play(motion.Sequence(motion.To(1, constants.JumpFadeIn, motion.OutQuad)))
	if t.SlideMs > 0 {
		j.pos.X.Play(motion.Sequence(motion.To(j.spec.X, motion.Ms(t.SlideMs), motion.OutCubic)))
	}
	j.pos.Y.Play(motion.Sequence(
		motion.To(j.spec.PeakY, motion.Ms(t.DownMs), motion.OutCubic),
		motion.To(j.spec.offscreenY(), motion.Ms(t.UpMs), motion.InCubic),
	))
}

// ID returns the critter id
func (j *Jumper) ID() string { return j.spec.ID }

// Done reports whether the jumper has finished or been stopped
func (j *Jumper) Done() bool { return j.done }

// Size returns the sprite size
func (j *Jumper) Size() float64 { return j.spec.Size }

// Asset returns the artwork code
func (j *Jumper) Asset() facing.AssetCode { return j.spec.Asset }

// Timing returns the derived schedule
func (j *Jumper) Timing() JumpTiming { return j.timing }

// Stop cancels the jumper without reporting done
func (j *Jumper) Stop() {
	if j.done {
		return
	}
	j.done = true
	j.timer.Stop()
	j.pos.Cancel()
	j.opacity.Cancel()
	j.wobble.Set(0)
}

// Transform samples the current render state
func (j *Jumper) Transform() Transform {
	p := j.pos.Read()
	heading := j.tracker.Observe(p)
	return Transform{
		X:        p[0],
		Y:        p[1],
		Rotation: facing.Rotation(heading, j.offset, j.wobble.Value(), j.spec.BaseRotate),
		Scale:    j.pos.Scale.Value(),
		Opacity:  j.opacity.Value(),
		Visible:  !j.done,
	}
}

func (j *Jumper) finish() {
	if j.done {
		return
	}
	j.done = true
	if j.onDone != nil {
		j.onDone(j.spec.ID)
	}
}
