package critter

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/critter/audio"
	"github.com/lixenwraith/critter/constants"
	"github.com/lixenwraith/critter/engine"
	"github.com/lixenwraith/critter/engine/fsm"
	"github.com/lixenwraith/critter/facing"
	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/pattern"
	"github.com/lixenwraith/critter/vmath"
)

// Options configures a Mover
type Options struct {
	Asset      facing.AssetCode
	Size       float64
	Speed      float64 // ms per characteristic segment
	Pattern    pattern.ID
	SpawnSound audio.Cue
	DeathSound audio.Cue
	OnCatch    func(m *Mover)
}

// Mover is a critter that cycles a movement pattern until caught, then respawns
type Mover struct {
	env  *Env
	opts Options
	log  logrus.FieldLogger

	pos     motion.Handles // Scale is the pattern's movement scale
	shakeX  motion.Channel
	destroy motion.Channel
	opacity motion.Channel
	jitter  *Jitter
	tracker *facing.Tracker
	offset  float64

	phases     *fsm.Machine[*Mover]
	generation uint64
	cycleTimer *engine.Timer
	phaseTimer *engine.Timer
	visible    bool
	cycles     int
	catches    int
}

// NewMover creates an idle mover, Start spawns it
func NewMover(env *Env, opts Options) (*Mover, error) {
	if !opts.Pattern.Valid() {
		opts.Pattern = pattern.Random
	}
	driver := env.Driver
	m := &Mover{
		env:     env,
		opts:    opts,
		log:     env.logger().WithFields(logrus.Fields{"critter": "mover", "asset": string(opts.Asset)}),
		pos:     motion.NewHandles(driver, vmath.Pt(0, 0)),
		shakeX:  driver.NewChannel(0),
		destroy: driver.NewChannel(1),
		opacity: driver.NewChannel(1),
		jitter:  NewJitter(driver, NewJitterParams(opts.Size, env.Rand)),
		tracker: facing.NewTracker(opts.Size),
		offset:  facing.Offset(opts.Asset),
	}

	phases, err := newPhaseMachine()
	if err != nil {
		return nil, err
	}
	m.phases = phases
	return m, nil
}

// Start spawns the mover at a random point and begins cycling
// Calling Start on a running or stopped mover does nothing
func (m *Mover) Start() error {
	if m.phases.Current() != PhaseIdle {
		return nil
	}
	m.pos.Place(m.randomPoint())
	m.tracker.Reset()
	m.jitter.Start()
	if err := m.phases.Init(m); err != nil {
		return err
	}
	m.visible = true
	m.startCycle()
	m.log.WithField("pattern", m.opts.Pattern.String()).Debug("Mover started")
	return nil
}

// Catch starts the destroy and respawn sequence
// Returns false when the mover cannot be caught in its current phase
func (m *Mover) Catch() bool {
	if !m.phases.HandleEvent(m, evCatch) {
		return false
	}
	m.catches++
	if m.opts.OnCatch != nil {
		m.opts.OnCatch(m)
	}
	return true
}

// Stop cancels all timers and animations, the mover cannot be restarted
func (m *Mover) Stop() {
	if m.phases.Current() == PhaseIdle {
		m.phases.InitialStateID = PhaseStopped
		_ = m.phases.Init(m)
		return
	}
	m.phases.HandleEvent(m, evStop)
}

// Update advances phase bookkeeping by dt
func (m *Mover) Update(dt time.Duration) {
	m.phases.Update(m, dt)
}

// Phase returns the current lifecycle phase
func (m *Mover) Phase() Phase {
	return m.phases.Current()
}

// Options returns the current settings
func (m *Mover) Options() Options {
	return m.opts
}

// Catches returns the number of accepted catches
func (m *Mover) Catches() int {
	return m.catches
}

// Cycles returns the number of pattern cycles started
func (m *Mover) Cycles() int {
	return m.cycles
}

// Position returns the animated top-left corner without shake or jitter
func (m *Mover) Position() vmath.Point {
	return m.pos.Read()
}

// SetPattern switches pattern, restarting the cycle when active
func (m *Mover) SetPattern(id pattern.ID) {
	if !id.Valid() || id == m.opts.Pattern {
		return
	}
	m.opts.Pattern = id
	m.restartIfActive()
}

// SetSpeed changes the cycle speed in ms
func (m *Mover) SetSpeed(speed float64) {
	if speed == m.opts.Speed {
		return
	}
	m.opts.Speed = speed
	m.restartIfActive()
}

// SetSize changes the sprite size, redrawing the jitter for it
func (m *Mover) SetSize(size float64) {
	if size == m.opts.Size {
		return
	}
	m.opts.Size = size
	m.tracker.Size = size
	m.jitter.Params = NewJitterParams(size, m.env.Rand)
	if m.phases.Current() != PhaseIdle && m.phases.Current() != PhaseStopped {
		m.jitter.Start()
	}
	m.restartIfActive()
}

// Transform composes position, shake, jitter, facing and destroy state
// Sampling also feeds the facing tracker, so call it once per frame
func (m *Mover) Transform() Transform {
	p := m.pos.Read()
	heading := m.tracker.Observe(p)
	jx, jy, jr := m.jitter.Value()

	moveScale := 1.0
	if m.pos.Scale != nil {
		moveScale = m.pos.Scale.Value()
	}

	phase := m.phases.Current()
	return Transform{
		X:        p[0] + m.shakeX.Value() + jx,
		Y:        p[1] + jy,
		Rotation: facing.Rotation(heading, m.offset, jr, 0),
		Scale:    m.destroy.Value() * moveScale,
		Opacity:  m.opacity.Value(),
		Visible:  m.visible && phase != PhaseIdle && phase != PhaseStopped,
	}
}

// HitTest reports whether p lands on the mover at its current transform
func (m *Mover) HitTest(p vmath.Point) bool {
	return m.Transform().Contains(p, m.opts.Size)
}

// --- Movement cycle ---

func (m *Mover) restartIfActive() {
	if m.phases.Current() == PhaseActive {
		m.startCycle()
	}
}

// startCycle invalidates any pending cycle and runs a fresh one now
func (m *Mover) startCycle() {
	m.stopCycle()
	gen := m.generation
	m.runCycle(gen)
}

// stopCycle bumps the generation so in-flight cycle callbacks become no-ops
func (m *Mover) stopCycle() {
	m.generation++
	m.cycleTimer.Stop()
	m.cycleTimer = nil
}

func (m *Mover) runCycle(gen uint64) {
	if gen != m.generation {
		return
	}
	factor := constants.CycleSpeedJitterMin + m.env.Rand.Float64()*constants.CycleSpeedJitterRange
	speed := m.opts.Speed * factor
	m.startAnimation(speed)
	m.cycles++
	m.cycleTimer = m.env.Sched.AfterFunc(pattern.CycleDuration(m.opts.Pattern, speed), func() {
		m.runCycle(gen)
	})
}

// startAnimation resets movement state and schedules one pattern pass
func (m *Mover) startAnimation(speed float64) {
	m.pos.Cancel()
	if m.pos.Scale != nil {
		m.pos.Scale.Set(1)
	}

	start := m.pos.Read()
	scr := m.env.Screen
	clamped := vmath.ClampPoint(start, 0, 0, vmath.Span(scr.Width, m.opts.Size), vmath.Span(scr.Height, m.opts.Size))
	if clamped != start {
		m.pos.Place(clamped)
	}

	cfg := pattern.Config{
		X:            clamped[0],
		Y:            clamped[1],
		Scale:        1,
		HasScale:     m.pos.Scale != nil,
		Size:         m.opts.Size,
		Speed:        speed,
		ScreenWidth:  scr.Width,
		ScreenHeight: scr.Height,
		Rand:         m.env.Rand,
	}
	if !pattern.Move(m.opts.Pattern, cfg, m.pos) {
		m.log.WithField("pattern", m.opts.Pattern.String()).Debug("Pattern produced no motion")
	}
	m.env.play(audio.ResolveSpawn(m.opts.SpawnSound, m.env.Rand))
}

func (m *Mover) randomPoint() vmath.Point {
	scr := m.env.Screen
	return vmath.Pt(
		m.env.Rand.Float64()*vmath.Span(scr.Width, m.opts.Size),
		m.env.Rand.Float64()*vmath.Span(scr.Height, m.opts.Size),
	)
}

func (m *Mover) stopPhaseTimer() {
	m.phaseTimer.Stop()
	m.phaseTimer = nil
}

// afterPhase arms a timer that fires ev only if no transition happened meanwhile
func (m *Mover) afterPhase(d time.Duration, ev fsm.EventType) {
	m.stopPhaseTimer()
	epoch := m.phases.Epoch()
	m.phaseTimer = m.env.Sched.AfterFunc(d, func() {
		m.phases.HandleEventAt(m, ev, epoch)
	})
}
