package critter

import (
	_ "embed"

	"github.com/pkg/errors"

	"github.com/lixenwraith/critter/audio"
	"github.com/lixenwraith/critter/constants"
	"github.com/lixenwraith/critter/engine/fsm"
	"github.com/lixenwraith/critter/motion"
)

// Phase is a mover lifecycle state, ids match phases.toml
type Phase = fsm.StateID

const (
	PhaseIdle       Phase = fsm.StateNone
	PhaseActive     Phase = 1
	PhaseDestroying Phase = 2
	PhaseHidden     Phase = 3
	PhasePopIn      Phase = 4
	PhaseStopped    Phase = 5
)

const (
	evCatch fsm.EventType = iota + 1
	evHide
	evPopIn
	evStop
)

//go:embed phases.toml
var phaseGraph []byte

// newPhaseMachine builds the lifecycle graph with mover actions bound
func newPhaseMachine() (*fsm.Machine[*Mover], error) {
	m := fsm.NewMachine[*Mover]()
	m.RegisterEvent("Catch", evCatch)
	m.RegisterEvent("Hide", evHide)
	m.RegisterEvent("PopIn", evPopIn)
	m.RegisterEvent("Stop", evStop)

	m.RegisterAction("BeginDestroy", func(mv *Mover, _ any) { mv.beginDestroy() })
	m.RegisterAction("Hide", func(mv *Mover, _ any) { mv.hide() })
	m.RegisterAction("PopIn", func(mv *Mover, _ any) { mv.popIn() })
	m.RegisterAction("Halt", func(mv *Mover, _ any) { mv.halt() })

	if err := m.LoadConfig(phaseGraph); err != nil {
		return nil, errors.Wrap(err, "failed to load mover phases")
	}
	return m, nil
}

// beginDestroy plays the catch feedback and arms the hide timer
func (m *Mover) beginDestroy() {
	m.env.play(audio.ResolveDeath(m.opts.DeathSound, m.env.Rand))
	m.stopCycle()
	m.pos.Cancel()

	amp := constants.ShakeAmplitude
	seg := constants.ShakeSegment
	m.shakeX.Play(motion.Sequence(
		motion.To(-amp, seg, motion.InOutQuad),
		motion.To(amp, seg, motion.InOutQuad),
		motion.To(-amp, seg, motion.InOutQuad),
		motion.To(amp, seg, motion.InOutQuad),
		motion.To(0, seg, motion.InOutQuad),
	))

	m.destroy.Play(motion.Sequence(
		motion.SpringTo(constants.DestroyPopScale, motion.SpringDamping(constants.DestroyPopDamping), m.destroy.Value()),
		motion.To(0, constants.DestroyShrink, motion.InOutQuad),
	))

	m.opacity.Play(motion.Sequence(motion.Keyframe{
		Value:    0,
		Delay:    constants.DestroyFadeDelay,
		Duration: constants.DestroyFade,
		Ease:     motion.InOutQuad,
	}))

	m.afterPhase(constants.RespawnHideDelay, evHide)
	m.log.Debug("Mover caught")
}

// hide moves the invisible mover to its respawn point
func (m *Mover) hide() {
	m.visible = false
	m.pos.Place(m.randomPoint())
	m.tracker.Reset()
	m.shakeX.Set(0)
	m.destroy.Set(0)
	m.opacity.Set(1)
	m.afterPhase(constants.RespawnPopInDelay, evPopIn)
}

// popIn springs the mover back and restarts its cycle
func (m *Mover) popIn() {
	m.stopPhaseTimer()
	m.visible = true
	m.destroy.Play(motion.Sequence(
		motion.SpringTo(1, motion.SpringDamping(constants.PopInDamping), m.destroy.Value()),
	))
	m.startCycle()
}

// halt releases every timer and freezes all channels
func (m *Mover) halt() {
	m.stopPhaseTimer()
	m.stopCycle()
	m.pos.Cancel()
	m.shakeX.Cancel()
	m.destroy.Cancel()
	m.opacity.Cancel()
	m.jitter.Stop()
	m.visible = false
	m.log.Debug("Mover stopped")
}
