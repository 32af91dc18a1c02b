package critter

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/critter/audio"
	"github.com/lixenwraith/critter/engine"
	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/pattern"
	"github.com/lixenwraith/critter/vmath"
)

// fixedRand returns scripted values
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.i % n
}

// soundLog records played cues
type soundLog struct {
	cues []audio.Cue
}

func (s *soundLog) Play(c audio.Cue) { s.cues = append(s.cues, c) }

func newTestEnv(seed uint64) (*Env, *engine.Scheduler, *soundLog) {
	sched := engine.NewScheduler()
	env := NewEnv(sched, Screen{Width: 400, Height: 800}, vmath.NewFastRand(seed))
	sounds := &soundLog{}
	env.Sound = sounds
	return env, sched, sounds
}

func newTestMover(t *testing.T, env *Env, id pattern.ID) *Mover {
	t.Helper()
	m, err := NewMover(env, Options{
		Asset:      "1f42d",
		Size:       80,
		Speed:      1000,
		Pattern:    id,
		SpawnSound: audio.CueMouse,
		DeathSound: audio.CueSplat1,
	})
	if err != nil {
		t.Fatalf("NewMover failed: %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return m
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestMoverStartsActive(t *testing.T) {
	env, sched, sounds := newTestEnv(1)
	m := newTestMover(t, env, pattern.Straight)

	if m.Phase() != PhaseActive {
		t.Fatalf("Expected Active after Start, got %d", m.Phase())
	}
	if m.Cycles() != 1 {
		t.Errorf("Expected first cycle to run on Start, got %d", m.Cycles())
	}
	if len(sounds.cues) != 1 || sounds.cues[0].Family() != audio.FamilySqueak {
		t.Errorf("Expected one squeak spawn cue, got %v", sounds.cues)
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected only the cycle timer pending, got %d", sched.Pending())
	}

	tr := m.Transform()
	if !tr.Visible || tr.Opacity != 1 || tr.Scale != 1 {
		t.Errorf("Expected visible full-size sprite, got %+v", tr)
	}

	// Second Start is a no-op
	if err := m.Start(); err != nil || m.Cycles() != 1 {
		t.Errorf("Expected idempotent Start, cycles=%d err=%v", m.Cycles(), err)
	}
}

func TestCatchRespawnScenario(t *testing.T) {
	env, sched, sounds := newTestEnv(2)
	var caught int
	m, err := NewMover(env, Options{
		Asset:      "1f42d",
		Size:       80,
		Speed:      1000,
		Pattern:    pattern.Straight,
		SpawnSound: audio.CueMouse,
		DeathSound: audio.CueSplat1,
		OnCatch:    func(*Mover) { caught++ },
	})
	if err != nil {
		t.Fatalf("NewMover failed: %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if !m.Catch() {
		t.Fatal("Expected catch to be accepted while active")
	}
	if m.Phase() != PhaseDestroying || caught != 1 {
		t.Fatalf("Expected Destroying with one callback, got phase %d callbacks %d", m.Phase(), caught)
	}
	if len(sounds.cues) != 2 || sounds.cues[1].Family() != audio.FamilySplat {
		t.Errorf("Expected a splat death cue, got %v", sounds.cues)
	}

	sched.Advance(250 * time.Millisecond)
	if tr := m.Transform(); tr.Opacity != 0 {
		t.Errorf("Expected faded out at 250ms, got opacity %f", tr.Opacity)
	}
	if m.shakeX.Value() != 0 {
		t.Errorf("Expected shake settled at 250ms, got %f", m.shakeX.Value())
	}

	sched.Advance(250 * time.Millisecond)
	if m.Phase() != PhaseHidden {
		t.Fatalf("Expected Hidden at 500ms, got %d", m.Phase())
	}
	tr := m.Transform()
	if tr.Visible {
		t.Error("Expected invisible while hidden")
	}
	if tr.Opacity != 1 || tr.Scale != 0 {
		t.Errorf("Expected opacity 1 and scale 0 while hidden, got %f %f", tr.Opacity, tr.Scale)
	}

	if m.Catch() {
		t.Error("Expected catch to be ignored while hidden")
	}
	if caught != 1 || m.Catches() != 1 {
		t.Errorf("Expected one catch total, got %d/%d", caught, m.Catches())
	}

	sched.Advance(400 * time.Millisecond)
	if m.Phase() != PhaseActive {
		t.Fatalf("Expected Active at 900ms, got %d", m.Phase())
	}
	if target := m.destroy.(*motion.TimelineChannel).Target(); target != 1 {
		t.Errorf("Expected destroy scale spring target 1, got %f", target)
	}
	if !m.Transform().Visible {
		t.Error("Expected visible after pop-in")
	}
	if m.Cycles() != 2 {
		t.Errorf("Expected cycle restarted on pop-in, got %d cycles", m.Cycles())
	}

	sched.Advance(2 * time.Second)
	if s := m.Transform().Scale; !approx(s, 1, 1e-6) {
		t.Errorf("Expected scale settled at 1, got %f", s)
	}
}

func TestRecatchRestartsTimers(t *testing.T) {
	env, sched, _ := newTestEnv(3)
	m := newTestMover(t, env, pattern.Straight)

	m.Catch()
	sched.Advance(300 * time.Millisecond)
	if !m.Catch() {
		t.Fatal("Expected catch accepted while destroying")
	}
	if m.Catches() != 2 {
		t.Errorf("Expected 2 catches, got %d", m.Catches())
	}

	// The first hide deadline passes without effect
	sched.Advance(250 * time.Millisecond)
	if m.Phase() != PhaseDestroying {
		t.Fatalf("Expected still Destroying at 550ms, got %d", m.Phase())
	}
	sched.Advance(250 * time.Millisecond)
	if m.Phase() != PhaseHidden {
		t.Fatalf("Expected Hidden at 800ms, got %d", m.Phase())
	}
}

func TestStaleEpochTimerIgnored(t *testing.T) {
	env, sched, _ := newTestEnv(4)
	m := newTestMover(t, env, pattern.Straight)

	m.Catch()
	epoch := m.phases.Epoch()
	sched.Advance(500 * time.Millisecond)
	if m.Phase() != PhaseHidden {
		t.Fatalf("Expected Hidden, got %d", m.Phase())
	}

	// A hide fired with the destroying epoch must not re-run the hidden entry
	if m.phases.HandleEventAt(m, evHide, epoch) {
		t.Error("Expected stale hide event to be ignored")
	}
	if m.phases.HandleEventAt(m, evPopIn, epoch) {
		t.Error("Expected stale pop-in event to be ignored")
	}
	if m.Phase() != PhaseHidden {
		t.Errorf("Expected still Hidden, got %d", m.Phase())
	}
}

func TestStopCancelsEverything(t *testing.T) {
	env, sched, _ := newTestEnv(5)
	m := newTestMover(t, env, pattern.Random)

	m.Catch()
	m.Stop()
	if m.Phase() != PhaseStopped {
		t.Fatalf("Expected Stopped, got %d", m.Phase())
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no pending timers after Stop, got %d", sched.Pending())
	}
	if m.Catch() {
		t.Error("Expected catch ignored after Stop")
	}

	before := m.Position()
	sched.Advance(5 * time.Second)
	if m.Position() != before {
		t.Error("Expected frozen position after Stop")
	}
	if m.Transform().Visible {
		t.Error("Expected invisible after Stop")
	}
}

func TestStopBeforeStart(t *testing.T) {
	env, sched, _ := newTestEnv(6)
	m, err := NewMover(env, Options{Size: 80, Speed: 1000})
	if err != nil {
		t.Fatalf("NewMover failed: %v", err)
	}
	m.Stop()
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if m.Phase() != PhaseStopped || sched.Pending() != 0 {
		t.Errorf("Expected stopped mover to stay stopped, phase %d pending %d", m.Phase(), sched.Pending())
	}
}

func TestCyclesRepeat(t *testing.T) {
	env, sched, _ := newTestEnv(7)
	m := newTestMover(t, env, pattern.Peek)

	// Peek cycles every speed·factor, factor at most 1.25
	sched.Advance(3 * time.Second)
	if m.Cycles() < 3 {
		t.Errorf("Expected at least 3 cycles in 3s, got %d", m.Cycles())
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected exactly one pending cycle timer, got %d", sched.Pending())
	}
}

func TestSettingsRestartCycle(t *testing.T) {
	env, sched, _ := newTestEnv(8)
	m := newTestMover(t, env, pattern.Straight)

	m.SetPattern(pattern.Circle)
	if m.Cycles() != 2 || m.Options().Pattern != pattern.Circle {
		t.Errorf("Expected restart on pattern change, cycles %d pattern %v", m.Cycles(), m.Options().Pattern)
	}
	m.SetPattern(pattern.Circle)
	if m.Cycles() != 2 {
		t.Errorf("Expected no restart for the same pattern, got %d", m.Cycles())
	}

	m.SetSpeed(1500)
	if m.Cycles() != 3 {
		t.Errorf("Expected restart on speed change, got %d", m.Cycles())
	}

	m.SetSize(40)
	if m.Cycles() != 4 {
		t.Errorf("Expected restart on size change, got %d", m.Cycles())
	}
	if m.jitter.Params.X > 1.6 {
		t.Errorf("Expected jitter redrawn for size 40, got x amplitude %f", m.jitter.Params.X)
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected stale cycle timers stopped, got %d pending", sched.Pending())
	}

	// Settings changes while hidden wait for the pop-in
	m.Catch()
	sched.Advance(500 * time.Millisecond)
	m.SetPattern(pattern.Edges)
	if m.Cycles() != 4 {
		t.Errorf("Expected no restart while hidden, got %d", m.Cycles())
	}
}

func TestMoverStaysOnScreen(t *testing.T) {
	env, sched, _ := newTestEnv(9)
	m := newTestMover(t, env, pattern.Random)
	maxX, maxY := 400.0-80, 800.0-80

	for i := 0; i < 400; i++ {
		sched.Advance(50 * time.Millisecond)
		p := m.Position()
		if p[0] < -1e-9 || p[0] > maxX+1e-9 || p[1] < -1e-9 || p[1] > maxY+1e-9 {
			t.Fatalf("Position %v left the screen at step %d", p, i)
		}
	}
}

func TestInvalidPatternFallsBack(t *testing.T) {
	env, _, _ := newTestEnv(10)
	m, err := NewMover(env, Options{Size: 80, Speed: 1000, Pattern: pattern.ID(99)})
	if err != nil {
		t.Fatalf("NewMover failed: %v", err)
	}
	if m.Options().Pattern != pattern.Random {
		t.Errorf("Expected fallback to random, got %v", m.Options().Pattern)
	}
}

func TestHitTest(t *testing.T) {
	env, _, _ := newTestEnv(11)
	m := newTestMover(t, env, pattern.Straight)
	m.Stop()

	// Stopped movers are invisible and cannot be hit
	if m.HitTest(m.Position().Add(vmath.Pt(40, 40))) {
		t.Error("Expected no hit on a stopped mover")
	}

	tr := Transform{X: 100, Y: 100, Scale: 1, Opacity: 1, Visible: true}
	if !tr.Contains(vmath.Pt(140, 140), 80) {
		t.Error("Expected center hit")
	}
	if tr.Contains(vmath.Pt(90, 140), 80) {
		t.Error("Expected miss left of the sprite")
	}
	tr.Scale = 0.5
	if tr.Contains(vmath.Pt(105, 105), 80) {
		t.Error("Expected shrunk sprite to miss near its corner")
	}
}

func TestJitterParams(t *testing.T) {
	p := NewJitterParams(80, fixedRand{f: 0})
	if !approx(p.Rot, 0.08, 1e-12) || !approx(p.X, 0.96, 1e-12) || !approx(p.Y, 0.8, 1e-12) {
		t.Errorf("Unexpected low jitter amplitudes %+v", p)
	}
	if p.RotMs != 110 || p.PosMs != 140 {
		t.Errorf("Unexpected low jitter periods %+v", p)
	}

	big := NewJitterParams(1000, fixedRand{f: 0.999})
	if big.X > 6 || big.Y > 6 {
		t.Errorf("Expected amplitudes capped by base 6, got %+v", big)
	}
	if big.RotMs != 199 || big.PosMs != 279 {
		t.Errorf("Unexpected high jitter periods %+v", big)
	}

	tiny := NewJitterParams(1, fixedRand{f: 0})
	if !approx(tiny.X, 0.3, 1e-12) {
		t.Errorf("Expected base floored at 1, got x %f", tiny.X)
	}
}
