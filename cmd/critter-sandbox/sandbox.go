package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/critter/audio"
	"github.com/lixenwraith/critter/config"
	"github.com/lixenwraith/critter/constants"
	"github.com/lixenwraith/critter/critter"
	"github.com/lixenwraith/critter/engine"
	"github.com/lixenwraith/critter/facing"
	"github.com/lixenwraith/critter/pattern"
	"github.com/lixenwraith/critter/status"
	"github.com/lixenwraith/critter/vmath"
)

// burstAssets join the configured asset in box dash and top jump bursts
var burstAssets = []facing.AssetCode{"1f41b", "1f41e", "1f577", "1f438"}

// sprite is anything the renderer can place
type sprite interface {
	Transform() critter.Transform
	Size() float64
	Asset() facing.AssetCode
}

// sandbox drives movers and burst spawners on a tcell screen
type sandbox struct {
	screen tcell.Screen
	view   viewport
	cfg    *config.Config
	log    logrus.FieldLogger

	sched *engine.Scheduler
	clock *engine.PausableClock
	env   *critter.Env
	sound *audio.SoundManager

	movers []*critter.Mover
	dash   *critter.BoxDash
	jump   *critter.TopJump

	metrics *status.Registry
	caught  *atomic.Int64
	frames  *atomic.Int64
	fps     *status.AtomicFloat
}

func newSandbox(screen tcell.Screen, cfg *config.Config, log logrus.FieldLogger, clock *engine.PausableClock) (*sandbox, error) {
	w, h := screen.Size()
	view := viewport{cols: w, rows: h}
	scr := critter.Screen{Width: cfg.Screen.Width, Height: cfg.Screen.Height}
	if w > 0 && h > statusRows {
		scr = view.playfield()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if clock == nil {
		clock = engine.NewPausableClock(nil, constants.MaxFrameStep)
	}

	sched := engine.NewScheduler()
	env := critter.NewEnv(sched, scr, vmath.NewFastRand(seed))
	env.Log = log

	sound := audio.NewSoundManager(cfg.AudioConfig())
	env.Sound = sound

	assets := append([]facing.AssetCode{cfg.AssetCode()}, burstAssets...)
	metrics := status.NewRegistry()
	sb := &sandbox{
		screen:  screen,
		view:    view,
		cfg:     cfg,
		log:     log,
		sched:   sched,
		clock:   clock,
		env:     env,
		sound:   sound,
		dash:    critter.NewBoxDash(env, assets, cfg.SizePx, cfg.SpeedMs),
		jump:    critter.NewTopJump(env, assets, cfg.SizePx, cfg.SpeedMs, float64(cfg.ObjectCount)),
		metrics: metrics,
		caught:  metrics.Ints.Get(status.KeyCatches),
		frames:  metrics.Ints.Get(status.KeyFrames),
		fps:     metrics.Floats.Get(status.KeyFPS),
	}
	if err := sb.spawnMovers(); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"seed":    seed,
		"pattern": cfg.Pattern,
		"count":   cfg.ObjectCount,
		"screen":  fmt.Sprintf("%gx%g", scr.Width, scr.Height),
	}).Info("Sandbox ready")
	return sb, nil
}

// initAudio opens the speaker, failure leaves the sandbox silent
func (sb *sandbox) initAudio() {
	if err := sb.sound.Initialize(); err != nil {
		sb.log.WithError(err).Warn("Audio unavailable")
	}
}

// spawnMovers replaces all movers with the configured count
func (sb *sandbox) spawnMovers() error {
	for _, m := range sb.movers {
		m.Stop()
	}
	sb.movers = sb.movers[:0]

	opts := critter.Options{
		Asset:      sb.cfg.AssetCode(),
		Size:       sb.cfg.SizePx,
		Speed:      sb.cfg.SpeedMs,
		Pattern:    sb.cfg.PatternID(),
		SpawnSound: sb.cfg.SpawnCue(),
		DeathSound: sb.cfg.DeathCue(),
		OnCatch:    func(*critter.Mover) { sb.caught.Add(1) },
	}
	for i := 0; i < sb.cfg.ObjectCount; i++ {
		m, err := critter.NewMover(sb.env, opts)
		if err != nil {
			return errors.Wrap(err, "failed to create mover")
		}
		if err := m.Start(); err != nil {
			return errors.Wrap(err, "failed to start mover")
		}
		sb.movers = append(sb.movers, m)
	}
	return nil
}

// step advances virtual time by dt
func (sb *sandbox) step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	sb.sched.Advance(dt)
	var cycles int64
	for _, m := range sb.movers {
		m.Update(dt)
		cycles += int64(m.Cycles())
	}
	sb.frames.Add(1)
	sb.fps.Blend(float64(time.Second)/float64(dt), 0.1)
	sb.collect(cycles)
}

// collect copies engine counters into the metrics registry
func (sb *sandbox) collect(cycles int64) {
	played, dropped := sb.sound.GetStats()
	sb.metrics.Ints.Get(status.KeyCycles).Store(cycles)
	sb.metrics.Ints.Get(status.KeyEscapes).Store(int64(sb.dash.Roster.Len()))
	sb.metrics.Ints.Get(status.KeyJumpers).Store(int64(sb.jump.Roster.Len()))
	sb.metrics.Ints.Get(status.KeyCuesPlayed).Store(int64(played))
	sb.metrics.Ints.Get(status.KeyCuesDropped).Store(int64(dropped))
}

// handleEvent applies one terminal event, false requests exit
func (sb *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return sb.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			col, row := ev.Position()
			sb.handleClick(col, row)
		}
	case *tcell.EventResize:
		sb.screen.Sync()
		sb.resize(sb.screen.Size())
	}
	return true
}

func (sb *sandbox) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch {
	case r == 'q' || r == 'Q':
		return false
	case r >= '1' && r <= '9':
		sb.setPattern(pattern.ID(r - '1'))
	case r == '+' || r == '=':
		sb.setSpeed(sb.cfg.StepSpeed(1))
	case r == '-' || r == '_':
		sb.setSpeed(sb.cfg.StepSpeed(-1))
	case r == ']':
		sb.setSize(sb.cfg.StepSize(1))
	case r == '[':
		sb.setSize(sb.cfg.StepSize(-1))
	case r == 'p' || r == 'P':
		sb.togglePause()
	case r == 'b' || r == 'B':
		sb.dash.Spawn()
	case r == 'j' || r == 'J':
		sb.jump.Spawn()
	case r == 's' || r == 'S':
		sb.sound.SetEnabled(!sb.sound.IsEnabled())
	case r == ' ':
		sb.catchAny()
	}
	return true
}

func (sb *sandbox) handleClick(col, row int) {
	p, ok := sb.view.toPixel(col, row)
	if !ok {
		return
	}
	for _, m := range sb.movers {
		if m.HitTest(p) && m.Catch() {
			sb.log.WithField("at", fmt.Sprintf("%.0f,%.0f", p[0], p[1])).Debug("Caught by click")
			return
		}
	}
}

// catchAny catches the first mover that accepts it
func (sb *sandbox) catchAny() {
	for _, m := range sb.movers {
		if m.Catch() {
			return
		}
	}
}

func (sb *sandbox) setPattern(id pattern.ID) {
	if !id.Valid() {
		return
	}
	sb.cfg.SetPattern(id)
	for _, m := range sb.movers {
		m.SetPattern(id)
	}
	sb.log.WithField("pattern", id.String()).Debug("Pattern changed")
}

func (sb *sandbox) setSpeed(speed float64) {
	for _, m := range sb.movers {
		m.SetSpeed(speed)
	}
	sb.dash.Speed = speed
	sb.jump.Speed = speed
}

func (sb *sandbox) setSize(size float64) {
	for _, m := range sb.movers {
		m.SetSize(size)
	}
	sb.dash.Size = size
	sb.jump.Size = size
}

func (sb *sandbox) togglePause() {
	if sb.clock.IsPaused() {
		sb.clock.Resume()
		sb.sched.Resume()
		return
	}
	sb.clock.Pause()
	sb.sched.Pause()
}

// resize remaps the playfield, critters keep their pixel positions
func (sb *sandbox) resize(w, h int) {
	sb.view = viewport{cols: w, rows: h}
	sb.env.Screen = sb.view.playfield()
}

func (sb *sandbox) statusLine() string {
	state := ""
	if sb.clock.IsPaused() {
		state = "  [paused]"
	}
	sound := "on"
	if !sb.sound.IsEnabled() {
		sound = "off"
	}
	return fmt.Sprintf(" %s  speed %.0fms  size %.0fpx  x%d  sound %s  %s%s  (1-9 + - [ ] p b j s space q)",
		sb.cfg.Pattern, sb.cfg.SpeedMs, sb.cfg.SizePx, len(sb.movers), sound,
		sb.metrics.Line(status.KeyCatches, status.KeyEscapes, status.KeyJumpers, status.KeyFPS), state)
}

func (sb *sandbox) draw() {
	s := sb.screen
	s.Clear()
	drawText(s, 0, 0, sb.statusLine(), tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true))

	if sb.dash.Roster.Len() > 0 {
		drawBox(s, sb.view, sb.dash.Box(), sb.dash.Style)
	}
	for _, m := range sb.movers {
		opts := m.Options()
		drawSprite(s, sb.view, m.Transform(), opts.Size, assetRune(opts.Asset))
	}
	for _, e := range sb.dash.Roster.Items() {
		sb.drawOneShot(e)
	}
	for _, j := range sb.jump.Roster.Items() {
		sb.drawOneShot(j)
	}
	s.Show()
}

func (sb *sandbox) drawOneShot(sp sprite) {
	drawSprite(sb.screen, sb.view, sp.Transform(), sp.Size(), assetRune(sp.Asset()))
}

// run owns the frame loop until quit
func (sb *sandbox) run() {
	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := sb.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	sb.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !sb.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			sb.step(sb.clock.Step())
			sb.draw()
		}
	}
}

func (sb *sandbox) cleanup() {
	for _, m := range sb.movers {
		m.Stop()
	}
	sb.dash.Roster.Clear()
	sb.jump.Roster.Clear()
	sb.sound.Cleanup()
	sb.collect(sb.metrics.Int(status.KeyCycles))
	sb.log.WithFields(logrus.Fields(sb.metrics.Fields())).Info("Sandbox closed")
}
