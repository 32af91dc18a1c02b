package pattern

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

const testEps = 1e-9

type screenCase struct {
	name string
	w, h float64
	size float64
}

var screens = []screenCase{
	{"phone", 400, 800, 80},
	{"phone_large_sprite", 400, 800, 150},
	{"tablet", 1024, 1366, 40},
	{"cramped", 120, 120, 100},
	{"degenerate", 80, 80, 80},
}

type manualClock struct{ now time.Duration }

func (c *manualClock) Now() time.Duration { return c.now }

func testConfig(sc screenCase, speed float64, seed uint64) Config {
	r := vmath.NewFastRand(seed)
	maxX := vmath.Span(sc.w, sc.size)
	maxY := vmath.Span(sc.h, sc.size)
	return Config{
		X:            r.Float64() * maxX,
		Y:            r.Float64() * maxY,
		Scale:        1,
		HasScale:     true,
		Size:         sc.size,
		Speed:        speed,
		ScreenWidth:  sc.w,
		ScreenHeight: sc.h,
		Rand:         r,
	}
}

// frameValues returns the keyframe targets of a track, with the jump value first
func frameValues(tr motion.Track) []float64 {
	var out []float64
	if tr.Jump {
		out = append(out, tr.From)
	}
	for _, f := range tr.Frames {
		out = append(out, f.Value)
	}
	return out
}

func checkRange(t *testing.T, label string, values []float64, lo, hi float64) {
	t.Helper()
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s[%d]: non-finite value %v", label, i, v)
		}
		if v < lo-testEps || v > hi+testEps {
			t.Errorf("%s[%d]: %v outside [%v, %v]", label, i, v, lo, hi)
		}
	}
}

func TestPointsStayInBounds(t *testing.T) {
	for _, def := range Definitions() {
		for _, sc := range screens {
			for seed := uint64(1); seed <= 40; seed++ {
				cfg := testConfig(sc, 2000, seed)
				p := def.Func(cfg)
				maxX, maxY := cfg.MaxX(), cfg.MaxY()
				label := def.Key + "/" + sc.name

				xs, ys := frameValues(p.X), frameValues(p.Y)
				switch def.ID {
				case Straight, Peek:
					// Only the fixed axis is on-screen
					if p.X.Jump && len(p.X.Frames) == 0 {
						checkRange(t, label+"/x", xs, 0, maxX)
					}
					if p.Y.Jump && len(p.Y.Frames) == 0 {
						checkRange(t, label+"/y", ys, 0, maxY)
					}
					continue
				case Wander:
					// Drop the off-screen jump and the off-screen exit
					xs, ys = xs[1:len(xs)-1], ys[1:len(ys)-1]
				}
				checkRange(t, label+"/x", xs, 0, maxX)
				checkRange(t, label+"/y", ys, 0, maxY)
				checkRange(t, label+"/scale", frameValues(p.Scale), 1, leapMaxScale)
			}
		}
	}
}

func TestDurationsPositive(t *testing.T) {
	speeds := []float64{200, 700, 2000, 3000}
	for _, def := range Definitions() {
		for _, sc := range screens {
			for _, speed := range speeds {
				for seed := uint64(1); seed <= 10; seed++ {
					p := def.Func(testConfig(sc, speed, seed))
					for axis, tr := range map[string]motion.Track{"x": p.X, "y": p.Y, "scale": p.Scale} {
						for i, f := range tr.Frames {
							if f.Duration <= 0 {
								t.Errorf("%s/%s speed=%v %s frame %d: duration %v", def.Key, sc.name, speed, axis, i, f.Duration)
							}
							if f.Delay < 0 {
								t.Errorf("%s/%s %s frame %d: negative delay %v", def.Key, sc.name, axis, i, f.Delay)
							}
						}
					}
				}
			}
		}
	}
}

func TestOnlyRandomLoops(t *testing.T) {
	sc := screens[0]
	for _, def := range Definitions() {
		p := def.Func(testConfig(sc, 1000, 7))
		if p.X.Loop != (def.ID == Random) {
			t.Errorf("%s: Loop=%v", def.Key, p.X.Loop)
		}
	}
}

func TestRandomReturnsToStart(t *testing.T) {
	cfg := testConfig(screens[0], 1500, 3)
	p := planRandom(cfg)

	n := len(p.X.Frames)
	if n < randomMinPoints+1 || n > randomMinPoints+randomExtraPoints {
		t.Fatalf("Expected 7-15 frames, got %d", n)
	}
	last := vmath.Pt(p.X.Frames[n-1].Value, p.Y.Frames[n-1].Value)
	if vmath.Distance(last, cfg.Start()) > testEps {
		t.Errorf("Expected loop to end at start %v, got %v", cfg.Start(), last)
	}
	for i, f := range p.X.Frames {
		if f.Duration < motion.Ms(randomMinSegment) {
			t.Errorf("frame %d: duration %v below segment floor", i, f.Duration)
		}
	}
}

func TestStraightFromLeft(t *testing.T) {
	cfg := testConfig(screenCase{"phone", 400, 800, 80}, 1000, 1)
	p := PlanStraightFrom(EdgeLeft, cfg)

	if !p.X.Jump || p.X.From != -80 {
		t.Fatalf("Expected X jump to -80, got jump=%v from=%v", p.X.Jump, p.X.From)
	}
	if len(p.X.Frames) != 1 {
		t.Fatalf("Expected one segment, got %d", len(p.X.Frames))
	}
	f := p.X.Frames[0]
	if f.Value != 480 {
		t.Errorf("Expected end X 480, got %v", f.Value)
	}
	if f.Duration != 3000*time.Millisecond {
		t.Errorf("Expected 3000ms, got %v", f.Duration)
	}
	if !p.Y.Jump || len(p.Y.Frames) != 0 || p.Y.From < 0 || p.Y.From > 720 {
		t.Errorf("Expected constant Y in [0,720], got %+v", p.Y)
	}

	mid, done := motion.Sample(p.X, 0, 1500*time.Millisecond)
	if done || math.Abs(mid-200) > 1e-6 {
		t.Errorf("Expected X=200 at 1500ms, got %v (done=%v)", mid, done)
	}
	end, done := motion.Sample(p.X, 0, 3000*time.Millisecond)
	if !done || end != 480 {
		t.Errorf("Expected X=480 done at 3000ms, got %v (done=%v)", end, done)
	}
}

func TestStraightFromBottom(t *testing.T) {
	cfg := testConfig(screenCase{"phone", 400, 800, 80}, 1000, 1)
	p := PlanStraightFrom(EdgeBottom, cfg)

	if !p.Y.Jump || p.Y.From != 880 || p.Y.Frames[0].Value != -80 {
		t.Errorf("Expected Y 880 -> -80, got %+v", p.Y)
	}
	if len(p.X.Frames) != 0 || p.X.From < 0 || p.X.From > 320 {
		t.Errorf("Expected constant X in [0,320], got %+v", p.X)
	}
}

func TestPeekDepthAndTiming(t *testing.T) {
	cfg := testConfig(screenCase{"phone", 400, 800, 80}, 1000, 1)
	p := peekFrom(EdgeRight, cfg.rng(), cfg)

	if p.X.From != 480 {
		t.Errorf("Expected hidden X 480, got %v", p.X.From)
	}
	if len(p.X.Frames) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(p.X.Frames))
	}
	in, out := p.X.Frames[0], p.X.Frames[1]
	if in.Value != 240 || in.Duration != 300*time.Millisecond {
		t.Errorf("Expected peek to 240 over 300ms, got %v over %v", in.Value, in.Duration)
	}
	if out.Value != 480 || out.Delay != 500*time.Millisecond || out.Duration != 200*time.Millisecond {
		t.Errorf("Expected retreat to 480 after 500ms over 200ms, got %+v", out)
	}
	if p.Duration() != 1000 {
		t.Errorf("Expected 1000ms total, got %v", p.Duration())
	}
}

func TestPounceScenario(t *testing.T) {
	cfg := testConfig(screenCase{"phone", 400, 800, 80}, 1000, 5)
	p := PlanPounceN(cfg, 2)

	if len(p.X.Frames) != 4 {
		t.Fatalf("Expected pause+move per pounce (4 frames), got %d", len(p.X.Frames))
	}
	total := p.X.Total()
	if diff := total - 9000*time.Millisecond; diff < -time.Millisecond || diff > time.Millisecond {
		t.Errorf("Expected ~9000ms total, got %v", total)
	}

	pause := p.X.Frames[0]
	if pause.Duration != 4325*time.Millisecond {
		t.Errorf("Expected 4325ms pause, got %v", pause.Duration)
	}
	if pause.Value != cfg.X {
		t.Errorf("Expected first pause to hold start X %v, got %v", cfg.X, pause.Value)
	}

	move := p.X.Frames[1].Duration + p.X.Frames[3].Duration
	if diff := move - 350*time.Millisecond; diff < -time.Millisecond || diff > time.Millisecond {
		t.Errorf("Expected ~350ms of movement, got %v", move)
	}
	for _, i := range []int{1, 3} {
		if p.X.Frames[i].Duration < 50*time.Millisecond {
			t.Errorf("frame %d: move %v below 50ms floor", i, p.X.Frames[i].Duration)
		}
	}
	if p.X.Frames[2].Value != p.X.Frames[1].Value {
		t.Errorf("Expected second pause at first target")
	}
}

func TestLeapScalePulse(t *testing.T) {
	cfg := testConfig(screens[0], 2000, 11)
	p := planLeap(cfg)
	if p.Scale.Empty() {
		t.Fatal("Expected scale track with scale handle present")
	}
	if len(p.Scale.Frames) != len(p.Y.Frames) {
		t.Errorf("Expected scale and Y frames aligned, got %d vs %d", len(p.Scale.Frames), len(p.Y.Frames))
	}
	for i := 1; i < len(p.Scale.Frames); i += 3 {
		peak := p.Scale.Frames[i].Value
		if peak < leapMinScale || peak > leapMaxScale {
			t.Errorf("peak %d: scale %v outside [%v, %v]", i, peak, leapMinScale, leapMaxScale)
		}
	}

	cfg = testConfig(screens[0], 2000, 11)
	cfg.HasScale = false
	if p := planLeap(cfg); !p.Scale.Empty() {
		t.Error("Expected no scale track without scale handle")
	}
}

func TestCircleRadius(t *testing.T) {
	tests := []struct {
		name   string
		start  vmath.Point
		radius float64
	}{
		{"keeps_current_radius", vmath.Pt(220, 360), 60},
		{"min_radius_at_center", vmath.Pt(160, 360), 40},
		{"max_radius_far_away", vmath.Pt(0, 0), 96},
	}
	center := vmath.Pt(160, 360)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{X: tt.start[0], Y: tt.start[1], Size: 80, Speed: 2000, ScreenWidth: 400, ScreenHeight: 800}
			p := planCircle(cfg)
			if len(p.X.Frames) != circleSteps {
				t.Fatalf("Expected %d steps, got %d", circleSteps, len(p.X.Frames))
			}
			for i := range p.X.Frames {
				pt := vmath.Pt(p.X.Frames[i].Value, p.Y.Frames[i].Value)
				if d := vmath.Distance(center, pt); math.Abs(d-tt.radius) > 1e-6 {
					t.Errorf("step %d: distance %v, want %v", i, d, tt.radius)
				}
				if p.X.Frames[i].Duration != 180*time.Millisecond {
					t.Errorf("step %d: duration %v, want 180ms", i, p.X.Frames[i].Duration)
				}
			}
		})
	}
}

func TestRoundedRectPeriodic(t *testing.T) {
	rr := RoundedRect{Left: 36, Top: 36, Right: 284, Bottom: 684, R: 72}
	for i := 0; i <= 100; i++ {
		tv := float64(i) * 0.0137
		a, b, c := rr.PointAt(tv), rr.PointAt(tv+1), rr.PointAt(tv-1)
		if vmath.Distance(a, b) > 1e-6 || vmath.Distance(a, c) > 1e-6 {
			t.Errorf("t=%v: %v, %v, %v not periodic", tv, a, b, c)
		}
		if a[0] < rr.Left-testEps || a[0] > rr.Right+testEps || a[1] < rr.Top-testEps || a[1] > rr.Bottom+testEps {
			t.Errorf("t=%v: %v outside rect", tv, a)
		}
	}

	start := rr.PointAt(0)
	if vmath.Distance(start, vmath.Pt(rr.Left+rr.R, rr.Top)) > testEps {
		t.Errorf("Expected path start after top-left arc, got %v", start)
	}

	if got := rr.NearestT(rr.PointAt(0.25), 80); got != 0.25 {
		t.Errorf("Expected nearest t 0.25, got %v", got)
	}
}

func TestEdgesLapsOnce(t *testing.T) {
	cfg := testConfig(screens[0], 2000, 2)
	p := planEdges(cfg)
	if len(p.X.Frames) != edgesSteps+1 {
		t.Fatalf("Expected approach + %d steps, got %d", edgesSteps, len(p.X.Frames))
	}
	first := vmath.Pt(p.X.Frames[0].Value, p.Y.Frames[0].Value)
	last := vmath.Pt(p.X.Frames[edgesSteps].Value, p.Y.Frames[edgesSteps].Value)
	if vmath.Distance(first, last) > 1e-6 {
		t.Errorf("Expected lap to close at %v, got %v", first, last)
	}
	if p.X.Frames[0].Duration != 320*time.Millisecond {
		t.Errorf("Expected 320ms approach, got %v", p.X.Frames[0].Duration)
	}
}

func TestBouncePathReflection(t *testing.T) {
	vel := vmath.Pt(vmath.Normalize(0.6, 0.8))
	bounces := BouncePath(vmath.Pt(100, 200), vel, 320, 720, 1.6, 8)
	if len(bounces) == 0 {
		t.Fatal("Expected at least one bounce")
	}

	for i, b := range bounces {
		if b.Point[0] < 0 || b.Point[0] > 320 || b.Point[1] < 0 || b.Point[1] > 720 {
			t.Errorf("bounce %d: %v outside bounds", i, b.Point)
		}
		wantX, wantY := b.In[0], b.In[1]
		if b.HitVertical {
			wantX = -wantX
		}
		if b.HitHorizontal {
			wantY = -wantY
		}
		if b.Out[0] != wantX || b.Out[1] != wantY {
			t.Errorf("bounce %d: in %v out %v (vertical=%v horizontal=%v)", i, b.In, b.Out, b.HitVertical, b.HitHorizontal)
		}
		if i > 0 && bounces[i-1].Out != b.In {
			t.Errorf("bounce %d: velocity %v does not continue from %v", i, b.In, bounces[i-1].Out)
		}
	}
}

func TestBilliardsFollowsBouncePath(t *testing.T) {
	cfg := testConfig(screens[0], 1000, 9)
	p := planBilliards(cfg)
	if !p.X.Jump {
		t.Fatal("Expected billiards to start from the nudged position")
	}
	if d := p.X.Total() - 5000*time.Millisecond; d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("Expected ~5000ms, got %v", p.X.Total())
	}
	for i, f := range p.X.Frames {
		if f.Duration < motion.Ms(billiardsMinSegment)-time.Microsecond {
			t.Errorf("segment %d: %v below floor", i, f.Duration)
		}
	}
}

func TestBilliardsDegenerateScreen(t *testing.T) {
	cfg := Config{Size: 80, Speed: 1000, ScreenWidth: 80, ScreenHeight: 800}
	if p := planBilliards(cfg); !p.Empty() {
		t.Errorf("Expected empty plan on zero-width range, got %+v", p)
	}
}
