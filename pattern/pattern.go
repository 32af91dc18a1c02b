package pattern

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

// Config is the input of every pattern function
// X/Y/Scale are the sprite's current animated values, read for the start point.
// Speed is in ms: the desired duration of one characteristic segment, not a velocity.
type Config struct {
	X, Y         float64
	Scale        float64
	HasScale     bool
	Size         float64
	Speed        float64
	ScreenWidth  float64
	ScreenHeight float64
	Rand         vmath.Rand // nil uses the process-wide generator
}

// MaxX returns the horizontal travel range, never negative
func (c Config) MaxX() float64 { return vmath.Span(c.ScreenWidth, c.Size) }

// MaxY returns the vertical travel range, never negative
func (c Config) MaxY() float64 { return vmath.Span(c.ScreenHeight, c.Size) }

// Start returns the current position
func (c Config) Start() vmath.Point { return vmath.Pt(c.X, c.Y) }

func (c Config) rng() vmath.Rand {
	if c.Rand == nil {
		return globalRand{}
	}
	return c.Rand
}

// globalRand adapts math/rand/v2 top-level functions
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// Plan is the per-channel keyframe program a pattern computes
// A zero track leaves its channel untouched.
type Plan struct {
	X     motion.Track
	Y     motion.Track
	Scale motion.Track
}

// Func computes a plan from the sprite's current state, without side effects
type Func func(cfg Config) Plan

// Empty reports whether the plan schedules nothing
func (p Plan) Empty() bool {
	return p.X.Empty() && p.Y.Empty() && p.Scale.Empty()
}

// Duration returns the one-pass length of the longest track
func (p Plan) Duration() float64 {
	return math.Max(motion.ToMs(p.X.Total()), math.Max(motion.ToMs(p.Y.Total()), motion.ToMs(p.Scale.Total())))
}

// Apply schedules the plan on the given handles
// The scale track is dropped when the handles carry no scale channel
func (p Plan) Apply(h motion.Handles) {
	if !p.X.Empty() && h.X != nil {
		h.X.Play(p.X)
	}
	if !p.Y.Empty() && h.Y != nil {
		h.Y.Play(p.Y)
	}
	if !p.Scale.Empty() && h.Scale != nil {
		h.Scale.Play(p.Scale)
	}
}

// Edge identifies a screen side for patterns that enter or exit the frame
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// randomEdge draws one of the four edges uniformly
func randomEdge(r vmath.Rand) Edge {
	return Edge(r.IntN(4))
}

// Horizontal reports whether the edge is left or right
func (e Edge) Horizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}

// --- Shared helpers ---

// minFrameMs keeps every emitted segment strictly positive
const minFrameMs = 1.0

// frameMs converts a computed duration to a keyframe duration
// NaN, infinite and sub-millisecond values degrade to the minimum
func frameMs(ms float64) float64 {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < minFrameMs {
		return minFrameMs
	}
	return ms
}

// inset returns [margin, span-margin], collapsing to the midpoint when the span is too small
func inset(span, margin float64) (lo, hi float64) {
	lo, hi = margin, span-margin
	if hi < lo {
		mid := span / 2
		return mid, mid
	}
	return lo, hi
}

// interiorPoint draws a random point and clamps it to the margin box
func interiorPoint(r vmath.Rand, maxX, maxY, margin float64) vmath.Point {
	loX, hiX := inset(maxX, margin)
	loY, hiY := inset(maxY, margin)
	x := vmath.Clamp(r.Float64()*maxX, loX, hiX)
	y := vmath.Clamp(r.Float64()*maxY, loY, hiY)
	return vmath.Pt(x, y)
}

// linearTracks builds matching X/Y tracks through points with per-segment durations
func linearTracks(points []vmath.Point, durationsMs []float64, ease motion.Ease) (x, y motion.Track) {
	xs := make([]motion.Keyframe, len(points))
	ys := make([]motion.Keyframe, len(points))
	for i, p := range points {
		d := motion.Ms(frameMs(durationsMs[i]))
		xs[i] = motion.To(p[0], d, ease)
		ys[i] = motion.To(p[1], d, ease)
	}
	return motion.Sequence(xs...), motion.Sequence(ys...)
}
