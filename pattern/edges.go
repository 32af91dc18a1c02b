package pattern

import (
	"math"

	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

const (
	edgesSteps       = 70
	edgesSamples     = 80
	edgesMinApproach = 90.0
	edgesMaxApproach = 320.0
	edgesMinLoop     = 200.0
	edgesMinStepMs   = 20.0
)

// RoundedRect is a closed path along a rectangle with rounded corners
// The path starts on the top edge just after the top-left arc and runs clockwise.
type RoundedRect struct {
	Left, Top, Right, Bottom float64
	R                        float64
}

// PointAt returns the point at normalized arc length t, periodic with period 1
func (rr RoundedRect) PointAt(t float64) vmath.Point {
	w := math.Max(1, rr.Right-rr.Left)
	h := math.Max(1, rr.Bottom-rr.Top)
	r := vmath.Clamp(rr.R, 0, math.Min(w, h)/2)

	topLen := math.Max(0, w-2*r)
	sideLen := math.Max(0, h-2*r)
	arc := math.Pi / 2 * r
	total := 2*(topLen+sideLen) + 4*arc

	d := math.Mod(math.Mod(t, 1)+1, 1) * total
	take := func(length float64) (float64, bool) {
		used := math.Min(length, d)
		d -= used
		return used, used < length
	}
	corner := func(cx, cy, from, used float64) vmath.Point {
		a := from
		if arc > 0 {
			a += used / arc * (math.Pi / 2)
		}
		return vmath.Polar(vmath.Pt(cx, cy), a, r)
	}

	if u, in := take(topLen); in {
		return vmath.Pt(rr.Left+r+u, rr.Top)
	}
	if u, in := take(arc); in {
		return corner(rr.Right-r, rr.Top+r, -math.Pi/2, u)
	}
	if u, in := take(sideLen); in {
		return vmath.Pt(rr.Right, rr.Top+r+u)
	}
	if u, in := take(arc); in {
		return corner(rr.Right-r, rr.Bottom-r, 0, u)
	}
	if u, in := take(topLen); in {
		return vmath.Pt(rr.Right-r-u, rr.Bottom)
	}
	if u, in := take(arc); in {
		return corner(rr.Left+r, rr.Bottom-r, math.Pi/2, u)
	}
	if u, in := take(sideLen); in {
		return vmath.Pt(rr.Left, rr.Bottom-r-u)
	}
	u, _ := take(arc)
	return corner(rr.Left+r, rr.Top+r, math.Pi, u)
}

// NearestT returns the sampled t whose point is closest to p
func (rr RoundedRect) NearestT(p vmath.Point, samples int) float64 {
	if samples < 1 {
		return 0
	}
	best, bestD := 0.0, math.Inf(1)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		q := rr.PointAt(t)
		if d := q.Sub(p).LenSqr(); d < bestD {
			best, bestD = t, d
		}
	}
	return best
}

// edgesRect builds the inset track for a screen
func edgesRect(cfg Config) RoundedRect {
	maxX, maxY := cfg.MaxX(), cfg.MaxY()
	in := math.Max(10, cfg.Size*0.45)
	left, right := inset(maxX, in)
	top, bottom := inset(maxY, in)
	r := vmath.Clamp(cfg.Size*0.9, 18, math.Min((right-left)/2, (bottom-top)/2))
	return RoundedRect{Left: left, Top: top, Right: right, Bottom: bottom, R: r}
}

// planEdges glides to the nearest point of the inset rounded rectangle and laps it once
func planEdges(cfg Config) Plan {
	rect := edgesRect(cfg)
	maxX, maxY := cfg.MaxX(), cfg.MaxY()
	t0 := rect.NearestT(cfg.Start(), edgesSamples)

	nearest := rect.PointAt(t0)
	points := make([]vmath.Point, 0, edgesSteps+1)
	points = append(points, nearest)
	for i := 1; i <= edgesSteps; i++ {
		points = append(points, rect.PointAt(t0+float64(i)/edgesSteps))
	}
	for i, p := range points {
		points[i] = vmath.ClampPoint(p, 0, 0, maxX, maxY)
	}

	totalMs := cfg.Speed * edgesMultiplier
	approachMs := math.Min(edgesMaxApproach, math.Max(edgesMinApproach, vmath.RoundMs(totalMs*0.18)))
	loopMs := math.Max(edgesMinLoop, totalMs-approachMs)
	per := motion.Ms(math.Max(edgesMinStepMs, vmath.RoundMs(loopMs/edgesSteps)))
	approach := motion.Ms(approachMs)

	xs := make([]motion.Keyframe, len(points))
	ys := make([]motion.Keyframe, len(points))
	for i, p := range points {
		d, ease := per, motion.Linear
		if i == 0 {
			d, ease = approach, motion.OutQuad
		}
		xs[i] = motion.To(p[0], d, ease)
		ys[i] = motion.To(p[1], d, ease)
	}
	return Plan{X: motion.Sequence(xs...), Y: motion.Sequence(ys...)}
}
