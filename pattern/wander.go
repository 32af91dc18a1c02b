package pattern

import (
	"math"

	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

const (
	wanderHops       = 3
	wanderTurn       = math.Pi * 0.9 // Heading change range, about +/-81 degrees
	wanderBand       = 0.2           // Entry/exit band as a share of the travel range
	wanderMinSegment = 80.0
)

// planWander enters from one side, takes a few drifting hops, and leaves by another
func planWander(cfg Config) Plan {
	r := cfg.rng()
	maxX, maxY := cfg.MaxX(), cfg.MaxY()
	center := vmath.Pt(maxX/2, maxY/2)
	margin := math.Max(8, cfg.Size*0.4)
	offset := cfg.Size * 2

	startOutside, entry := sideCrossing(randomEdge(r), r, cfg, offset)
	exitOutside, approach := sideCrossing(randomEdge(r), r, cfg, offset)

	loX, hiX := inset(maxX, margin)
	loY, hiY := inset(maxY, margin)
	minStep := math.Max(cfg.Size*1.5, 40)
	maxStep := math.Max(cfg.Size*4, 120)

	points := make([]vmath.Point, 0, wanderHops+3)
	points = append(points, entry)
	heading := vmath.Heading(entry, center)
	last := entry
	for i := 0; i < wanderHops; i++ {
		heading += (r.Float64() - 0.5) * wanderTurn
		dist := minStep + r.Float64()*(maxStep-minStep)
		next := vmath.Polar(last, heading, dist)
		next = vmath.Pt(vmath.Clamp(next[0], loX, hiX), vmath.Clamp(next[1], loY, hiY))
		points = append(points, next)
		last = next
	}
	points = append(points, approach, exitOutside)

	durations := vmath.SegmentDurations(startOutside, points, cfg.Speed*wanderMultiplier, wanderMinSegment)
	x, y := linearTracks(points, durations, motion.Linear)
	x.Jump, x.From = true, startOutside[0]
	y.Jump, y.From = true, startOutside[1]
	return Plan{X: x, Y: y}
}

// sideCrossing returns a point offset outside the edge and its matching point inside the edge band
func sideCrossing(edge Edge, r vmath.Rand, cfg Config, offset float64) (outside, inside vmath.Point) {
	maxX, maxY := cfg.MaxX(), cfg.MaxY()
	switch edge {
	case EdgeLeft:
		outside = vmath.Pt(-offset, r.Float64()*maxY)
		inside = vmath.Pt(r.Float64()*maxX*wanderBand, vmath.Clamp(outside[1], 0, maxY))
	case EdgeRight:
		outside = vmath.Pt(cfg.ScreenWidth+offset, r.Float64()*maxY)
		inside = vmath.Pt(maxX-r.Float64()*maxX*wanderBand, vmath.Clamp(outside[1], 0, maxY))
	case EdgeTop:
		outside = vmath.Pt(r.Float64()*maxX, -offset)
		inside = vmath.Pt(vmath.Clamp(outside[0], 0, maxX), r.Float64()*maxY*wanderBand)
	default:
		outside = vmath.Pt(r.Float64()*maxX, cfg.ScreenHeight+offset)
		inside = vmath.Pt(vmath.Clamp(outside[0], 0, maxX), maxY-r.Float64()*maxY*wanderBand)
	}
	return outside, inside
}
