package pattern

import (
	"math"

	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

const (
	circleSteps      = 40
	circleMinStepMs  = 30.0
	circleMinRadius  = 40.0
	circleRadiusSafe = 20.0
)

// planCircle orbits the screen center once, keeping the current radius where it fits
func planCircle(cfg Config) Plan {
	maxX, maxY := cfg.MaxX(), cfg.MaxY()
	margin := math.Max(12, cfg.Size*0.8)
	loX, hiX := inset(maxX, margin)
	loY, hiY := inset(maxY, margin)

	c := vmath.Pt(vmath.Clamp(maxX/2, loX, hiX), vmath.Clamp(maxY/2, loY, hiY))
	start := cfg.Start()
	raw := vmath.Distance(c, start)

	maxR := math.Max(circleRadiusSafe, math.Min(
		math.Min(c[0]-margin, maxX-margin-c[0]),
		math.Min(c[1]-margin, maxY-margin-c[1]),
	))
	radius := vmath.Clamp(raw, math.Min(circleMinRadius, maxR), maxR)
	angle := vmath.Heading(c, start)

	points := CirclePoints(c, radius, angle, circleSteps)
	for i, p := range points {
		points[i] = vmath.Pt(vmath.Clamp(p[0], loX, hiX), vmath.Clamp(p[1], loY, hiY))
	}

	per := math.Max(circleMinStepMs, vmath.RoundMs(cfg.Speed*circleMultiplier/circleSteps))
	durations := make([]float64, len(points))
	for i := range durations {
		durations[i] = per
	}
	x, y := linearTracks(points, durations, motion.InOutQuad)
	return Plan{X: x, Y: y}
}

// CirclePoints returns steps points around c, the first one step past start angle
// and the last back at it
func CirclePoints(c vmath.Point, radius, start float64, steps int) []vmath.Point {
	if steps < 1 {
		return nil
	}
	points := make([]vmath.Point, steps)
	for i := 1; i <= steps; i++ {
		a := start + float64(i)/float64(steps)*2*math.Pi
		points[i-1] = vmath.Polar(c, a, radius)
	}
	return points
}
