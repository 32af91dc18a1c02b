package pattern

import (
	"math"

	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

const (
	randomMinPoints   = 6
	randomExtraPoints = 9 // 6-14 interior points
	randomMinSegment  = 120.0
)

// planRandom loops start -> random interior points -> start forever
// Segment time scales with distance relative to half the screen diagonal.
func planRandom(cfg Config) Plan {
	r := cfg.rng()
	maxX, maxY := cfg.MaxX(), cfg.MaxY()
	start := cfg.Start()

	n := randomMinPoints + r.IntN(randomExtraPoints)
	points := make([]vmath.Point, 0, n+1)
	for i := 0; i < n; i++ {
		x := r.Float64() * maxX
		y := r.Float64() * maxY
		points = append(points, vmath.Pt(x, y))
	}
	points = append(points, start)

	baseDist := math.Hypot(cfg.ScreenWidth, cfg.ScreenHeight) / 2
	durations := make([]float64, len(points))
	prev := start
	for i, p := range points {
		scaled := cfg.Speed
		if baseDist > 0 {
			scaled = vmath.Distance(prev, p) / baseDist * cfg.Speed
		}
		durations[i] = math.Max(randomMinSegment, scaled)
		prev = p
	}

	x, y := linearTracks(points, durations, motion.Linear)
	x.Loop, y.Loop = true, true
	return Plan{X: x, Y: y}
}
