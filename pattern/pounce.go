package pattern

import (
	"math"

	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

const (
	pounceMinCount    = 2
	pounceExtraCount  = 2 // 2-3 pounces
	pounceMinMove     = 50.0
	pounceMoveShare   = 0.35
	pounceMaxMoveTime = 800.0
)

// planPounce waits in place, then darts to a nearby target, a few times per cycle
func planPounce(cfg Config) Plan {
	return PlanPounceN(cfg, pounceMinCount+cfg.rng().IntN(pounceExtraCount))
}

// PlanPounceN builds a pounce plan with exactly n targets
// Most of the cycle is spent holding; the darts share a short move budget by distance.
func PlanPounceN(cfg Config, n int) Plan {
	if n < 1 {
		n = 1
	}
	r := cfg.rng()
	maxX, maxY := cfg.MaxX(), cfg.MaxY()
	margin := math.Max(8, cfg.Size*0.4)

	targets := make([]vmath.Point, n)
	for i := range targets {
		targets[i] = interiorPoint(r, maxX, maxY, margin)
	}

	totalMs := cfg.Speed * pounceMultiplier
	moveMs := vmath.Clamp(vmath.RoundMs(cfg.Speed*pounceMoveShare), pounceMinMove*float64(n), pounceMaxMoveTime)
	pauseMs := math.Max(0, math.Floor((totalMs-moveMs)/float64(n)))

	start := cfg.Start()
	moves := vmath.SegmentDurations(start, targets, moveMs, pounceMinMove)

	xs := make([]motion.Keyframe, 0, 2*n)
	ys := make([]motion.Keyframe, 0, 2*n)
	last := start
	for i, t := range targets {
		if pauseMs > 0 {
			xs = append(xs, motion.Hold(last[0], motion.Ms(pauseMs)))
			ys = append(ys, motion.Hold(last[1], motion.Ms(pauseMs)))
		}
		d := motion.Ms(frameMs(moves[i]))
		xs = append(xs, motion.To(t[0], d, motion.Linear))
		ys = append(ys, motion.To(t[1], d, motion.Linear))
		last = t
	}
	return Plan{X: motion.Sequence(xs...), Y: motion.Sequence(ys...)}
}
