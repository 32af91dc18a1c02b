package pattern

import (
	"math"

	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

const (
	leapMinCount   = 3
	leapExtraCount = 3 // 3-5 leaps
	leapMinPause   = 160.0
	leapMinMove    = 240.0
	leapMinSegment = 110.0
	leapUpShare    = 0.45
	leapMinScale   = 1.18
	leapMaxScale   = 1.55
)

// planLeap hops between targets on a short arc, pausing between hops
// With a scale channel the sprite swells toward the apex.
func planLeap(cfg Config) Plan {
	r := cfg.rng()
	maxX, maxY := cfg.MaxX(), cfg.MaxY()
	margin := math.Max(8, cfg.Size*0.4)
	loY, hiY := inset(maxY, margin)

	n := leapMinCount + r.IntN(leapExtraCount)
	targets := make([]vmath.Point, n)
	for i := range targets {
		targets[i] = interiorPoint(r, maxX, maxY, margin)
	}

	totalMs := cfg.Speed * leapMultiplier
	pauseMs := math.Max(leapMinPause, vmath.RoundMs(cfg.Speed*0.35))
	moveMs := math.Max(leapMinMove, totalMs-pauseMs*float64(n))

	start := cfg.Start()
	durations := vmath.SegmentDurations(start, targets, moveMs, leapMinSegment)
	pause := motion.Ms(pauseMs)
	shortSide := math.Max(1, math.Min(cfg.ScreenWidth, cfg.ScreenHeight))

	xs := make([]motion.Keyframe, 0, 2*n)
	ys := make([]motion.Keyframe, 0, 3*n)
	var scales []motion.Keyframe
	if cfg.HasScale {
		scales = make([]motion.Keyframe, 0, 3*n)
	}

	last := start
	for i, t := range targets {
		d := durations[i]
		upMs := math.Max(1, vmath.RoundMs(d*leapUpShare))
		downMs := math.Max(1, d-upMs)
		up, down := motion.Ms(upMs), motion.Ms(downMs)

		dist := vmath.Distance(last, t)
		arc := vmath.Clamp(dist*0.25, cfg.Size*0.55, cfg.Size*1.8)
		peakY := vmath.Clamp(math.Min(last[1], t[1])-arc, loY, hiY)
		peakScale := vmath.Clamp(leapMinScale+math.Min(0.4, dist/shortSide)*0.6, leapMinScale, leapMaxScale)

		xs = append(xs,
			motion.Hold(last[0], pause),
			motion.To(t[0], motion.Ms(frameMs(d)), motion.OutCubic),
		)
		ys = append(ys,
			motion.Hold(last[1], pause),
			motion.To(peakY, up, motion.OutQuad),
			motion.To(t[1], down, motion.InQuad),
		)
		if cfg.HasScale {
			scales = append(scales,
				motion.Hold(1, pause),
				motion.To(peakScale, up, motion.OutQuad),
				motion.To(1, down, motion.InQuad),
			)
		}
		last = t
	}

	p := Plan{X: motion.Sequence(xs...), Y: motion.Sequence(ys...)}
	if len(scales) > 0 {
		p.Scale = motion.Sequence(scales...)
	}
	return p
}
