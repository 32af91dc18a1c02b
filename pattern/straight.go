package pattern

import (
	"github.com/lixenwraith/critter/motion"
)

// planStraight crosses the screen once from a random edge
func planStraight(cfg Config) Plan {
	return PlanStraightFrom(randomEdge(cfg.rng()), cfg)
}

// PlanStraightFrom crosses the screen from edge to the opposite side in one linear segment
// The perpendicular axis is fixed at a random in-bounds coordinate.
func PlanStraightFrom(edge Edge, cfg Config) Plan {
	r := cfg.rng()
	d := motion.Ms(frameMs(cfg.Speed * straightMultiplier))

	if edge.Horizontal() {
		startX, endX := -cfg.Size, cfg.ScreenWidth+cfg.Size
		if edge == EdgeRight {
			startX, endX = endX, startX
		}
		return Plan{
			X: motion.JumpThen(startX, motion.To(endX, d, motion.Linear)),
			Y: motion.SetTo(r.Float64() * cfg.MaxY()),
		}
	}

	startY, endY := -cfg.Size, cfg.ScreenHeight+cfg.Size
	if edge == EdgeBottom {
		startY, endY = endY, startY
	}
	return Plan{
		X: motion.SetTo(r.Float64() * cfg.MaxX()),
		Y: motion.JumpThen(startY, motion.To(endY, d, motion.Linear)),
	}
}
