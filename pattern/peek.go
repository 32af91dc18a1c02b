package pattern

import (
	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

const (
	peekDepthFactor = 2.0 // Depth in sizes
	peekInShare     = 0.3
	peekHoldShare   = 0.5
	peekOutShare    = 0.2
)

// planPeek pops in from a random edge, holds, and retreats
func planPeek(cfg Config) Plan {
	r := cfg.rng()
	return peekFrom(randomEdge(r), r, cfg)
}

func peekFrom(edge Edge, r vmath.Rand, cfg Config) Plan {
	depth := cfg.Size * peekDepthFactor
	in := motion.Ms(frameMs(cfg.Speed * peekInShare))
	hold := motion.Ms(cfg.Speed * peekHoldShare)
	out := motion.Ms(frameMs(cfg.Speed * peekOutShare))
	if hold < 0 {
		hold = 0
	}

	var hidden, shown float64
	switch edge {
	case EdgeLeft, EdgeTop:
		hidden, shown = -cfg.Size, depth
	case EdgeRight:
		hidden, shown = cfg.ScreenWidth+cfg.Size, cfg.ScreenWidth-depth
	default:
		hidden, shown = cfg.ScreenHeight+cfg.Size, cfg.ScreenHeight-depth
	}

	moving := motion.JumpThen(hidden,
		motion.To(shown, in, motion.OutQuad),
		motion.Keyframe{Value: hidden, Delay: hold, Duration: out, Ease: motion.InQuad},
	)

	if edge.Horizontal() {
		return Plan{X: moving, Y: motion.SetTo(r.Float64() * cfg.MaxY())}
	}
	return Plan{X: motion.SetTo(r.Float64() * cfg.MaxX()), Y: moving}
}
