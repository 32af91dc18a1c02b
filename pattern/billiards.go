package pattern

import (
	"math"

	"github.com/lixenwraith/critter/motion"
	"github.com/lixenwraith/critter/vmath"
)

const (
	billiardsBounces     = 8
	billiardsMinSegment  = 90.0
	billiardsMinAxis     = 0.24 // Reject near axis-aligned directions
	billiardsDirTries    = 16
	billiardsFallbackVX  = 0.72
	billiardsFallbackVY  = 0.69
	billiardsMinEpsilon  = 0.25
	billiardsEpsilonSize = 0.02
)

// Bounce is one wall contact of a billiards path
type Bounce struct {
	Point         vmath.Point
	In, Out       vmath.Point // Velocity before and after reflection
	HitVertical   bool        // Left or right wall, X reverses
	HitHorizontal bool        // Top or bottom wall, Y reverses
}

// BouncePath traces a ball from start with velocity vel inside [0,maxX]x[0,maxY]
// Each contact flips the velocity component normal to the wall and steps eps back inside.
// Tracing stops after limit contacts or when no wall is reachable.
func BouncePath(start, vel vmath.Point, maxX, maxY, eps float64, limit int) []Bounce {
	pos := start
	out := make([]Bounce, 0, limit)
	for i := 0; i < limit; i++ {
		t := math.Min(
			vmath.TimeToWall(pos[0], vel[0], maxX),
			vmath.TimeToWall(pos[1], vel[1], maxY),
		)
		if math.IsInf(t, 0) || math.IsNaN(t) || t <= 0 {
			break
		}

		pos = vmath.ClampPoint(pos.Add(vel.Mul(t)), 0, 0, maxX, maxY)
		b := Bounce{
			Point:         pos,
			In:            vel,
			HitVertical:   math.Abs(pos[0]) <= eps || math.Abs(pos[0]-maxX) <= eps,
			HitHorizontal: math.Abs(pos[1]) <= eps || math.Abs(pos[1]-maxY) <= eps,
		}
		if !b.HitVertical && !b.HitHorizontal {
			b.Out = vel
			out = append(out, b)
			break
		}
		if b.HitVertical {
			vel = vmath.Pt(vmath.ReflectAxisX(vel[0], vel[1]))
		}
		if b.HitHorizontal {
			vel = vmath.Pt(vmath.ReflectAxisY(vel[0], vel[1]))
		}
		b.Out = vel
		out = append(out, b)

		pos = vmath.ClampPoint(pos.Add(vel.Mul(eps)), 0, 0, maxX, maxY)
	}
	return out
}

// billiardsDirection draws a unit direction away from both axes
func billiardsDirection(r vmath.Rand) vmath.Point {
	for i := 0; i < billiardsDirTries; i++ {
		a := r.Float64() * 2 * math.Pi
		v := vmath.Pt(math.Cos(a), math.Sin(a))
		if math.Abs(v[0]) >= billiardsMinAxis && math.Abs(v[1]) >= billiardsMinAxis {
			return v
		}
	}
	return vmath.Pt(billiardsFallbackVX, billiardsFallbackVY)
}

// planBilliards travels in straight lines, rebounding off the screen bounds
func planBilliards(cfg Config) Plan {
	maxX, maxY := cfg.MaxX(), cfg.MaxY()
	if maxX <= 0 || maxY <= 0 {
		return Plan{}
	}
	r := cfg.rng()
	totalMs := cfg.Speed * billiardsMultiplier
	eps := math.Max(billiardsMinEpsilon, cfg.Size*billiardsEpsilonSize)

	vel := billiardsDirection(r)
	start := vmath.ClampPoint(cfg.Start(), 0, 0, maxX, maxY)
	// Nudge off the border so the first contact is not immediate
	start = vmath.ClampPoint(start.Add(vel.Mul(eps)), 0, 0, maxX, maxY)

	bounces := BouncePath(start, vel, maxX, maxY, eps, billiardsBounces)
	if len(bounces) == 0 {
		d := motion.Ms(frameMs(totalMs))
		return Plan{
			X: motion.JumpThen(start[0], motion.To(r.Float64()*maxX, d, motion.Linear)),
			Y: motion.JumpThen(start[1], motion.To(r.Float64()*maxY, d, motion.Linear)),
		}
	}

	points := make([]vmath.Point, len(bounces))
	for i, b := range bounces {
		points[i] = b.Point
	}
	durations := vmath.SegmentDurations(start, points, totalMs, billiardsMinSegment)
	x, y := linearTracks(points, durations, motion.Linear)
	x.Jump, x.From = true, start[0]
	y.Jump, y.From = true, start[1]
	return Plan{X: x, Y: y}
}
