package motion

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// springFPS is the sampling rate of precomputed spring responses
	springFPS = 120

	// springRestThreshold is the displacement considered settled, in value units
	springRestThreshold = 0.01

	// springMaxSettle bounds the settle window of lightly damped springs
	springMaxSettle = 3 * time.Second

	// springMinSettle keeps settle windows positive for zero-length moves
	springMinSettle = 16 * time.Millisecond

	// springStiffnessFrequency is sqrt(stiffness/mass) for stiffness 100, mass 1
	springStiffnessFrequency = 10.0
)

// Spring parameterizes a damped harmonic oscillator
type Spring struct {
	Frequency float64 // Angular frequency, rad/s
	Ratio     float64 // Damping ratio, < 1 overshoots
}

// SpringDamping builds a spring from a damping coefficient at stiffness 100, mass 1
// ratio = c / (2*sqrt(k*m)) = c / 20
func SpringDamping(damping float64) Spring {
	return Spring{Frequency: springStiffnessFrequency, Ratio: damping / (2 * springStiffnessFrequency)}
}

// Settle returns the time until a move of the given size stays within the rest threshold
func (s Spring) Settle(delta float64) time.Duration {
	decay := s.Ratio * s.Frequency
	d := math.Abs(delta)
	if d <= springRestThreshold {
		return springMinSettle
	}
	if decay <= 0 {
		return springMaxSettle
	}
	secs := math.Log(d/springRestThreshold) / decay
	out := time.Duration(secs * float64(time.Second))
	if out > springMaxSettle {
		return springMaxSettle
	}
	if out < springMinSettle {
		return springMinSettle
	}
	return out
}

// response returns the normalized step response (0 -> 1) at elapsed t
func (s Spring) response(t time.Duration) float64 {
	curve := springCurve(s)
	if t <= 0 {
		return 0
	}
	pos := t.Seconds() * springFPS
	i := int(pos)
	if i >= len(curve)-1 {
		return 1
	}
	frac := pos - float64(i)
	return curve[i] + (curve[i+1]-curve[i])*frac
}

var (
	springCurvesMu sync.Mutex
	springCurves   = make(map[Spring][]float64)
)

// springCurve integrates a unit step once per parameter set
// Springs are linear so any from/to pair scales this curve
func springCurve(s Spring) []float64 {
	springCurvesMu.Lock()
	defer springCurvesMu.Unlock()

	if c, ok := springCurves[s]; ok {
		return c
	}

	n := int(springMaxSettle.Seconds()*springFPS) + 1
	curve := make([]float64, n)
	sp := harmonica.NewSpring(harmonica.FPS(springFPS), s.Frequency, s.Ratio)
	pos, vel := 0.0, 0.0
	for i := 1; i < n; i++ {
		pos, vel = sp.Update(pos, vel, 1)
		curve[i] = pos
	}
	springCurves[s] = curve
	return curve
}
