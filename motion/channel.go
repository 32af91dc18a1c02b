package motion

import (
	"time"

	"github.com/lixenwraith/critter/vmath"
)

// Channel is a mutable animated scalar owned by an animation driver
// Cancel freezes the channel at the last reached value, there is no rollback
type Channel interface {
	Value() float64
	Set(v float64)
	Play(tr Track)
	Cancel()
}

// Driver creates channels bound to its clock
type Driver interface {
	NewChannel(initial float64) Channel
}

// Handles groups the position and optional scale channels of one sprite
// Scale may be nil for drivers or callers that do not animate scale
type Handles struct {
	X     Channel
	Y     Channel
	Scale Channel
}

// NewHandles creates X/Y/Scale channels on a driver, scale starting at 1
func NewHandles(d Driver, at vmath.Point) Handles {
	return Handles{
		X:     d.NewChannel(at[0]),
		Y:     d.NewChannel(at[1]),
		Scale: d.NewChannel(1),
	}
}

// Read returns the current animated position
func (h Handles) Read() vmath.Point {
	return vmath.Pt(h.X.Value(), h.Y.Value())
}

// Place sets the position without animating
func (h Handles) Place(p vmath.Point) {
	h.X.Set(p[0])
	h.Y.Set(p[1])
}

// SetTarget moves linearly to p over d
func (h Handles) SetTarget(p vmath.Point, d time.Duration) {
	h.X.Play(Sequence(To(p[0], d, Linear)))
	h.Y.Play(Sequence(To(p[1], d, Linear)))
}

// SetSequence moves linearly through points, durations[i] for segment i
// Missing durations reuse the last one
func (h Handles) SetSequence(points []vmath.Point, durations []time.Duration) {
	if len(points) == 0 {
		return
	}
	xs := make([]Keyframe, len(points))
	ys := make([]Keyframe, len(points))
	var d time.Duration
	for i, p := range points {
		if i < len(durations) {
			d = durations[i]
		}
		xs[i] = To(p[0], d, Linear)
		ys[i] = To(p[1], d, Linear)
	}
	h.X.Play(Sequence(xs...))
	h.Y.Play(Sequence(ys...))
}

// Cancel stops position and scale animations in place
func (h Handles) Cancel() {
	h.X.Cancel()
	h.Y.Cancel()
	if h.Scale != nil {
		h.Scale.Cancel()
	}
}
