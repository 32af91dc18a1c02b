// Package facing resolves sprite orientation from asset artwork and travel direction
// Screen angles: 0 rad faces right, +π/2 faces down.
package facing

import (
	"math"
	"strings"

	"github.com/lixenwraith/critter/vmath"
)

// AssetCode is a twemoji hex code such as "1f42d"
type AssetCode string

// Direction is the way an asset's artwork faces when unrotated
type Direction int

const (
	Unknown Direction = iota
	Left
	Up
)

var upFacing = map[AssetCode]struct{}{
	"1f41b": {}, // bug
	"1f41c": {}, // ant
	"1f41d": {}, // bee
	"1f41e": {}, // ladybug
	"1f997": {}, // cricket
	"1fab3": {}, // cockroach
	"1f577": {}, // spider
}

// Normalize strips a trailing .svg and lowercases the code
func (c AssetCode) Normalize() AssetCode {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	return AssetCode(strings.TrimSuffix(s, ".svg"))
}

// Direction returns the artwork orientation, Unknown for empty codes
func (c AssetCode) Direction() Direction {
	n := c.Normalize()
	if n == "" {
		return Unknown
	}
	if _, ok := upFacing[n]; ok {
		return Up
	}
	return Left
}

// Offset returns the rotation that aligns the artwork with a heading of 0
// Left-facing art gets -π so travelling left (π) renders unrotated.
// Up-facing art gets +π/2. Unknown assets are treated as left-facing.
func Offset(c AssetCode) float64 {
	if c.Direction() == Up {
		return math.Pi / 2
	}
	return -math.Pi
}

// Tracker follows the heading of a moving sprite from observed positions
type Tracker struct {
	Size     float64
	Vertical bool // Only up/down, for jumpers

	heading float64
	prev    vmath.Point
	primed  bool
}

// NewTracker creates a tracker for a sprite of the given size
func NewTracker(size float64) *Tracker {
	return &Tracker{Size: size}
}

// Observe feeds a new position, returns the current heading
// Sub-pixel noise and teleports between cycles are ignored.
func (t *Tracker) Observe(p vmath.Point) float64 {
	if !t.primed {
		t.prev, t.primed = p, true
		return t.heading
	}
	d := p.Sub(t.prev)
	t.prev = p

	if t.Vertical {
		dy := math.Abs(d[1])
		if dy < 0.5 || dy > t.Size*10 {
			return t.heading
		}
		if d[1] > 0 {
			t.heading = math.Pi / 2
		} else {
			t.heading = -math.Pi / 2
		}
		return t.heading
	}

	dist := d.Len()
	if dist < 0.5 || dist > t.Size*8 {
		return t.heading
	}
	t.heading = math.Atan2(d[1], d[0])
	return t.heading
}

// Heading returns the last accepted heading
func (t *Tracker) Heading() float64 {
	return t.heading
}

// SetHeading forces a heading, used when a critter knows its initial direction
func (t *Tracker) SetHeading(a float64) {
	t.heading = a
}

// Reset forgets the previous position so the next observation only primes
func (t *Tracker) Reset() {
	t.primed = false
}

// Rotation sums heading, artwork offset, jitter and a fixed base rotation
func Rotation(heading, offset, jitter, base float64) float64 {
	return heading + offset + jitter + base
}
