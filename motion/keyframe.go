package motion

import (
	"math"
	"time"
)

// Keyframe is one tween segment of a track
// The channel holds its previous value for Delay, then moves to Value over Duration.
// With Spring set the segment is a damped spring and Duration is its settle window.
type Keyframe struct {
	Value    float64
	Duration time.Duration
	Delay    time.Duration
	Ease     Ease
	Spring   *Spring
}

// Span returns the wall-clock length of the keyframe including its delay
func (k Keyframe) Span() time.Duration {
	return k.Delay + k.Duration
}

// Track is a scheduled program for a single scalar channel
type Track struct {
	Jump   bool    // Set the channel to From before the first frame
	From   float64 // Start value when Jump is set
	Frames []Keyframe
	Loop   bool // Repeat forever
	Yoyo   bool // With Loop, alternate iterations play backwards
}

// Total returns the length of one pass through the frames
func (t Track) Total() time.Duration {
	var total time.Duration
	for _, f := range t.Frames {
		total += f.Span()
	}
	return total
}

// Final returns the value the track settles on given the channel's starting value
func (t Track) Final(current float64) float64 {
	if len(t.Frames) > 0 {
		return t.Frames[len(t.Frames)-1].Value
	}
	if t.Jump {
		return t.From
	}
	return current
}

// Empty reports whether playing the track would change nothing
func (t Track) Empty() bool {
	return !t.Jump && len(t.Frames) == 0
}

// --- Constructors ---

// Ms converts fractional milliseconds to a Duration, rounded to the nanosecond
func Ms(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}

// ToMs converts a Duration to fractional milliseconds
func ToMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// To builds an eased tween keyframe
func To(value float64, d time.Duration, ease Ease) Keyframe {
	return Keyframe{Value: value, Duration: d, Ease: ease}
}

// Hold keeps a value for d, a motionless pause segment
func Hold(value float64, d time.Duration) Keyframe {
	return Keyframe{Value: value, Duration: d, Ease: Linear}
}

// SpringTo builds a spring keyframe settling within the spring's settle window
func SpringTo(value float64, s Spring, from float64) Keyframe {
	sp := s
	return Keyframe{Value: value, Duration: sp.Settle(value - from), Spring: &sp}
}

// Sequence builds a non-looping track continuing from the channel's current value
func Sequence(frames ...Keyframe) Track {
	return Track{Frames: frames}
}

// JumpThen builds a track that first sets the channel to from
func JumpThen(from float64, frames ...Keyframe) Track {
	return Track{Jump: true, From: from, Frames: frames}
}

// SetTo builds a track that only sets the value
func SetTo(v float64) Track {
	return Track{Jump: true, From: v}
}

// Repeat builds an infinitely looping track
func Repeat(yoyo bool, frames ...Keyframe) Track {
	return Track{Frames: frames, Loop: true, Yoyo: yoyo}
}
