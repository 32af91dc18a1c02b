package motion

import (
	"time"
)

// Sample evaluates a track at elapsed time t for a channel that held current when playback began
// done reports that a non-looping track has finished and the value is final
func Sample(tr Track, current float64, t time.Duration) (value float64, done bool) {
	base := current
	if tr.Jump {
		base = tr.From
	}
	if len(tr.Frames) == 0 {
		return base, true
	}

	total := tr.Total()
	if total <= 0 {
		return tr.Frames[len(tr.Frames)-1].Value, !tr.Loop
	}
	if t < 0 {
		t = 0
	}

	if !tr.Loop {
		if t >= total {
			return tr.Frames[len(tr.Frames)-1].Value, true
		}
		return sampleForward(tr.Frames, base, t), false
	}

	iter := t / total
	local := t % total
	if tr.Yoyo && iter%2 == 1 {
		// Backward pass mirrors the forward pass in time
		return sampleForward(tr.Frames, base, total-local), false
	}
	return sampleForward(tr.Frames, base, local), false
}

// sampleForward walks the frames starting from base
func sampleForward(frames []Keyframe, base float64, t time.Duration) float64 {
	prev := base
	for _, f := range frames {
		if t < f.Delay {
			return prev
		}
		t -= f.Delay
		if t < f.Duration {
			return interpolate(prev, f, t)
		}
		t -= f.Duration
		prev = f.Value
	}
	return prev
}

func interpolate(from float64, f Keyframe, t time.Duration) float64 {
	if f.Spring != nil {
		return from + (f.Value-from)*f.Spring.response(t)
	}
	if f.Duration <= 0 {
		return f.Value
	}
	p := float64(t) / float64(f.Duration)
	return from + (f.Value-from)*f.Ease.apply(p)
}
