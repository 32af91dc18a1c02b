package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock converts wall-clock progress into scheduler steps
// Step returns the time elapsed since the previous step, excluding paused intervals,
// so a frame loop can feed Scheduler.Advance without jumps after a pause.
type PausableClock struct {
	mu sync.Mutex

	provider TimeProvider
	last     time.Time

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
	maxStep         time.Duration
}

// NewPausableClock creates a clock reading provider, nil uses system time
// maxStep caps a single step after stalls, 0 disables the cap
func NewPausableClock(provider TimeProvider, maxStep time.Duration) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider: provider,
		last:     provider.Now(),
		maxStep:  maxStep,
	}
}

// Step returns unpaused elapsed time since the previous call
func (pc *PausableClock) Step() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.provider.Now()
	if pc.isPaused.Load() {
		return 0
	}
	dt := now.Sub(pc.last)
	pc.last = now
	if dt < 0 {
		return 0
	}
	if pc.maxStep > 0 && dt > pc.maxStep {
		return pc.maxStep
	}
	return dt
}

// Pause stops time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.provider.Now()
	}
}

// Resume continues time advancement, the paused interval is never reported by Step
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		now := pc.provider.Now()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += now.Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
		pc.last = now
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
