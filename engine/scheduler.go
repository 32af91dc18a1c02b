package engine

import (
	"container/heap"
	"time"
)

// Scheduler is a cooperative virtual-time timer queue
// Callbacks run on the goroutine calling Advance, in deadline order with FIFO ties.
// Not safe for concurrent use; one scheduler drives one simulation loop.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	queue  timerHeap
	paused bool
}

// Timer is a pending one-shot callback
type Timer struct {
	s        *Scheduler
	deadline time.Duration
	seq      uint64
	fn       func()
	index    int // Heap index, -1 when not queued
}

// NewScheduler creates a scheduler at virtual time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// AfterFunc schedules fn to run once d after the current virtual time
// Non-positive d runs on the next Advance, including Advance(0).
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{s: s, deadline: s.now + d, seq: s.seq, fn: fn, index: -1}
	heap.Push(&s.queue, t)
	return t
}

// Stop cancels the timer, reports whether it was still pending
func (t *Timer) Stop() bool {
	if t == nil || t.index < 0 {
		return false
	}
	heap.Remove(&t.s.queue, t.index)
	return true
}

// Pending reports whether the timer has neither fired nor been stopped
func (t *Timer) Pending() bool {
	return t != nil && t.index >= 0
}

// Deadline returns the virtual time the timer fires at
func (t *Timer) Deadline() time.Duration {
	return t.deadline
}

// Advance moves virtual time forward by dt, firing due timers
// Timers scheduled by callbacks fire within the same call when due. No-op while paused.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.paused || dt < 0 {
		return
	}
	target := s.now + dt
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.deadline > target {
			break
		}
		heap.Pop(&s.queue)
		if next.deadline > s.now {
			s.now = next.deadline
		}
		if next.fn != nil {
			next.fn()
		}
	}
	s.now = target
}

// RunUntilIdle advances until no timers remain or limit elapses
func (s *Scheduler) RunUntilIdle(limit time.Duration) {
	end := s.now + limit
	for len(s.queue) > 0 && !s.paused {
		next := s.queue[0].deadline
		if next > end {
			break
		}
		s.Advance(next - s.now)
	}
}

// Pause freezes virtual time
func (s *Scheduler) Pause() { s.paused = true }

// Resume unfreezes virtual time
func (s *Scheduler) Resume() { s.paused = false }

// IsPaused returns current pause state
func (s *Scheduler) IsPaused() bool { return s.paused }

// Pending returns the number of queued timers
func (s *Scheduler) Pending() int { return len(s.queue) }

// --- heap.Interface ---

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline != h[j].deadline {
		return h[i].deadline < h[j].deadline
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
