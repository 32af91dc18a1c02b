package engine

import (
	"testing"
	"time"
)

type fakeTime struct{ now time.Time }

func (f *fakeTime) Now() time.Time { return f.now }

func TestPausableClockStep(t *testing.T) {
	ft := &fakeTime{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	pc := NewPausableClock(ft, 0)

	ft.now = ft.now.Add(16 * time.Millisecond)
	if dt := pc.Step(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms step, got %v", dt)
	}
	if dt := pc.Step(); dt != 0 {
		t.Errorf("Expected 0 with no progress, got %v", dt)
	}
}

func TestPausableClockSkipsPause(t *testing.T) {
	ft := &fakeTime{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	pc := NewPausableClock(ft, 0)

	ft.now = ft.now.Add(10 * time.Millisecond)
	pc.Pause()
	ft.now = ft.now.Add(5 * time.Second)
	if dt := pc.Step(); dt != 0 {
		t.Errorf("Expected 0 while paused, got %v", dt)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s paused so far, got %v", got)
	}

	pc.Resume()
	ft.now = ft.now.Add(20 * time.Millisecond)
	if dt := pc.Step(); dt != 20*time.Millisecond {
		t.Errorf("Expected only post-resume time, got %v", dt)
	}
	if pc.IsPaused() {
		t.Error("Expected clock to be running")
	}
}

func TestPausableClockMaxStep(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	pc := NewPausableClock(ft, 100*time.Millisecond)
	ft.now = ft.now.Add(3 * time.Second)
	if dt := pc.Step(); dt != 100*time.Millisecond {
		t.Errorf("Expected capped step, got %v", dt)
	}
}

func TestMonotonicTimeProvider(t *testing.T) {
	p := NewMonotonicTimeProvider()
	t1 := p.Now()
	time.Sleep(2 * time.Millisecond)
	if !p.Now().After(t1) {
		t.Error("Expected time to advance")
	}
}
