package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") }) // FIFO tie
	s.AfterFunc(50*time.Millisecond, func() { got = append(got, "late") })

	s.Advance(30 * time.Millisecond)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if s.Now() != 30*time.Millisecond {
		t.Errorf("Expected now 30ms, got %v", s.Now())
	}
	if s.Pending() != 1 {
		t.Errorf("Expected 1 pending timer, got %d", s.Pending())
	}
}

func TestSchedulerCallbackSeesDeadline(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration
	s.AfterFunc(100*time.Millisecond, func() {
		at = append(at, s.Now())
		// Nested timer due within the same Advance
		s.AfterFunc(50*time.Millisecond, func() { at = append(at, s.Now()) })
	})

	s.Advance(time.Second)
	if want := []time.Duration{100 * time.Millisecond, 150 * time.Millisecond}; !reflect.DeepEqual(at, want) {
		t.Errorf("Expected callbacks at %v, got %v", want, at)
	}
	if s.Now() != time.Second {
		t.Errorf("Expected now 1s, got %v", s.Now())
	}
}

func TestTimerStop(t *testing.T) {
	s := NewScheduler()
	fired := false
	tm := s.AfterFunc(10*time.Millisecond, func() { fired = true })
	other := s.AfterFunc(20*time.Millisecond, func() {})

	if !tm.Pending() || !tm.Stop() {
		t.Fatal("Expected pending timer to stop")
	}
	if tm.Stop() {
		t.Error("Expected second Stop to report false")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("Expected stopped timer not to fire")
	}
	if other.Pending() || other.Stop() {
		t.Error("Expected fired timer to be done")
	}
	var nilTimer *Timer
	if nilTimer.Stop() {
		t.Error("Expected nil timer Stop to be false")
	}
}

func TestSchedulerPause(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.AfterFunc(10*time.Millisecond, func() { fired = true })

	s.Pause()
	s.Advance(time.Second)
	if fired || s.Now() != 0 {
		t.Errorf("Expected paused scheduler to hold, fired=%v now=%v", fired, s.Now())
	}

	s.Resume()
	s.Advance(10 * time.Millisecond)
	if !fired {
		t.Error("Expected timer to fire after resume")
	}
}

func TestSchedulerZeroDelay(t *testing.T) {
	s := NewScheduler()
	n := 0
	s.AfterFunc(-5*time.Millisecond, func() { n++ })
	s.AfterFunc(0, func() { n++ })
	s.Advance(0)
	if n != 2 {
		t.Errorf("Expected both immediate timers to run, got %d", n)
	}
}

func TestRunUntilIdle(t *testing.T) {
	s := NewScheduler()
	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 5 {
			s.AfterFunc(100*time.Millisecond, tick)
		}
	}
	s.AfterFunc(100*time.Millisecond, tick)

	s.RunUntilIdle(time.Minute)
	if count != 5 || s.Now() != 500*time.Millisecond {
		t.Errorf("Expected 5 ticks ending at 500ms, got %d at %v", count, s.Now())
	}
}
