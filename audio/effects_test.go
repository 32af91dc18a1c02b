package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorRange verifies every wave stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise}

	for _, w := range waves {
		osc := NewOscillator(440.0, 100*time.Millisecond, w, rate)
		samples := make([][2]float64, 200)
		n, ok := osc.Stream(samples)
		if !ok || n != 200 {
			t.Errorf("Wave %d: expected 200 samples and ok, got %d %v", w, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Errorf("Wave %d sample %d out of range: %f", w, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("Wave %d sample %d: expected mono output", w, i)
			}
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expectedSamples := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expectedSamples*2)
	n, _ := osc.Stream(samples)
	if n != expectedSamples {
		t.Errorf("Expected %d samples, got %d", expectedSamples, n)
	}

	n2, ok2 := osc.Stream(make([][2]float64, 10))
	if ok2 || n2 != 0 {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n2, ok2)
	}
}

// TestSweepChangesPitch verifies a rising sweep crosses zero more often at the end
func TestSweepChangesPitch(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 200 * time.Millisecond
	osc := NewSweep(200, 2000, d, WaveSine, rate)

	samples := make([][2]float64, rate.N(d))
	n, _ := osc.Stream(samples)

	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
				c++
			}
		}
		return c
	}
	quarter := n / 4
	early := crossings(0, quarter)
	late := crossings(n-quarter, n)
	if late <= early {
		t.Errorf("Expected more zero crossings late in the sweep, early=%d late=%d", early, late)
	}
}

// TestEnvelopeAttackPhase verifies attack ramp-up
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond
	release := 10 * time.Millisecond

	// Square wave for constant amplitude
	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)

	attackSamples := rate.N(attack)
	samples := make([][2]float64, attackSamples)
	n, ok := env.Stream(samples)
	if !ok {
		t.Error("Expected envelope to stream successfully")
	}

	firstAmp := abs(samples[0][0])
	lastAmp := abs(samples[n-1][0])
	if firstAmp >= lastAmp {
		t.Errorf("Expected attack phase to ramp up, but first=%f >= last=%f", firstAmp, lastAmp)
	}
}

// TestGetCueEffect verifies every catalogued cue has a voice
func TestGetCueEffect(t *testing.T) {
	cfg := DefaultAudioConfig()

	for c := range cueFamilies {
		s := GetCueEffect(c, cfg)
		if s == nil {
			t.Errorf("Expected streamer for cue %q", c)
			continue
		}
		n, ok := s.Stream(make([][2]float64, 64))
		if !ok || n == 0 {
			t.Errorf("Cue %q: expected samples, got n=%d ok=%v", c, n, ok)
		}
	}

	if GetCueEffect(CueNone, cfg) != nil {
		t.Error("Expected nil streamer for CueNone")
	}
	if GetCueEffect(Cue("kazoo"), cfg) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

// TestCueEffectZeroVolume verifies muted families render silence
func TestCueEffectZeroVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	s := CreateSplatSound(0, cfg)
	samples := make([][2]float64, 256)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if abs(samples[i][0]) > 1e-9 {
			t.Fatalf("Expected silence at zero volume, sample %d = %f", i, samples[i][0])
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
