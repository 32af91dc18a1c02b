package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/critter/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// shaped builds an enveloped oscillator in one call
func shaped(start, end float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(start, end, d, wave, rate), d, attack, release, rate)
}

// CreateSqueakSound generates a rising chirp, pitched per variant
func CreateSqueakSound(variant int, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	start := constants.SqueakBaseFreq + float64(variant)*constants.SqueakVariantStep

	// Two quick chirps read as a squeak rather than a beep
	half := constants.SqueakSoundDuration / 2
	first := shaped(start, start*1.5, half, constants.SqueakSoundAttack, constants.SqueakSoundRelease/2, WaveSine, rate)
	second := shaped(start*1.1, start*1.7, half, constants.SqueakSoundAttack, constants.SqueakSoundRelease, WaveSine, rate)

	return newVolume(beep.Seq(first, second), cfg.volume(FamilySqueak))
}

// CreateSplatSound generates a noise burst over a falling thump
func CreateSplatSound(variant int, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.SplatSoundDuration + time.Duration(variant)*15*time.Millisecond

	noise := shaped(0, 0, d, constants.SplatSoundAttack, constants.SplatSoundRelease, WaveNoise, rate)
	thumpFreq := constants.SplatThumpFreq * (1 + 0.12*float64(variant))
	thump := shaped(thumpFreq, thumpFreq/2, d, constants.SplatSoundAttack, constants.SplatSoundRelease, WaveSine, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(thump, 0.5),
	)
	return newVolume(mixed, cfg.volume(FamilySplat))
}

// CreateBellSound generates a short ding
func CreateBellSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := shaped(880.0, 880.0, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundFundamentalRelease, WaveSine, rate)

	// Harmonic (octave up)
	over := shaped(1760.0, 1760.0, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundOvertoneRelease, WaveSine, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.volume(FamilyBell))
}

// CreateAmbientSound generates the short one-shot for animal families
func CreateAmbientSound(f Family, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.AmbientSoundDuration
	att, rel := constants.AmbientSoundAttack, constants.AmbientSoundRelease

	var s beep.Streamer
	switch f {
	case FamilyCroak:
		s = shaped(180, 120, d, att, rel, WaveSquare, rate)
	case FamilyBuzz:
		s = shaped(220, 240, d, att, rel, WaveSaw, rate)
	case FamilyChirp:
		s = beep.Seq(
			shaped(2600, 3400, d/3, att/2, rel/3, WaveSine, rate),
			shaped(3000, 3800, d/3, att/2, rel/3, WaveSine, rate),
		)
	case FamilyRustle:
		s = shaped(0, 0, d, att, rel, WaveNoise, rate)
	default:
		return nil
	}
	return newVolume(s, cfg.volume(f))
}

// GetCueEffect returns the streamer for a cue, nil for CueNone and unknown cues
func GetCueEffect(c Cue, cfg *AudioConfig) beep.Streamer {
	switch f := c.Family(); f {
	case FamilySqueak:
		return CreateSqueakSound(c.Variant(), cfg)
	case FamilySplat:
		return CreateSplatSound(c.Variant(), cfg)
	case FamilyBell:
		return CreateBellSound(cfg)
	case FamilyNone:
		return nil
	default:
		return CreateAmbientSound(f, cfg)
	}
}
