package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/critter/constants"
	"github.com/lixenwraith/critter/vmath"
)

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[Family]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.AudioDefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[Family]float64{
			FamilySqueak: 0.8,
			FamilySplat:  1.0,
			FamilyBell:   0.7,
			FamilyCroak:  0.6,
			FamilyBuzz:   0.4,
			FamilyChirp:  0.6,
			FamilyRustle: 0.5,
		},
	}
}

// LoadAudioConfig applies environment overrides to the defaults
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("CRITTER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("CRITTER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	if sampleRate := os.Getenv("CRITTER_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume returns the effective gain of a family
func (c *AudioConfig) volume(f Family) float64 {
	v, ok := c.EffectVolumes[f]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
