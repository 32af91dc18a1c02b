// Package config loads the sandbox settings file
package config

import (
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/critter/audio"
	"github.com/lixenwraith/critter/facing"
	"github.com/lixenwraith/critter/pattern"
	"github.com/lixenwraith/critter/vmath"
)

// Slider ranges and steps
const (
	SpeedMin     = 200
	SpeedMax     = 3000
	SpeedStep    = 100
	SpeedDefault = 2000

	SizeMin     = 40
	SizeMax     = 150
	SizeStep    = 10
	SizeDefault = 80

	CountMin     = 1
	CountMax     = 10
	CountDefault = 1

	VolumeDefault = 60

	DefaultAsset       facing.AssetCode = "1f42d"
	DefaultSpawnSound                   = audio.CueMouse
	DefaultDeathSound                   = audio.CueSplat1
	DefaultScreenWidth                  = 400
	DefaultScreenHeight                 = 800
)

// Screen is the virtual playfield in pixels
type Screen struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Config is the settings file layout
type Config struct {
	SpeedMs       float64 `toml:"speed_ms"`
	SizePx        float64 `toml:"size_px"`
	ObjectCount   int     `toml:"object_count"`
	Pattern       string  `toml:"pattern"`
	SoundsEnabled bool    `toml:"sounds_enabled"`
	MasterVolume  float64 `toml:"master_volume"` // 0-100
	SpawnSound    string  `toml:"spawn_sound"`
	DeathSound    string  `toml:"death_sound"`
	Asset         string  `toml:"asset"`
	Seed          uint64  `toml:"seed"` // 0 picks a time based seed
	Debug         bool    `toml:"debug"`
	Screen        Screen  `toml:"screen"`

	patternID  pattern.ID
	spawnSound audio.Cue
	deathSound audio.Cue
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		SpeedMs:       SpeedDefault,
		SizePx:        SizeDefault,
		ObjectCount:   CountDefault,
		Pattern:       pattern.Random.String(),
		SoundsEnabled: true,
		MasterVolume:  VolumeDefault,
		SpawnSound:    string(DefaultSpawnSound),
		DeathSound:    string(DefaultDeathSound),
		Asset:         string(DefaultAsset),
		Screen:        Screen{Width: DefaultScreenWidth, Height: DefaultScreenHeight},
		patternID:     pattern.Random,
		spawnSound:    DefaultSpawnSound,
		deathSound:    DefaultDeathSound,
	}
}

// Load reads path over the defaults and validates the result
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := cfg.Decode(data); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode parses TOML data over the current values and validates
// Unknown keys are rejected.
func (c *Config) Decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return errors.Wrap(err, "failed to unmarshal config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return c.Validate()
}

// Validate snaps numeric fields to their slider steps and resolves names
func (c *Config) Validate() error {
	c.SpeedMs = snap(c.SpeedMs, SpeedStep, SpeedMin, SpeedMax, SpeedDefault)
	c.SizePx = snap(c.SizePx, SizeStep, SizeMin, SizeMax, SizeDefault)
	c.ObjectCount = vmath.ClampInt(c.ObjectCount, CountMin, CountMax)
	if math.IsNaN(c.MasterVolume) {
		c.MasterVolume = VolumeDefault
	}
	c.MasterVolume = vmath.Clamp(c.MasterVolume, 0, 100)

	if !(c.Screen.Width > 0) || !(c.Screen.Height > 0) {
		return errors.Errorf("screen size must be positive, got %gx%g", c.Screen.Width, c.Screen.Height)
	}

	id, err := pattern.ParseID(c.Pattern)
	if err != nil {
		return err
	}
	c.patternID = id
	c.Pattern = id.String()

	if c.spawnSound, err = audio.ParseCue(c.SpawnSound); err != nil {
		return errors.Wrap(err, "spawn_sound")
	}
	if c.deathSound, err = audio.ParseCue(c.DeathSound); err != nil {
		return errors.Wrap(err, "death_sound")
	}

	asset := facing.AssetCode(c.Asset).Normalize()
	if asset == "" {
		asset = DefaultAsset
	}
	c.Asset = string(asset)
	return nil
}

// PatternID returns the validated movement pattern
func (c *Config) PatternID() pattern.ID { return c.patternID }

// SpawnCue returns the validated spawn sound
func (c *Config) SpawnCue() audio.Cue { return c.spawnSound }

// DeathCue returns the validated death sound
func (c *Config) DeathCue() audio.Cue { return c.deathSound }

// AssetCode returns the validated critter asset
func (c *Config) AssetCode() facing.AssetCode { return facing.AssetCode(c.Asset) }

// SetPattern validates and stores a pattern
func (c *Config) SetPattern(id pattern.ID) {
	if !id.Valid() {
		id = pattern.Random
	}
	c.patternID = id
	c.Pattern = id.String()
}

// StepSpeed moves speed by n slider steps
func (c *Config) StepSpeed(n int) float64 {
	c.SpeedMs = snap(c.SpeedMs+float64(n*SpeedStep), SpeedStep, SpeedMin, SpeedMax, SpeedDefault)
	return c.SpeedMs
}

// StepSize moves size by n slider steps
func (c *Config) StepSize(n int) float64 {
	c.SizePx = snap(c.SizePx+float64(n*SizeStep), SizeStep, SizeMin, SizeMax, SizeDefault)
	return c.SizePx
}

// AudioConfig derives mixer settings
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.SoundsEnabled
	ac.MasterVolume = c.MasterVolume / 100
	return ac
}

// snap rounds v to the nearest step and clamps, 0 and NaN take the default
func snap(v, step, lo, hi, def float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return def
	}
	v = math.Round(v/step) * step
	return vmath.Clamp(v, lo, hi)
}
