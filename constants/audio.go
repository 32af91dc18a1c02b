package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultMasterVolume is the initial master gain
	AudioDefaultMasterVolume = 0.6
)

// Squeak Sound Timing
const (
	SqueakSoundDuration = 140 * time.Millisecond
	SqueakSoundAttack   = 8 * time.Millisecond
	SqueakSoundRelease  = 60 * time.Millisecond

	// SqueakBaseFreq is the first variant's chirp start frequency
	SqueakBaseFreq = 2200.0

	// SqueakVariantStep shifts each further variant's pitch
	SqueakVariantStep = 260.0
)

// Splat Sound Timing
const (
	SplatSoundDuration = 180 * time.Millisecond
	SplatSoundAttack   = 2 * time.Millisecond
	SplatSoundRelease  = 140 * time.Millisecond

	// SplatThumpFreq is the low body under the noise burst
	SplatThumpFreq = 110.0
)

// Bell Sound Timing
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Ambient Sound Timing
const (
	// AmbientSoundDuration is the length of croak/buzz/chirp one-shots
	AmbientSoundDuration = 260 * time.Millisecond
	AmbientSoundAttack   = 20 * time.Millisecond
	AmbientSoundRelease  = 120 * time.Millisecond
)

// Tap Sound Picking
const (
	// BoxDashBellChance is the probability a box tap rings the bell
	BoxDashBellChance = 0.22

	// TopJumpBellChance is the probability a top-jump tap rings the bell
	TopJumpBellChance = 0.18
)
