package constants

import "time"

// Catch Sequence
const (
	// ShakeAmplitude is the horizontal shake offset in px
	ShakeAmplitude = 5.0

	// ShakeSegment is the duration of each shake segment
	ShakeSegment = 30 * time.Millisecond

	// DestroyPopScale is the spring overshoot target before shrinking
	DestroyPopScale = 1.3

	// DestroyPopDamping is the spring damping of the overshoot
	DestroyPopDamping = 3.0

	// DestroyShrink is the shrink to zero after the overshoot
	DestroyShrink = 150 * time.Millisecond

	// DestroyFadeDelay holds opacity before the fade
	DestroyFadeDelay = 100 * time.Millisecond

	// DestroyFade is the opacity fade to zero
	DestroyFade = 100 * time.Millisecond

	// RespawnHideDelay is the time from catch to the hidden reposition
	RespawnHideDelay = 500 * time.Millisecond

	// RespawnPopInDelay is the time hidden before popping back in
	RespawnPopInDelay = 400 * time.Millisecond

	// PopInDamping is the spring damping of the pop-in
	PopInDamping = 8.0
)

// Movement Cycle
const (
	// CycleSpeedJitterMin and CycleSpeedJitterRange randomize each cycle's speed
	CycleSpeedJitterMin   = 0.75
	CycleSpeedJitterRange = 0.5
)

// Jitter
const (
	JitterBaseFactor = 0.04
	JitterBaseMin    = 1.0
	JitterBaseMax    = 6.0

	JitterRotMin   = 0.08
	JitterRotRange = 0.12

	JitterXMin   = 0.3
	JitterXRange = 0.7
	JitterYMin   = 0.25
	JitterYRange = 0.6

	JitterRotMsMin   = 110
	JitterRotMsRange = 90
	JitterPosMsMin   = 140
	JitterPosMsRange = 140

	// JitterYExtraMs desynchronizes the vertical wobble from the horizontal one
	JitterYExtraMs = 60
)
