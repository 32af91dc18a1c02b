package constants

import "time"

// Escape Critter
const (
	EscapeStartScale  = 0.2
	EscapeIntro       = 160 * time.Millisecond
	EscapeJitterRot   = 0.18
	EscapeJitterMs    = 120
	EscapeSegments    = 6
	EscapeSegmentMin  = 120.0
	EscapeDoneSlackMs = 300.0

	EscapeAmpFactor   = 0.35
	EscapeAmpMin      = 10.0
	EscapeAmpMax      = 34.0
	EscapeAmpRandMin  = 0.65
	EscapeAmpRandSpan = 0.75

	EscapeWobbleFactor = 0.08
	EscapeWobbleMin    = 2.0
	EscapeWobbleMax    = 10.0

	// EscapeBoundsFactor lets zig-zag points leave the screen by this many sizes
	EscapeBoundsFactor = 3.0
)

// Jumping Critter
const (
	JumpStartScale    = 0.3
	JumpOffscreenY    = 2.2
	JumpFadeIn        = 120 * time.Millisecond
	JumpOvershoot     = 1.05
	JumpOvershootIn   = 160 * time.Millisecond
	JumpOvershootOut  = 120 * time.Millisecond
	JumpJitterRot     = 0.12
	JumpJitterMs      = 120
	JumpSlideMinDelta = 1.0

	JumpVerticalDoneSlackMs   = 120.0
	JumpHorizontalDoneSlackMs = 180.0
	JumpHorizontalVisibleMs   = 80.0
)

// Box Dash Spawner
const (
	BoxDashSizeFactor   = 0.34
	BoxDashSizeMin      = 110.0
	BoxDashSizeMax      = 220.0
	BoxDashInset        = 18.0
	BoxDashTargetInset  = 2.2
	BoxDashMaxPerBurst  = 3
	BoxDashDurationMin  = 900.0
	BoxDashDurationBase = 0.8
	BoxDashDurationRand = 0.5
	BoxDashCap          = 30
)

// Top Jump Spawner
const (
	TopJumpMaxCount     = 12
	TopJumpDurationMin  = 650.0
	TopJumpDurationBase = 0.85
	TopJumpDurationRand = 0.2
	TopJumpCap          = 40
)
