package constants

import "time"

// Sandbox Loop
const (
	// FrameInterval is the render tick of the terminal sandbox
	FrameInterval = 16 * time.Millisecond

	// MaxFrameStep caps a single clock step after a stall
	MaxFrameStep = 100 * time.Millisecond

	// CellWidthPx and CellHeightPx map pixel space onto terminal cells
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
)

// Logging
const (
	LogDir         = "logs"
	LogFile        = "critter.log"
	LogMaxFileSize = 10 * 1024 * 1024
)
