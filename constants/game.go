package constants

import "time"

// Session Timing Constants
const (
	// SessionSeconds is the length of one play-through in countdown ticks
	SessionSeconds = 30

	// TickInterval is the countdown resolution
	TickInterval = time.Second

	// GraceWindow is how long after a mole hides a press on it still counts
	GraceWindow = 120 * time.Millisecond

	// PostHitDelay is the pause between a hit and the next pop, shorter than the grace window
	PostHitDelay = 80 * time.Millisecond
)

// Hold Duration Constants
const (
	// DefaultHold is how long a mole stays up when nothing else is configured
	DefaultHold = 800 * time.Millisecond

	// MinHold and MaxHold bound the operator-adjustable hold duration
	MinHold = 250 * time.Millisecond
	MaxHold = 3000 * time.Millisecond

	// HoldStep is the adjustment applied by one speed key press
	HoldStep = 50 * time.Millisecond
)

// Grid Constants
const (
	DefaultRows = 3
	DefaultCols = 3

	// MaxGridCells caps rows*cols so the board fits a normal terminal
	MaxGridCells = 36
)

// Scheduling Policy
const (
	// DefaultRepeatRetries is the number of resamples spent avoiding the previous cell
	DefaultRepeatRetries = 1
)

// Persistence Constants
const (
	// BestScoreSlot is the storage slot holding the best score as a decimal string
	BestScoreSlot = "WAM_BEST_V1"
)

// Frame Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventBufferSize is the capacity of the game event channel consumed by audio
	EventBufferSize = 64
)
