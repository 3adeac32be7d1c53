package constants

import "time"

// Board Layout Constants
const (
	// CellWidth and CellHeight are the terminal footprint of one hole, border included
	CellWidth  = 9
	CellHeight = 4

	// CellGap is the blank space between neighbouring holes
	CellGap = 1

	// HUDHeight is the number of rows above the board used by the status line
	HUDHeight = 2

	// FooterHeight is the number of rows below the board used by key hints
	FooterHeight = 2
)

// Glyphs
const (
	MoleGlyph    = "(o.o)"
	HitGlyph     = "(x_x)"
	HoleGlyph    = "_____"
	NoBestMarker = "—"
)

// Overlay Text
const (
	OverlayTitle       = " Time's up! "
	OverlayTitleStop   = " Stopped "
	OverlayNewBest     = "New best!"
	OverlayPlayAgain   = "[Enter] Play again   [q] Quit"
	FooterHintsIdle    = "[s] start  [+/-] hold  [m] sound  [q] quit"
	FooterHintsRunning = "[click/1-9] whack  [x] stop  [+/-] hold  [m] sound  [q] quit"
)

// UI Timing Constants
const (
	// HitFlashDuration is how long the HUD score blinks after a hit
	HitFlashDuration = 150 * time.Millisecond
)
