package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Default foreground
	RgbTextDim    = tcell.NewRGBColor(86, 95, 137)   // Hints, labels

	// Holes
	RgbHoleBg     = tcell.NewRGBColor(59, 44, 30)    // Dark soil
	RgbHoleBorder = tcell.NewRGBColor(120, 90, 60)   // Soil rim
	RgbHoleMouth  = tcell.NewRGBColor(20, 14, 10)    // Hole opening

	// Moles
	RgbMoleBg     = tcell.NewRGBColor(101, 67, 33)   // Dark brown
	RgbMoleFg     = tcell.NewRGBColor(255, 220, 180) // Face
	RgbMoleBorder = tcell.NewRGBColor(255, 165, 0)   // Orange rim while up
	RgbHitBg      = tcell.NewRGBColor(60, 110, 40)   // Green flash on scored cell
	RgbHitFg      = tcell.NewRGBColor(255, 255, 0)   // Bright yellow

	// HUD
	RgbHUDLabel    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHUDValue    = tcell.NewRGBColor(255, 255, 255) // White
	RgbScoreFlash  = tcell.NewRGBColor(255, 255, 0)   // Score blink after a hit
	RgbTimeLow     = tcell.NewRGBColor(255, 80, 80)   // Last five seconds
	RgbAudioMuted  = tcell.NewRGBColor(200, 50, 50)   // Bright red when muted
	RgbAudioActive = tcell.NewRGBColor(0, 200, 0)     // Green when playing

	// Overlay
	RgbOverlayBg     = tcell.NewRGBColor(36, 40, 59)
	RgbOverlayBorder = tcell.NewRGBColor(122, 162, 247)
	RgbOverlayTitle  = tcell.NewRGBColor(255, 165, 0)
	RgbOverlayText   = tcell.NewRGBColor(192, 202, 245)
	RgbNewBest       = tcell.NewRGBColor(50, 255, 50)
)

// Base styles
var (
	StyleBackground = tcell.StyleDefault.Foreground(RgbText).Background(RgbBackground)
	StyleHint       = tcell.StyleDefault.Foreground(RgbTextDim).Background(RgbBackground)
	StyleOverlay    = tcell.StyleDefault.Foreground(RgbOverlayText).Background(RgbOverlayBg)
)

// CellStyles groups the styles of one hole state
type CellStyles struct {
	Border tcell.Style
	Fill   tcell.Style
	Glyph  tcell.Style
	Mouth  tcell.Style
}

// GetCellStyles returns the styles for a hole in the given state
func GetCellStyles(up, hit bool) CellStyles {
	switch {
	case hit:
		return CellStyles{
			Border: tcell.StyleDefault.Foreground(RgbHitFg).Background(RgbBackground),
			Fill:   tcell.StyleDefault.Background(RgbHitBg),
			Glyph:  tcell.StyleDefault.Foreground(RgbHitFg).Background(RgbHitBg).Bold(true),
			Mouth:  tcell.StyleDefault.Foreground(RgbHoleMouth).Background(RgbHitBg),
		}
	case up:
		return CellStyles{
			Border: tcell.StyleDefault.Foreground(RgbMoleBorder).Background(RgbBackground),
			Fill:   tcell.StyleDefault.Background(RgbMoleBg),
			Glyph:  tcell.StyleDefault.Foreground(RgbMoleFg).Background(RgbMoleBg).Bold(true),
			Mouth:  tcell.StyleDefault.Foreground(RgbHoleMouth).Background(RgbMoleBg),
		}
	default:
		return CellStyles{
			Border: tcell.StyleDefault.Foreground(RgbHoleBorder).Background(RgbBackground),
			Fill:   tcell.StyleDefault.Background(RgbHoleBg),
			Glyph:  tcell.StyleDefault.Foreground(RgbTextDim).Background(RgbHoleBg),
			Mouth:  tcell.StyleDefault.Foreground(RgbHoleMouth).Background(RgbHoleBg),
		}
	}
}
