package render

import (
	"time"

	"github.com/lixenwraith/mole-strike/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Game   engine.Snapshot
	Layout Layout

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Audio state
	SoundAvailable bool
	Muted          bool

	// Accuracy of the current or last session, in [0, 1]
	Accuracy float64

	// Frame time, taken from the game clock
	Now time.Time
}

// NewRenderContext builds the frame context for a snapshot on a screen of the given size
func NewRenderContext(snap engine.Snapshot, width, height int) RenderContext {
	return RenderContext{
		Game:   snap,
		Layout: NewLayout(width, height, snap.Rows, snap.Cols),
		Width:  width,
		Height: height,
		Now:    snap.Now,
	}
}
